package export

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/render"
)

type JobState string

const (
	JobPending   JobState = "pending"
	JobSucceeded JobState = "succeeded"
	JobFailed    JobState = "failed"
)

// Job is the status record of one background export.
type Job struct {
	ID        uuid.UUID `json:"id"`
	State     JobState  `json:"status"`
	Artifact  *Artifact `json:"artifact,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultJobRetention is how long a finished job stays queryable.
const DefaultJobRetention = time.Hour

// Jobs tracks background exports. Finished jobs are evicted once they
// are older than the retention period; pending jobs are kept. Safe for
// concurrent use.
type Jobs struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]Job
	retention time.Duration
	now       func() time.Time
}

func NewJobs() *Jobs {
	return NewJobsWithRetention(DefaultJobRetention)
}

func NewJobsWithRetention(retention time.Duration) *Jobs {
	return &Jobs{byID: map[uuid.UUID]Job{}, retention: retention, now: time.Now}
}

func (j *Jobs) Get(id uuid.UUID) (Job, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	job, ok := j.byID[id]
	return job, ok
}

func (j *Jobs) put(job Job) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pruneLocked()
	j.byID[job.ID] = job
}

// Len reports how many jobs are currently tracked.
func (j *Jobs) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.byID)
}

func (j *Jobs) pruneLocked() {
	cutoff := j.now().Add(-j.retention)
	for id, job := range j.byID {
		if job.State != JobPending && job.UpdatedAt.Before(cutoff) {
			delete(j.byID, id)
		}
	}
}

// Start checks the precondition synchronously, then runs the export in the
// background and reports the outcome through done (which may be nil).
// Concurrent exports are not deduplicated.
func (p *Pipeline) Start(ctx context.Context, node *render.Node, fullName string, done func(Job)) (Job, error) {
	if fullName == "" {
		return Job{}, ErrMissingInformation
	}
	now := time.Now()
	job := Job{ID: uuid.New(), State: JobPending, CreatedAt: now, UpdatedAt: now}
	p.jobs.put(job)

	// the request that started the export may finish before the export does
	bg := context.WithoutCancel(ctx)
	go func(j Job) {
		art, err := p.Export(bg, node, fullName)
		j.UpdatedAt = time.Now()
		if err != nil {
			j.State = JobFailed
			j.Error = err.Error()
			slog.Error("export: job failed", "job", j.ID.String(), "error", err)
		} else {
			j.State = JobSucceeded
			j.Artifact = art
		}
		p.jobs.put(j)
		if done != nil {
			done(j)
		}
	}(job)

	return job, nil
}
