package usecase

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

const untitledResume = "Untitled Resume"

var ErrInvalidPayload = errors.New("invalid resume data")

// Issue is one schema violation in a rejected payload.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// PayloadError carries the issues of a rejected payload. It matches
// ErrInvalidPayload under errors.Is.
type PayloadError struct {
	Issues []Issue
}

func (e *PayloadError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		parts = append(parts, i.Path+": "+i.Message)
	}
	return ErrInvalidPayload.Error() + ": " + strings.Join(parts, "; ")
}

func (e *PayloadError) Is(target error) bool { return target == ErrInvalidPayload }

// RecordsRepo is the append-mostly analytics log.
type RecordsRepo interface {
	Append(ctx context.Context, r *domain.ResumeRecord) error
	List(ctx context.Context) ([]domain.ResumeRecord, error)
	CountByTemplate(ctx context.Context) (map[string]int, error)
	CountByColor(ctx context.Context) (map[string]int, error)
}

//go:embed payload.schema.json
var payloadSchema []byte

var (
	payloadOnce     sync.Once
	payloadCompiled *gojsonschema.Schema
	payloadErr      error
)

func compiledPayloadSchema() (*gojsonschema.Schema, error) {
	payloadOnce.Do(func() {
		payloadCompiled, payloadErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(payloadSchema))
	})
	return payloadCompiled, payloadErr
}

type Analytics struct {
	repo RecordsRepo
}

func NewAnalytics(repo RecordsRepo) *Analytics {
	return &Analytics{repo: repo}
}

type payload struct {
	Template    string         `json:"template"`
	ColorScheme string         `json:"colorScheme"`
	Data        model.Document `json:"data"`
}

// Save validates a raw snapshot and appends it to the log.
func (a *Analytics) Save(ctx context.Context, body []byte) (*domain.ResumeRecord, error) {
	if err := validatePayload(body); err != nil {
		return nil, err
	}
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &PayloadError{Issues: []Issue{{Path: "(root)", Message: err.Error()}}}
	}

	title := p.Data.PersonalInfo.JobTitle
	if title == "" {
		title = untitledResume
	}
	rec := &domain.ResumeRecord{
		UserID:      domain.AnonymousUserID,
		Title:       title,
		Template:    p.Template,
		ColorScheme: p.ColorScheme,
		Data:        p.Data.Normalize(),
	}
	if err := a.repo.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("append analytics record: %w", err)
	}
	return rec, nil
}

func (a *Analytics) List(ctx context.Context) ([]domain.ResumeRecord, error) {
	return a.repo.List(ctx)
}

func (a *Analytics) TemplateUsage(ctx context.Context) (map[string]int, error) {
	return a.repo.CountByTemplate(ctx)
}

func (a *Analytics) ColorUsage(ctx context.Context) (map[string]int, error) {
	return a.repo.CountByColor(ctx)
}

func validatePayload(body []byte) error {
	s, err := compiledPayloadSchema()
	if err != nil {
		return fmt.Errorf("load payload schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// body is not JSON
		return &PayloadError{Issues: []Issue{{Path: "(root)", Message: err.Error()}}}
	}
	if res.Valid() {
		return nil
	}
	issues := make([]Issue, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		issues = append(issues, Issue{Path: e.Field(), Message: e.Description()})
	}
	return &PayloadError{Issues: issues}
}
