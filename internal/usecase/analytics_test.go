package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
)

const validBody = `{
  "template": "modern",
  "colorScheme": "green",
  "data": {
    "personalInfo": {"fullName": "Jane Doe", "jobTitle": "Engineer", "email": ""},
    "workExperience": [{"company": "Acme", "position": "Engineer", "startDate": "2020-01", "endDate": "2021-01", "current": true}],
    "education": [],
    "skills": {"technical": "Go, SQL"}
  }
}`

func TestSaveAppendsRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalytics(repository.NewMemoryRecords())

	rec, err := svc.Save(ctx, []byte(validBody))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, domain.AnonymousUserID, rec.UserID)
	assert.Equal(t, "Engineer", rec.Title)
	assert.Equal(t, "modern", rec.Template)
	assert.Empty(t, rec.Data.WorkExperience[0].EndDate, "current entries drop their end date")

	rec2, err := svc.Save(ctx, []byte(validBody))
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec2.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSaveUntitled(t *testing.T) {
	body := `{"template":"professional","colorScheme":"blue","data":{"personalInfo":{"fullName":"Jane","jobTitle":""},"workExperience":[],"education":[],"skills":{}}}`
	rec, err := NewAnalytics(repository.NewMemoryRecords()).Save(context.Background(), []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "Untitled Resume", rec.Title)
}

func TestSaveRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		path string
	}{
		{name: "not json", body: `{`, path: "(root)"},
		{name: "missing data", body: `{"template":"modern","colorScheme":"green"}`, path: "(root)"},
		{name: "bad email", body: `{"template":"modern","colorScheme":"green","data":{"personalInfo":{"fullName":"J","jobTitle":"E","email":"nope"},"workExperience":[],"education":[],"skills":{}}}`, path: "data.personalInfo.email"},
		{name: "display name email", body: `{"template":"modern","colorScheme":"green","data":{"personalInfo":{"fullName":"J","jobTitle":"E","email":"Jane <jane@example.com>"},"workExperience":[],"education":[],"skills":{}}}`, path: "data.personalInfo.email"},
		{name: "dotless domain email", body: `{"template":"modern","colorScheme":"green","data":{"personalInfo":{"fullName":"J","jobTitle":"E","email":"jane@localhost"},"workExperience":[],"education":[],"skills":{}}}`, path: "data.personalInfo.email"},
		{name: "entry missing company", body: `{"template":"modern","colorScheme":"green","data":{"personalInfo":{"fullName":"J","jobTitle":"E"},"workExperience":[{"position":"x","startDate":"y"}],"education":[],"skills":{}}}`, path: "data.workExperience.0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := repository.NewMemoryRecords()
			_, err := NewAnalytics(repo).Save(context.Background(), []byte(tc.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPayload)

			var pe *PayloadError
			require.True(t, errors.As(err, &pe))
			var paths []string
			for _, i := range pe.Issues {
				paths = append(paths, i.Path)
			}
			assert.Contains(t, paths, tc.path)

			list, _ := repo.List(context.Background())
			assert.Empty(t, list)
		})
	}
}

func TestUsageCounts(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalytics(repository.NewMemoryRecords())
	for _, combo := range [][2]string{{"modern", "green"}, {"modern", "blue"}, {"minimalist", "green"}} {
		body := `{"template":"` + combo[0] + `","colorScheme":"` + combo[1] + `","data":{"personalInfo":{"fullName":"J","jobTitle":"E"},"workExperience":[],"education":[],"skills":{}}}`
		_, err := svc.Save(ctx, []byte(body))
		require.NoError(t, err)
	}

	templates, err := svc.TemplateUsage(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(map[string]int{"modern": 2, "minimalist": 1}, templates); diff != "" {
		t.Errorf("template usage mismatch (-want +got):\n%s", diff)
	}
	colors, err := svc.ColorUsage(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(map[string]int{"green": 2, "blue": 1}, colors); diff != "" {
		t.Errorf("color usage mismatch (-want +got):\n%s", diff)
	}
}

type failingRepo struct{ repository.MemoryRecords }

func (*failingRepo) Append(context.Context, *domain.ResumeRecord) error {
	return errors.New("disk full")
}

func TestSaveRepoFailure(t *testing.T) {
	_, err := NewAnalytics(&failingRepo{}).Save(context.Background(), []byte(validBody))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPayload)
}
