package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"resume-builder/internal/model"
)

// Snapshot is the payload of one analytics push.
type Snapshot struct {
	Template    model.TemplateID    `json:"template"`
	ColorScheme model.ColorSchemeID `json:"colorScheme"`
	Data        model.Document      `json:"data"`
}

// Sink receives best-effort snapshots.
type Sink interface {
	Push(ctx context.Context, s Snapshot) error
}

// HTTPSink posts snapshots as JSON to a collector endpoint. A single
// attempt is made per push with no client timeout; only the caller's
// context bounds it.
type HTTPSink struct {
	URL  string
	HTTP *http.Client
}

func NewHTTPSink(url string) *HTTPSink {
	return &HTTPSink{URL: url, HTTP: &http.Client{}}
}

func (s *HTTPSink) Push(ctx context.Context, snap Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("analytics sink returned %d: %s", resp.StatusCode, bytes.TrimSpace(b))
	}
	return nil
}

// Discard drops every snapshot. Used when no endpoint is configured.
type Discard struct{}

func (Discard) Push(context.Context, Snapshot) error { return nil }
