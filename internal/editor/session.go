// Package editor runs the edit loop: one goroutine owns the document store,
// applies edits one at a time and re-renders after each of them.
package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/store"
)

var ErrClosed = errors.New("editor: session closed")

// Exporter is the part of the export pipeline the session drives.
type Exporter interface {
	Start(ctx context.Context, node *render.Node, fullName string, done func(export.Job)) (export.Job, error)
	Print(ctx context.Context, node *render.Node, title string) ([]byte, error)
}

type Session struct {
	store    *store.Store
	exporter Exporter

	ops       chan func()
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	// owned by the loop goroutine
	view *render.Node
}

// NewSession takes ownership of st. Listeners must be subscribed to st
// before this call; afterwards st is only touched by the loop.
func NewSession(st *store.Store, exp Exporter) *Session {
	s := &Session{
		store:    st,
		exporter: exp,
		ops:      make(chan func()),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	st.Subscribe(s.rerender)
	s.rerender(store.Change{Current: st.GetState()})
	go s.run()
	return s
}

func (s *Session) run() {
	defer close(s.done)
	for {
		select {
		case fn := <-s.ops:
			fn()
		case <-s.quit:
			return
		}
	}
}

// Close stops the loop. Calls made after Close return ErrClosed.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.quit) })
	<-s.done
}

// do runs fn on the loop and waits for it to finish.
func (s *Session) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	select {
	case s.ops <- func() { defer close(finished); fn() }:
	case <-s.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-finished
	return nil
}

func (s *Session) rerender(c store.Change) {
	cur := c.Current
	n, err := render.Render(cur.Document, cur.TemplateID, cur.ColorSchemeID)
	if err != nil {
		slog.Error("editor: render failed, keeping previous view", "template", string(cur.TemplateID), "error", err)
		return
	}
	s.view = n
}

func (s *Session) State(ctx context.Context) (store.State, error) {
	var st store.State
	err := s.do(ctx, func() { st = s.store.GetState() })
	return st, err
}

// UpdateDocument replaces the document and returns the resulting state.
func (s *Session) UpdateDocument(ctx context.Context, d model.Document) (store.State, error) {
	var st store.State
	err := s.do(ctx, func() {
		s.store.UpdateDocument(d)
		st = s.store.GetState()
	})
	return st, err
}

// Edit applies fn to a copy of the current document and stores the result.
func (s *Session) Edit(ctx context.Context, fn func(*model.Document)) (store.State, error) {
	var st store.State
	err := s.do(ctx, func() {
		d := s.store.GetState().Document
		fn(&d)
		s.store.UpdateDocument(d)
		st = s.store.GetState()
	})
	return st, err
}

func (s *Session) SetTemplate(ctx context.Context, id model.TemplateID) error {
	var opErr error
	if err := s.do(ctx, func() { opErr = s.store.SetTemplate(ctx, id) }); err != nil {
		return err
	}
	return opErr
}

func (s *Session) SetColorScheme(ctx context.Context, id model.ColorSchemeID) error {
	var opErr error
	if err := s.do(ctx, func() { opErr = s.store.SetColorScheme(ctx, id) }); err != nil {
		return err
	}
	return opErr
}

func (s *Session) Save(ctx context.Context) error {
	var opErr error
	if err := s.do(ctx, func() { opErr = s.store.Save(ctx) }); err != nil {
		return err
	}
	return opErr
}

// Load reports whether a saved document was restored.
func (s *Session) Load(ctx context.Context) (bool, error) {
	var ok bool
	err := s.do(ctx, func() { ok = s.store.Load(ctx) })
	return ok, err
}

func (s *Session) Reset(ctx context.Context) error {
	return s.do(ctx, s.store.Reset)
}

// Validate returns the advisory field errors of the current document.
func (s *Session) Validate(ctx context.Context) (model.ValidationErrors, error) {
	var doc model.Document
	if err := s.do(ctx, func() { doc = s.store.GetState().Document }); err != nil {
		return nil, err
	}
	return model.Validate(doc)
}

// View returns the last rendered tree along with the state it was
// rendered from.
func (s *Session) View(ctx context.Context) (*render.Node, store.State, error) {
	var (
		n  *render.Node
		st store.State
	)
	err := s.do(ctx, func() {
		n = s.view
		st = s.store.GetState()
	})
	return n, st, err
}

// Preview returns the last render as a standalone HTML document.
func (s *Session) Preview(ctx context.Context) (string, error) {
	n, st, err := s.View(ctx)
	if err != nil {
		return "", err
	}
	return render.HTMLDocument(n, title(st))
}

// StartExport exports the last render in the background. The missing
// name precondition is checked before anything starts.
func (s *Session) StartExport(ctx context.Context, done func(export.Job)) (export.Job, error) {
	n, st, err := s.View(ctx)
	if err != nil {
		return export.Job{}, err
	}
	return s.exporter.Start(ctx, n, st.Document.PersonalInfo.FullName, done)
}

// Print produces a PDF of the last render with host-side page breaks.
// It runs off the loop so edits are not held up by the browser.
func (s *Session) Print(ctx context.Context) ([]byte, error) {
	n, st, err := s.View(ctx)
	if err != nil {
		return nil, err
	}
	return s.exporter.Print(ctx, n, title(st))
}

func title(st store.State) string {
	if name := st.Document.PersonalInfo.FullName; name != "" {
		return name
	}
	return "Resume"
}
