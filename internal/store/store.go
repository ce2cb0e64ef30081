package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"resume-builder/internal/model"
)

var (
	ErrUnknownTemplate    = errors.New("store: unknown template")
	ErrUnknownColorScheme = errors.New("store: unknown color scheme")
)

// State is a point-in-time copy of everything the store owns.
type State struct {
	Document      model.Document      `json:"data"`
	TemplateID    model.TemplateID    `json:"template"`
	ColorSchemeID model.ColorSchemeID `json:"colorScheme"`
}

func (s State) ViewState() model.ViewState {
	return model.ViewState{TemplateID: s.TemplateID, ColorSchemeID: s.ColorSchemeID}
}

type ChangeKind string

const (
	ChangeDocument ChangeKind = "document"
	ChangeTemplate ChangeKind = "template"
	ChangeColor    ChangeKind = "color"
	ChangeLoad     ChangeKind = "load"
	ChangeReset    ChangeKind = "reset"
)

// Change is delivered to listeners after every mutation. Previous and
// Current are independent copies.
type Change struct {
	Kind     ChangeKind
	Previous State
	Current  State
}

type Listener func(Change)

// Store owns the live document and view state. It is not safe for
// concurrent use: a single owner (see editor.Session) serialises access.
type Store struct {
	kv        KV
	doc       model.Document
	template  model.TemplateID
	color     model.ColorSchemeID
	listeners []Listener
}

func New(kv KV) *Store {
	s := &Store{kv: kv}
	s.setInitial()
	return s
}

func (s *Store) setInitial() {
	s.doc = model.NewDocument()
	s.template = model.DefaultTemplate
	s.color = model.DefaultColorScheme
}

// Subscribe registers l to be called synchronously after each mutation.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Store) GetState() State {
	return State{
		Document:      s.doc.Clone(),
		TemplateID:    s.template,
		ColorSchemeID: s.color,
	}
}

// SetTemplate replaces the active template and persists that key alone.
// The in-memory change stands even if the write fails.
func (s *Store) SetTemplate(ctx context.Context, id model.TemplateID) error {
	if !model.KnownTemplate(id) {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	prev := s.GetState()
	s.template = id
	s.notify(ChangeTemplate, prev)
	if err := s.kv.Set(ctx, KeyTemplate, string(id)); err != nil {
		return fmt.Errorf("persist template: %w", err)
	}
	return nil
}

func (s *Store) SetColorScheme(ctx context.Context, id model.ColorSchemeID) error {
	if !model.KnownColorScheme(id) {
		return fmt.Errorf("%w: %q", ErrUnknownColorScheme, id)
	}
	prev := s.GetState()
	s.color = id
	s.notify(ChangeColor, prev)
	if err := s.kv.Set(ctx, KeyColor, string(id)); err != nil {
		return fmt.Errorf("persist color scheme: %w", err)
	}
	return nil
}

// UpdateDocument replaces the whole document. Last write wins.
func (s *Store) UpdateDocument(d model.Document) {
	prev := s.GetState()
	s.doc = d.Normalize()
	s.notify(ChangeDocument, prev)
}

// Save writes the document, template and color keys. Each key is written
// independently; a document that cannot be encoded leaves its key untouched.
func (s *Store) Save(ctx context.Context) error {
	var errs []error
	if b, err := json.Marshal(s.doc); err != nil {
		errs = append(errs, fmt.Errorf("encode document: %w", err))
	} else if err := s.kv.Set(ctx, KeyDocument, string(b)); err != nil {
		errs = append(errs, fmt.Errorf("persist document: %w", err))
	}
	if err := s.kv.Set(ctx, KeyTemplate, string(s.template)); err != nil {
		errs = append(errs, fmt.Errorf("persist template: %w", err))
	}
	if err := s.kv.Set(ctx, KeyColor, string(s.color)); err != nil {
		errs = append(errs, fmt.Errorf("persist color scheme: %w", err))
	}
	return errors.Join(errs...)
}

// Load restores the persisted snapshot. It reports whether a usable
// document key existed; missing or corrupt keys fall back to defaults and
// are never returned as errors.
func (s *Store) Load(ctx context.Context) bool {
	doc, ok := s.readDocument(ctx)
	if !ok {
		return false
	}
	prev := s.GetState()
	s.doc = doc.Normalize()
	s.template = model.DefaultTemplate
	if v, ok := s.read(ctx, KeyTemplate); ok && model.KnownTemplate(model.TemplateID(v)) {
		s.template = model.TemplateID(v)
	}
	s.color = model.DefaultColorScheme
	if v, ok := s.read(ctx, KeyColor); ok && model.KnownColorScheme(model.ColorSchemeID(v)) {
		s.color = model.ColorSchemeID(v)
	}
	s.notify(ChangeLoad, prev)
	return true
}

// Reset restores the seeded document and default view state in memory.
// Persisted keys are left as they are.
func (s *Store) Reset() {
	prev := s.GetState()
	s.setInitial()
	s.notify(ChangeReset, prev)
}

func (s *Store) readDocument(ctx context.Context) (model.Document, bool) {
	raw, ok := s.read(ctx, KeyDocument)
	if !ok {
		return model.Document{}, false
	}
	var d model.Document
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		slog.Warn("store: discarding corrupt document key", "key", KeyDocument, "error", err)
		return model.Document{}, false
	}
	return d, true
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		slog.Warn("store: read failed, using default", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (s *Store) notify(kind ChangeKind, prev State) {
	if len(s.listeners) == 0 {
		return
	}
	c := Change{Kind: kind, Previous: prev, Current: s.GetState()}
	for _, l := range s.listeners {
		l(c)
	}
}
