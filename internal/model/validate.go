package model

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed document.schema.json
var documentSchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// Field-scoped messages shown next to the offending input.
var fieldMessages = map[string]string{
	"personalInfo.fullName": "Full name is required",
	"personalInfo.jobTitle": "Job title is required",
	"personalInfo.email":    "Invalid email address",
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is advisory: it never blocks a store update.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the error for field, or "" when the field is valid.
func (v ValidationErrors) Message(field string) string {
	for _, e := range v {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchema))
	})
	return schema, schemaErr
}

// Validate checks d against the document schema. A nil result means the
// document is complete and well formed.
func Validate(d Document) (ValidationErrors, error) {
	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("load document schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(d))
	if err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	if res.Valid() {
		return nil, nil
	}

	seen := map[string]bool{}
	var out ValidationErrors
	for _, e := range res.Errors() {
		field := e.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		msg, ok := fieldMessages[field]
		if !ok {
			msg = e.Description()
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out, nil
}

// IsComplete reports whether both identity fields are filled in.
func (d Document) IsComplete() bool {
	return d.PersonalInfo.FullName != "" && d.PersonalInfo.JobTitle != ""
}
