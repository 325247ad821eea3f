// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session owns the loaded definitions for one documentation run.
//
// A Session is created per run and replaced wholesale on Reset. Loading a
// batch never stops at the first bad document: every valid category is
// added and every failure is reported. Rendering recomputes all
// relationship strings from scratch before executing the template.
package session

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/taglist/internal/fetch"
	"github.com/pdiddy/taglist/internal/parse"
	"github.com/pdiddy/taglist/internal/relationship"
	"github.com/pdiddy/taglist/internal/render"
	"github.com/pdiddy/taglist/pkg/types"
)

// Document is one category document and where it came from.
type Document struct {
	Source string
	Text   string
}

// LoadError attributes a failure to the document that caused it.
type LoadError struct {
	Source string
	Err    error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e LoadError) Unwrap() error { return e.Err }

// LoadReport summarizes a batch load.
type LoadReport struct {
	// Loaded lists the IDs of categories added, in document order.
	Loaded []string
	Errors []LoadError
}

// HasErrors reports whether any document failed.
func (r LoadReport) HasErrors() bool {
	return len(r.Errors) > 0
}

// Session is not safe for concurrent use.
type Session struct {
	defs *types.Definitions
}

// New returns an empty session.
func New() *Session {
	return &Session{defs: types.NewDefinitions()}
}

// Definitions returns the loaded collection.
func (s *Session) Definitions() *types.Definitions {
	return s.defs
}

// Reset discards every loaded category.
func (s *Session) Reset() {
	s.defs = types.NewDefinitions()
}

// Load parses each document and adds the valid categories. A category
// whose ID is already loaded replaces the earlier one.
func (s *Session) Load(docs []Document) LoadReport {
	var report LoadReport
	for _, doc := range docs {
		cat, err := parse.Category(doc.Text)
		if err != nil {
			report.Errors = append(report.Errors, LoadError{Source: doc.Source, Err: err})
			continue
		}
		s.defs.Put(cat)
		report.Loaded = append(report.Loaded, cat.ID)
	}
	return report
}

// LoadSources fetches sources and loads every document that arrived.
// Fetch failures are reported alongside parse failures in source order.
func (s *Session) LoadSources(ctx context.Context, client *http.Client, sources []string, cfg types.FetchConfig, w io.Writer) LoadReport {
	batch := fetch.Batch(ctx, client, sources, cfg, w)

	var report LoadReport
	for _, r := range batch.Results {
		if r.Err != nil {
			report.Errors = append(report.Errors, LoadError{Source: r.Source, Err: r.Err})
			continue
		}
		sub := s.Load([]Document{{Source: r.Source, Text: r.Text}})
		report.Loaded = append(report.Loaded, sub.Loaded...)
		report.Errors = append(report.Errors, sub.Errors...)
	}
	return report
}

// Document recomputes the relationship strings of every loaded entity.
func (s *Session) Document() {
	relationship.Document(s.defs)
}

// Render documents the collection and executes tmpl, writing to w only on
// success.
func (s *Session) Render(w io.Writer, name, tmpl string) error {
	s.Document()
	return render.Render(w, name, tmpl, s.defs)
}
