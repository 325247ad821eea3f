// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render executes a documentation template against a documented
// definitions collection.
//
// Templates use text/template syntax. The root value is a Context:
//
//	{{ with .GetCategory "genre/" }}
//	{{ .Name }}
//	{{ range .Tags }}* {{ .Name }}: {{ join "; " .RelationshipStrings }}
//	{{ end }}{{ end }}
//
// getCategory is also available as a function.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/pdiddy/taglist/pkg/types"
)

// ErrRender matches every *RenderError.
var ErrRender = errors.New("render error")

// RenderError reports a template that could not be parsed or executed.
type RenderError struct {
	// Stage is "parse" or "execute".
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error (%s): %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool { return target == ErrRender }

// Context is the root value visible to templates.
type Context struct {
	defs *types.Definitions
}

// NewContext wraps defs for template execution.
func NewContext(defs *types.Definitions) Context {
	return Context{defs: defs}
}

// GetCategory returns the loaded category called name. The name must end
// in the category marker.
func (c Context) GetCategory(name string) (*types.Category, error) {
	if !strings.HasSuffix(name, types.CategoryMarker) {
		return nil, fmt.Errorf("category name %q must end in %q", name, types.CategoryMarker)
	}
	cat, ok := c.defs.Get(name)
	if !ok {
		return nil, fmt.Errorf("category %q has not been loaded", name)
	}
	return cat, nil
}

// Categories returns every loaded category in load order.
func (c Context) Categories() []*types.Category {
	return c.defs.Categories()
}

// Render parses text as a template named name and executes it against
// defs, writing to w only when execution succeeds.
func Render(w io.Writer, name, text string, defs *types.Definitions) error {
	ctx := NewContext(defs)

	tmpl, err := template.New(name).Funcs(funcs(ctx)).Parse(text)
	if err != nil {
		return &RenderError{Stage: "parse", Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return &RenderError{Stage: "execute", Err: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func funcs(ctx Context) template.FuncMap {
	return template.FuncMap{
		"getCategory": ctx.GetCategory,
		"join": func(sep string, items []string) string {
			return strings.Join(items, sep)
		},
		"display": func(id string) string {
			return types.Reference(id).Name()
		},
		"lower": strings.ToLower,
	}
}
