// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the documented taxonomy for downstream tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/taglist/internal/relationship"
	"github.com/pdiddy/taglist/pkg/types"
)

// CategoryEntry is the exported form of a category.
type CategoryEntry struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	Max           *int           `json:"max,omitempty" yaml:"max,omitempty"`
	Relationships []string       `json:"relationships" yaml:"relationships"`
	Tags          []TagEntry     `json:"tags" yaml:"tags"`
	Sections      []SectionEntry `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// SectionEntry is the exported form of a section.
type SectionEntry struct {
	Name          string     `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty"`
	Relationships []string   `json:"relationships" yaml:"relationships"`
	Tags          []TagEntry `json:"tags" yaml:"tags"`
}

// TagEntry is the exported form of a tag.
type TagEntry struct {
	Name          string             `json:"name" yaml:"name"`
	Description   string             `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions   *types.Permissions `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Relationships []string           `json:"relationships" yaml:"relationships"`
}

// Entries documents defs and returns one entry per category in load order.
func Entries(defs *types.Definitions) []CategoryEntry {
	relationship.Document(defs)

	entries := make([]CategoryEntry, 0, defs.Len())
	for _, c := range defs.Categories() {
		e := CategoryEntry{
			ID:            c.ID,
			Name:          c.Name,
			Description:   c.Description,
			Max:           c.Max,
			Relationships: c.RelationshipStrings,
			Tags:          tagEntries(c.Tags),
		}
		for _, s := range c.Sections {
			e.Sections = append(e.Sections, SectionEntry{
				Name:          s.Name,
				Description:   s.Description,
				Relationships: s.RelationshipStrings,
				Tags:          tagEntries(s.Tags),
			})
		}
		entries = append(entries, e)
	}
	return entries
}

func tagEntries(tags []*types.Tag) []TagEntry {
	out := make([]TagEntry, len(tags))
	for i, t := range tags {
		out[i] = TagEntry{
			Name:          t.Name,
			Description:   t.Description,
			Permissions:   t.Permissions,
			Relationships: t.RelationshipStrings,
		}
	}
	return out
}

// YAML writes the documented collection as a YAML sequence.
func YAML(w io.Writer, defs *types.Definitions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Entries(defs)); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// JSON writes the documented collection as an indented JSON array.
func JSON(w io.Writer, defs *types.Definitions) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Entries(defs)); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// Write dispatches on format.
func Write(w io.Writer, defs *types.Definitions, format types.OutputFormat) error {
	switch format {
	case types.OutputYAML, "":
		return YAML(w, defs)
	case types.OutputJSON:
		return JSON(w, defs)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
