// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relationship

import "github.com/pdiddy/taglist/pkg/types"

// Document recomputes RelationshipStrings for every category, loose tag,
// section, and section tag in defs. It replaces any previous result, so
// running it twice on an unchanged collection yields the same strings.
func Document(defs *types.Definitions) {
	idx := NewIndex(defs)
	for _, c := range defs.Categories() {
		c.RelationshipStrings = idx.Strings(c.ID, &c.Relationships)
		for _, t := range c.Tags {
			t.RelationshipStrings = idx.Strings(t.Name, &t.Relationships)
		}
		for _, s := range c.Sections {
			s.RelationshipStrings = idx.Strings(s.Name, &s.Relationships)
			for _, t := range s.Tags {
				t.RelationshipStrings = idx.Strings(t.Name, &t.Relationships)
			}
		}
	}
}

// Strings returns one sentence per relationship kind that has targets, in
// types.DocumentationOrder. The result is never nil.
func (idx *Index) Strings(name string, decl *types.Relationships) []string {
	out := []string{}
	for _, kind := range types.DocumentationOrder {
		if s, ok := Sentence(idx.Resolve(name, decl, kind), kind); ok {
			out = append(out, s)
		}
	}
	return out
}
