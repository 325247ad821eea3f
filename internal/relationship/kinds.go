// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relationship resolves the relationships of every category,
// section, and tag in a definitions collection, including those declared
// from the other end, and renders them as English sentences.
package relationship

import "github.com/pdiddy/taglist/pkg/types"

// kindSpec is the static configuration of one relationship kind.
type kindSpec struct {
	// primer starts the sentence.
	primer string

	// flat kinds may not contain OR-groups.
	flat bool

	// combine is the word placed before the last top-level item.
	combine string

	// inverse is the kind whose declarations on other entities point back
	// at the subject. Empty means no backward matches.
	inverse types.RelationshipKind
}

// kinds is keyed by every kind, including the derived Superseded.
var kinds = map[types.RelationshipKind]kindSpec{
	types.Requires:   {primer: "Requires", combine: "and"},
	types.Similar:    {primer: "Often used with", flat: true, combine: "and"},
	types.Related:    {primer: "Compare with", flat: true, combine: "and"},
	types.Dissimilar: {primer: "Avoid using with", flat: true, combine: "or", inverse: types.Dissimilar},
	types.Conflicts:  {primer: "Conflicts with", combine: "and", inverse: types.Conflicts},
	types.Supersedes: {primer: "Supersedes", flat: true, combine: "and", inverse: types.Superseded},
	types.Superseded: {primer: "Superseded by", flat: true, combine: "and", inverse: types.Supersedes},
}

// IsFlat reports whether kind forbids OR-groups.
func IsFlat(kind types.RelationshipKind) bool {
	return kinds[kind].flat
}

// Inverse returns the kind whose declarations point back at a subject of
// kind, and false when the kind has none.
func Inverse(kind types.RelationshipKind) (types.RelationshipKind, bool) {
	inv := kinds[kind].inverse
	return inv, inv != ""
}

// Primer returns the sentence opening for kind.
func Primer(kind types.RelationshipKind) string {
	return kinds[kind].primer
}
