// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relationship

import (
	"strings"

	"github.com/pdiddy/taglist/pkg/types"
)

// Sentence renders resolved targets for kind, for example
// "Requires 't1'; 't2'; and either 't3', or 't4'". It returns false when
// there are no targets.
func Sentence(targets []types.RelationshipItem, kind types.RelationshipKind) (string, bool) {
	if len(targets) == 0 {
		return "", false
	}
	spec := kinds[kind]

	// Semicolons keep top-level items apart from the commas inside groups.
	delim := ","
	if types.RelationshipList(targets).HasGroup() {
		delim = ";"
	}

	// A collapsed alternative can repeat a plain target already listed.
	items := make([]types.RelationshipItem, len(targets))
	for i, item := range targets {
		items[i] = collapse(item)
	}
	items = dedupe(items)

	var b strings.Builder
	b.WriteString(spec.primer)
	last := len(items) - 1
	for i, item := range items {
		if i > 0 {
			b.WriteString(delim)
			if i == last {
				b.WriteString(" ")
				b.WriteString(spec.combine)
			}
		}
		b.WriteString(" ")
		b.WriteString(renderItem(item))
	}
	return b.String(), true
}

// collapse turns an OR-group of one tag into a plain reference; "either of
// one" means the same thing. A lone category keeps its group form, which
// reads as "any of category".
func collapse(item types.RelationshipItem) types.RelationshipItem {
	if item.IsGroup() && len(item.AnyOf) == 1 && !item.AnyOf[0].IsCategory() {
		return types.Plain(item.AnyOf[0])
	}
	return item
}

func renderItem(item types.RelationshipItem) string {
	if !item.IsGroup() {
		if item.Ref.IsCategory() {
			return "all tags from category '" + item.Ref.Name() + "'"
		}
		return "'" + string(item.Ref) + "'"
	}

	var b strings.Builder
	if len(item.AnyOf) == 2 {
		b.WriteString("either")
	} else {
		b.WriteString("any of")
	}
	last := len(item.AnyOf) - 1
	for i, ref := range item.AnyOf {
		switch {
		case i == 0:
		case i == last:
			b.WriteString(", or")
		default:
			b.WriteString(",")
		}
		b.WriteString(" ")
		if ref.IsCategory() {
			if i > 0 {
				b.WriteString("any of ")
			}
			b.WriteString("category ")
		}
		b.WriteString("'" + ref.Name() + "'")
	}
	return b.String()
}
