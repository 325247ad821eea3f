// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relationship

import "github.com/pdiddy/taglist/pkg/types"

// owner is an entity that can declare relationships, seen from the
// backward search: its display reference and its declarations.
type owner struct {
	ref  types.Reference
	decl *types.Relationships
}

// owners lists every category, loose tag, and section tag in collection
// order. Sections themselves are not candidates.
func owners(defs *types.Definitions) []owner {
	var out []owner
	for _, c := range defs.Categories() {
		out = append(out, owner{ref: types.Reference(c.ID), decl: &c.Relationships})
		for _, t := range c.Tags {
			out = append(out, owner{ref: types.Reference(t.Name), decl: &t.Relationships})
		}
		for _, s := range c.Sections {
			for _, t := range s.Tags {
				out = append(out, owner{ref: types.Reference(t.Name), decl: &t.Relationships})
			}
		}
	}
	return out
}

// Resolve returns the targets that name is connected to under kind: its
// own declarations for kind, followed by every entity whose declarations
// for the inverse kind mention name. An entity that mentions name only
// inside an OR-group is returned as an Alternative. Duplicates are removed,
// keeping the first occurrence.
//
// Resolve scans the whole collection; use an Index when resolving many
// subjects against the same collection.
func Resolve(defs *types.Definitions, name string, decl *types.Relationships, kind types.RelationshipKind) []types.RelationshipItem {
	var backward []types.RelationshipItem
	if inv, ok := Inverse(kind); ok {
		subject := types.Reference(name)
		for _, o := range owners(defs) {
			if item, ok := backwardTarget(o, o.decl.List(inv), subject); ok {
				backward = append(backward, item)
			}
		}
	}
	return dedupe(forward(decl, kind), backward)
}

// forward returns the subject's own declarations for kind.
func forward(decl *types.Relationships, kind types.RelationshipKind) types.RelationshipList {
	if kind == types.Superseded {
		return nil
	}
	return decl.List(kind)
}

// backwardTarget reports how o refers to subject in list. A bare mention
// outranks a mention inside an OR-group.
func backwardTarget(o owner, list types.RelationshipList, subject types.Reference) (types.RelationshipItem, bool) {
	grouped := false
	for _, item := range list {
		found, inGroup := item.Contains(subject)
		if !found {
			continue
		}
		if !inGroup {
			return types.Plain(o.ref), true
		}
		grouped = true
	}
	if grouped {
		return types.Alternative(o.ref), true
	}
	return types.RelationshipItem{}, false
}

func dedupe(lists ...[]types.RelationshipItem) []types.RelationshipItem {
	seen := make(map[string]bool)
	var out []types.RelationshipItem
	for _, list := range lists {
		for _, item := range list {
			key := item.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}

// Index answers backward lookups from a single scan of a collection.
// It is only valid while the collection is unchanged.
type Index struct {
	// backward maps declared kind -> referenced name -> owners, in
	// collection order.
	backward map[types.RelationshipKind]map[types.Reference][]types.RelationshipItem
}

// NewIndex scans defs once and records every declared reference.
func NewIndex(defs *types.Definitions) *Index {
	idx := &Index{backward: make(map[types.RelationshipKind]map[types.Reference][]types.RelationshipItem)}
	for _, o := range owners(defs) {
		for _, kind := range types.DeclarableKinds {
			idx.add(o, kind)
		}
	}
	return idx
}

func (idx *Index) add(o owner, kind types.RelationshipKind) {
	list := o.decl.List(kind)
	if len(list) == 0 {
		return
	}

	// Per referenced name: whether every mention is inside a group.
	var order []types.Reference
	grouped := make(map[types.Reference]bool)
	for _, item := range list {
		refs := item.AnyOf
		if !item.IsGroup() {
			refs = []types.Reference{item.Ref}
		}
		for _, r := range refs {
			prev, seen := grouped[r]
			if !seen {
				order = append(order, r)
				grouped[r] = item.IsGroup()
				continue
			}
			grouped[r] = prev && item.IsGroup()
		}
	}

	byRef := idx.backward[kind]
	if byRef == nil {
		byRef = make(map[types.Reference][]types.RelationshipItem)
		idx.backward[kind] = byRef
	}
	for _, r := range order {
		target := types.Plain(o.ref)
		if grouped[r] {
			target = types.Alternative(o.ref)
		}
		byRef[r] = append(byRef[r], target)
	}
}

// Resolve is equivalent to the package-level Resolve against the
// collection the index was built from.
func (idx *Index) Resolve(name string, decl *types.Relationships, kind types.RelationshipKind) []types.RelationshipItem {
	var backward []types.RelationshipItem
	if inv, ok := Inverse(kind); ok {
		backward = idx.backward[inv][types.Reference(name)]
	}
	return dedupe(forward(decl, kind), backward)
}
