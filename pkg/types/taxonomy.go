// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the taglist pipeline:
// the tag taxonomy (categories, sections, tags, relationship declarations)
// and the CLI configuration.
package types

import (
	"strings"
)

// CategoryMarker terminates every category identifier. A relationship
// reference ending in the marker names all tags of that category.
const CategoryMarker = "/"

// Reference names a tag, or a whole category when it ends in CategoryMarker.
type Reference string

// IsCategory reports whether the reference names a category.
func (r Reference) IsCategory() bool {
	return strings.HasSuffix(string(r), CategoryMarker)
}

// Name returns the reference with the category marker stripped.
func (r Reference) Name() string {
	return strings.TrimSuffix(string(r), CategoryMarker)
}

// RelationshipItem is one entry of a relationship list: either a single
// reference, or an OR-group meaning "any one of these".
//
// A one-member OR-group is also how the resolver marks a backward target
// reached through someone else's OR-group (see Alternative).
type RelationshipItem struct {
	// Ref is set for a plain item.
	Ref Reference `json:"ref,omitempty" yaml:"ref,omitempty"`

	// AnyOf is set for an OR-group. Order is significant.
	AnyOf []Reference `json:"any_of,omitempty" yaml:"any_of,omitempty"`
}

// Plain returns a single-reference item.
func Plain(ref Reference) RelationshipItem {
	return RelationshipItem{Ref: ref}
}

// AnyOf returns an OR-group item.
func AnyOf(refs ...Reference) RelationshipItem {
	group := make([]Reference, len(refs))
	copy(group, refs)
	return RelationshipItem{AnyOf: group}
}

// Alternative returns a one-member OR-group: name satisfies the
// relationship as one of several alternatives.
func Alternative(name Reference) RelationshipItem {
	return AnyOf(name)
}

// IsGroup reports whether the item is an OR-group.
func (i RelationshipItem) IsGroup() bool {
	return i.AnyOf != nil
}

// Key returns a structural identity for deduplication. A plain reference
// and a one-member group of the same name have different keys.
func (i RelationshipItem) Key() string {
	if !i.IsGroup() {
		return "ref:" + string(i.Ref)
	}
	parts := make([]string, len(i.AnyOf))
	for n, r := range i.AnyOf {
		parts[n] = string(r)
	}
	return "any:" + strings.Join(parts, "\x00")
}

// Contains reports whether ref appears in the item, and whether it was
// found inside an OR-group.
func (i RelationshipItem) Contains(ref Reference) (found, grouped bool) {
	if !i.IsGroup() {
		return i.Ref == ref, false
	}
	for _, r := range i.AnyOf {
		if r == ref {
			return true, true
		}
	}
	return false, false
}

// RelationshipList is an ordered AND-combination of relationship items.
type RelationshipList []RelationshipItem

// HasGroup reports whether any item is an OR-group.
func (l RelationshipList) HasGroup() bool {
	for _, item := range l {
		if item.IsGroup() {
			return true
		}
	}
	return false
}

// RelationshipKind names how one tag relates to another.
type RelationshipKind string

const (
	Requires   RelationshipKind = "requires"
	Similar    RelationshipKind = "similar"
	Related    RelationshipKind = "related"
	Dissimilar RelationshipKind = "dissimilar"
	Conflicts  RelationshipKind = "conflicts"
	Supersedes RelationshipKind = "supersedes"

	// Superseded is derived from other entities' Supersedes declarations
	// and can never be declared.
	Superseded RelationshipKind = "superseded"
)

// DeclarableKinds lists the kinds that configuration may declare, in
// configuration-key order.
var DeclarableKinds = []RelationshipKind{
	Requires, Similar, Related, Dissimilar, Conflicts, Supersedes,
}

// DocumentationOrder is the order in which relationship sentences are
// listed for an entity.
var DocumentationOrder = []RelationshipKind{
	Requires, Similar, Dissimilar, Conflicts, Supersedes, Superseded, Related,
}

// Relationships holds the declared relationship lists of a category,
// section, or tag.
type Relationships struct {
	Requires   RelationshipList `json:"requires,omitempty" yaml:"requires,omitempty"`
	Similar    RelationshipList `json:"similar,omitempty" yaml:"similar,omitempty"`
	Related    RelationshipList `json:"related,omitempty" yaml:"related,omitempty"`
	Dissimilar RelationshipList `json:"dissimilar,omitempty" yaml:"dissimilar,omitempty"`
	Conflicts  RelationshipList `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	Supersedes RelationshipList `json:"supersedes,omitempty" yaml:"supersedes,omitempty"`
}

// List returns the declared list for kind. Superseded and unknown kinds
// always yield nil.
func (r *Relationships) List(kind RelationshipKind) RelationshipList {
	if r == nil {
		return nil
	}
	switch kind {
	case Requires:
		return r.Requires
	case Similar:
		return r.Similar
	case Related:
		return r.Related
	case Dissimilar:
		return r.Dissimilar
	case Conflicts:
		return r.Conflicts
	case Supersedes:
		return r.Supersedes
	}
	return nil
}

// Set stores list under kind. It reports false for kinds that cannot be
// declared.
func (r *Relationships) Set(kind RelationshipKind, list RelationshipList) bool {
	switch kind {
	case Requires:
		r.Requires = list
	case Similar:
		r.Similar = list
	case Related:
		r.Related = list
	case Dissimilar:
		r.Dissimilar = list
	case Conflicts:
		r.Conflicts = list
	case Supersedes:
		r.Supersedes = list
	default:
		return false
	}
	return true
}

// PermissionGroup is a class of wiki users allowed to act on a tag.
type PermissionGroup string

const (
	PermissionAnyone PermissionGroup = "anyone"
	PermissionAuthor PermissionGroup = "author"
	PermissionStaff  PermissionGroup = "staff"
)

// Permissions restricts who may add, remove, or modify a tag on a page.
type Permissions struct {
	Add    PermissionGroup `json:"add,omitempty" yaml:"add,omitempty" validate:"omitempty,oneof=anyone author staff"`
	Remove PermissionGroup `json:"remove,omitempty" yaml:"remove,omitempty" validate:"omitempty,oneof=anyone author staff"`
	Modify PermissionGroup `json:"modify,omitempty" yaml:"modify,omitempty" validate:"omitempty,oneof=anyone author staff"`
}

// Tag is a single named tag.
type Tag struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty" yaml:"permissions,omitempty"`

	Relationships `yaml:",inline"`

	// RelationshipStrings is derived by the documentation pass and never
	// read from configuration.
	RelationshipStrings []string `json:"relationship_strings,omitempty" yaml:"relationship_strings,omitempty"`
}

// Section is a named subgroup of tags within a category.
type Section struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Relationships `yaml:",inline"`

	// Tags are in configuration order.
	Tags []*Tag `json:"tags" yaml:"tags"`

	RelationshipStrings []string `json:"relationship_strings,omitempty" yaml:"relationship_strings,omitempty"`
}

// Category is a top-level grouping of tags, identified by a name ending in
// CategoryMarker.
type Category struct {
	ID          string       `json:"id" yaml:"id" validate:"required,endswith=/"`
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Max         *int         `json:"max,omitempty" yaml:"max,omitempty" validate:"omitempty,gte=0"`
	Permissions *Permissions `json:"permissions,omitempty" yaml:"permissions,omitempty"`

	Relationships `yaml:",inline"`

	// Tags holds the loose tags that belong to no section, in
	// configuration order.
	Tags []*Tag `json:"tags" yaml:"tags"`

	Sections []*Section `json:"sections" yaml:"sections"`

	RelationshipStrings []string `json:"relationship_strings,omitempty" yaml:"relationship_strings,omitempty"`
}

// Tag returns the loose tag or section tag called name, or nil.
func (c *Category) Tag(name string) *Tag {
	for _, t := range c.Tags {
		if t.Name == name {
			return t
		}
	}
	for _, s := range c.Sections {
		for _, t := range s.Tags {
			if t.Name == name {
				return t
			}
		}
	}
	return nil
}

// AllTags returns loose tags followed by section tags in section order.
func (c *Category) AllTags() []*Tag {
	all := make([]*Tag, 0, len(c.Tags))
	all = append(all, c.Tags...)
	for _, s := range c.Sections {
		all = append(all, s.Tags...)
	}
	return all
}
