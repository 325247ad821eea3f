// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relationship

import (
	"reflect"
	"testing"

	"github.com/pdiddy/taglist/pkg/types"
)

// --- test helpers ---

func tag(name string, rel types.Relationships) *types.Tag {
	return &types.Tag{Name: name, Relationships: rel}
}

func defsOf(cats ...*types.Category) *types.Definitions {
	d := types.NewDefinitions()
	for _, c := range cats {
		d.Put(c)
	}
	return d
}

// sampleDefs builds two categories that refer to each other, with loose
// tags, a section, and every relationship kind in use.
func sampleDefs() *types.Definitions {
	genre := &types.Category{
		ID:            "genre/",
		Relationships: types.Relationships{Requires: types.RelationshipList{p("format/")}},
		Tags: []*types.Tag{
			tag("horror", types.Relationships{
				Similar:    types.RelationshipList{p("thriller")},
				Dissimilar: types.RelationshipList{p("comedy")},
			}),
			tag("comedy", types.Relationships{
				Conflicts: types.RelationshipList{p("horror"), g("tale", "essay")},
			}),
			tag("thriller", types.Relationships{}),
		},
		Sections: []*types.Section{{
			Name:          "legacy",
			Relationships: types.Relationships{Conflicts: types.RelationshipList{p("horror")}},
			Tags: []*types.Tag{
				tag("scary", types.Relationships{Supersedes: types.RelationshipList{p("horror")}}),
			},
		}},
	}
	format := &types.Category{
		ID:            "format/",
		Relationships: types.Relationships{Conflicts: types.RelationshipList{p("thriller")}},
		Tags: []*types.Tag{
			tag("tale", types.Relationships{Requires: types.RelationshipList{g("horror", "comedy"), p("genre/")}}),
			tag("essay", types.Relationships{Conflicts: types.RelationshipList{g("tale", "comedy"), p("comedy")}}),
		},
	}
	return defsOf(genre, format)
}

func TestResolveForwardOnly(t *testing.T) {
	defs := sampleDefs()
	tale := mustCategory(t, defs, "format/").Tag("tale")

	got := Resolve(defs, "tale", &tale.Relationships, types.Requires)
	want := []types.RelationshipItem{g("horror", "comedy"), p("genre/")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveBackward(t *testing.T) {
	defs := sampleDefs()
	genre := mustCategory(t, defs, "genre/")
	format := mustCategory(t, defs, "format/")

	tests := []struct {
		name    string
		subject string
		decl    *types.Relationships
		kind    types.RelationshipKind
		want    []types.RelationshipItem
	}{
		{
			"conflict declared by the other side, sections ignored",
			"horror", &genre.Tag("horror").Relationships, types.Conflicts,
			[]types.RelationshipItem{p("comedy")},
		},
		{
			"forward then backward, bare mention wins over group",
			"comedy", &genre.Tag("comedy").Relationships, types.Conflicts,
			[]types.RelationshipItem{p("horror"), g("tale", "essay"), p("essay")},
		},
		{
			"mention inside an OR-group becomes an alternative",
			"tale", &format.Tag("tale").Relationships, types.Conflicts,
			[]types.RelationshipItem{types.Alternative("comedy"), types.Alternative("essay")},
		},
		{
			"category is a backward candidate",
			"thriller", &genre.Tag("thriller").Relationships, types.Conflicts,
			[]types.RelationshipItem{p("format/")},
		},
		{
			"dissimilar is symmetric",
			"comedy", &genre.Tag("comedy").Relationships, types.Dissimilar,
			[]types.RelationshipItem{p("horror")},
		},
		{
			"similar has no inverse",
			"thriller", &genre.Tag("thriller").Relationships, types.Similar,
			nil,
		},
		{
			"requires has no inverse",
			"horror", &genre.Tag("horror").Relationships, types.Requires,
			nil,
		},
		{
			"superseded comes from supersedes",
			"horror", &genre.Tag("horror").Relationships, types.Superseded,
			[]types.RelationshipItem{p("scary")},
		},
		{
			"supersedes is forward only",
			"scary", &genre.Sections[0].Tags[0].Relationships, types.Supersedes,
			[]types.RelationshipItem{p("horror")},
		},
		{
			"supersedes is not reflected onto the superseded tag",
			"horror", &genre.Tag("horror").Relationships, types.Supersedes,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(defs, tt.subject, tt.decl, tt.kind)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDedupes(t *testing.T) {
	defs := defsOf(&types.Category{ID: "c/", Tags: []*types.Tag{
		tag("a", types.Relationships{Requires: types.RelationshipList{p("t1"), p("t1")}}),
		tag("b", types.Relationships{Requires: types.RelationshipList{p("t1")}}),
	}})
	a := mustCategory(t, defs, "c/").Tag("a")
	b := mustCategory(t, defs, "c/").Tag("b")

	got := Resolve(defs, "a", &a.Relationships, types.Requires)
	if len(got) != 1 {
		t.Fatalf("Resolve returned %d targets, want 1: %v", len(got), got)
	}

	sa, _ := Sentence(got, types.Requires)
	sb, _ := Sentence(Resolve(defs, "b", &b.Relationships, types.Requires), types.Requires)
	if sa != sb {
		t.Errorf("duplicated declaration renders %q, single renders %q", sa, sb)
	}
}

func TestResolveSupersededCannotBeDeclared(t *testing.T) {
	var decl types.Relationships
	if decl.Set(types.Superseded, types.RelationshipList{p("x")}) {
		t.Fatal("Set(superseded) succeeded, want refusal")
	}
	got := Resolve(types.NewDefinitions(), "a", &decl, types.Superseded)
	if len(got) != 0 {
		t.Errorf("Resolve(superseded) = %v, want empty", got)
	}
}

func TestIndexMatchesResolve(t *testing.T) {
	defs := sampleDefs()
	idx := NewIndex(defs)

	for _, c := range defs.Categories() {
		check := func(name string, decl *types.Relationships) {
			for _, kind := range types.DocumentationOrder {
				want := Resolve(defs, name, decl, kind)
				got := idx.Resolve(name, decl, kind)
				if !reflect.DeepEqual(got, want) {
					t.Errorf("%s %s: index = %v, scan = %v", name, kind, got, want)
				}
			}
		}
		check(c.ID, &c.Relationships)
		for _, s := range c.Sections {
			check(s.Name, &s.Relationships)
		}
		for _, tg := range c.AllTags() {
			check(tg.Name, &tg.Relationships)
		}
	}
}

func mustCategory(t *testing.T, defs *types.Definitions, id string) *types.Category {
	t.Helper()
	c, ok := defs.Get(id)
	if !ok {
		t.Fatalf("category %s not found", id)
	}
	return c
}
