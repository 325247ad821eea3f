// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/taglist/pkg/types"
)

func sampleDefs() *types.Definitions {
	three := 3
	defs := types.NewDefinitions()
	defs.Put(&types.Category{
		ID:   "genre/",
		Name: "Genre",
		Max:  &three,
		Tags: []*types.Tag{
			{
				Name:          "horror",
				Description:   "scary",
				Permissions:   &types.Permissions{Remove: types.PermissionStaff},
				Relationships: types.Relationships{Conflicts: types.RelationshipList{types.Plain("comedy")}},
			},
			{Name: "comedy"},
		},
		Sections: []*types.Section{{
			Name: "old",
			Tags: []*types.Tag{{
				Name:          "spooky",
				Relationships: types.Relationships{Supersedes: types.RelationshipList{types.Plain("horror")}},
			}},
		}},
	})
	return defs
}

func TestEntries(t *testing.T) {
	entries := Entries(sampleDefs())
	require.Len(t, entries, 1)

	g := entries[0]
	assert.Equal(t, "genre/", g.ID)
	assert.Equal(t, 3, *g.Max)
	assert.Equal(t, []string{}, g.Relationships)
	require.Len(t, g.Tags, 2)
	assert.Equal(t, []string{"Conflicts with 'comedy'", "Superseded by 'spooky'"}, g.Tags[0].Relationships)
	assert.Equal(t, []string{"Conflicts with 'horror'"}, g.Tags[1].Relationships)
	require.Len(t, g.Sections, 1)
	assert.Equal(t, "old", g.Sections[0].Name)
	assert.Equal(t, []string{"Supersedes 'horror'"}, g.Sections[0].Tags[0].Relationships)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, sampleDefs()))

	var got []CategoryEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Genre", got[0].Name)
	assert.Equal(t, types.PermissionStaff, got[0].Tags[0].Permissions.Remove)
	assert.Contains(t, buf.String(), "Superseded by 'spooky'")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleDefs()))

	var got []CategoryEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "comedy", got[0].Tags[1].Name)
	assert.Equal(t, []string{"Conflicts with 'horror'"}, got[0].Tags[1].Relationships)
}

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, types.NewDefinitions(), types.OutputJSON))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, types.NewDefinitions(), ""))
	assert.Equal(t, "[]\n", buf.String())

	assert.Error(t, Write(&buf, types.NewDefinitions(), "csv"))
}
