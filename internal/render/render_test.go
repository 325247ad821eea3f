// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/taglist/pkg/types"
)

func sampleDefs() *types.Definitions {
	defs := types.NewDefinitions()
	defs.Put(&types.Category{
		ID:   "genre/",
		Name: "Genre",
		Tags: []*types.Tag{
			{Name: "horror", RelationshipStrings: []string{"Conflicts with 'comedy'", "Often used with 'thriller'"}},
			{Name: "comedy", RelationshipStrings: []string{"Conflicts with 'horror'"}},
		},
	})
	defs.Put(&types.Category{ID: "format/", Name: "Format"})
	return defs
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{
			"method",
			`{{ with .GetCategory "genre/" }}{{ .Name }}:{{ range .Tags }} {{ .Name }}{{ end }}{{ end }}`,
			"Genre: horror comedy",
		},
		{
			"function",
			`{{ (getCategory "format/").Name }}`,
			"Format",
		},
		{
			"join relationship strings",
			`{{ range (getCategory "genre/").Tags }}{{ .Name }}: {{ join "; " .RelationshipStrings }}|{{ end }}`,
			"horror: Conflicts with 'comedy'; Often used with 'thriller'|comedy: Conflicts with 'horror'|",
		},
		{
			"all categories",
			`{{ range .Categories }}{{ display .ID }} {{ end }}`,
			"genre format ",
		},
		{
			"lower",
			`{{ lower (getCategory "genre/").Name }}`,
			"genre",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, "test", tt.tmpl, sampleDefs()))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name      string
		tmpl      string
		wantStage string
		wantMsg   string
	}{
		{"unparseable", `{{ .GetCategory "genre/" `, "parse", ""},
		{"missing marker", `{{ .GetCategory "genre" }}`, "execute", "must end in"},
		{"unknown category", `{{ getCategory "nope/" }}`, "execute", "has not been loaded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, "test", "partial output "+tt.tmpl, sampleDefs())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrRender))

			var re *RenderError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.wantStage, re.Stage)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Empty(t, buf.String(), "failed render must not write partial output")
		})
	}
}

func TestRenderLeavesDefinitionsUsable(t *testing.T) {
	defs := sampleDefs()

	var buf bytes.Buffer
	require.Error(t, Render(&buf, "bad", `{{ getCategory "missing/" }}`, defs))

	buf.Reset()
	require.NoError(t, Render(&buf, "good", `{{ (getCategory "genre/").Name }}`, defs))
	assert.Equal(t, "Genre", buf.String())
}
