package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	tmpl := Default()

	require.Len(t, tmpl.Sections, 8)
	assert.Equal(t, []string{
		"executive_summary", "business_goals", "stakeholders", "scope",
		"functional_requirements", "non_functional_requirements", "timeline", "success_metrics",
	}, tmpl.SectionIDs())

	tmpl.Sections[0].Title = "changed"
	assert.Equal(t, "Executive Summary", Default().Sections[0].Title)
}

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "custom.json", `{"sections":[{"id":"goals","title":"Goals","required":true}]}`)
	writeFile(t, dir, "lean.yaml", "sections:\n  - id: summary\n    title: Summary\n  - id: risks\n")
	writeFile(t, dir, "broken.json", `{"sections":`)
	writeFile(t, dir, "empty.yml", "sections: []\n")

	store := NewStore(dir, nil)

	tests := []struct {
		name    string
		input   string
		wantIDs []string
		wantTpl string
	}{
		{name: "json", input: "custom", wantIDs: []string{"goals"}, wantTpl: "custom"},
		{name: "yaml", input: "lean", wantIDs: []string{"summary", "risks"}, wantTpl: "lean"},
		{name: "unknown falls back", input: "nope", wantIDs: Default().SectionIDs(), wantTpl: DefaultName},
		{name: "broken falls back", input: "broken", wantIDs: Default().SectionIDs(), wantTpl: DefaultName},
		{name: "no sections falls back", input: "empty", wantIDs: Default().SectionIDs(), wantTpl: DefaultName},
		{name: "empty name", input: "", wantIDs: Default().SectionIDs(), wantTpl: DefaultName},
		{name: "path traversal", input: "../custom", wantIDs: Default().SectionIDs(), wantTpl: DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := store.Load(tt.input)
			assert.Equal(t, tt.wantIDs, tmpl.SectionIDs())
			assert.Equal(t, tt.wantTpl, tmpl.Name)
		})
	}
}

func TestParse_TitleDefaultsToID(t *testing.T) {
	tmpl, err := Parse([]byte("sections:\n  - id: risks\n"), ".yaml")
	require.NoError(t, err)

	sec, ok := tmpl.Section("risks")
	require.True(t, ok)
	assert.Equal(t, "risks", sec.Title)
}

func TestStoreLoad_ShippedTemplates(t *testing.T) {
	store := NewStore(filepath.Join("..", "..", "templates"), nil)

	assert.Equal(t, Default().SectionIDs(), store.Load("comprehensive").SectionIDs())
	assert.Contains(t, store.Load("lean").SectionIDs(), "risks")
	assert.Contains(t, store.Load("agile").SectionIDs(), "user_stories")
}
