package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"reqforge-ai-be/internal/pkg/logger"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

const (
	moduleName  = "template"
	DefaultName = "comprehensive"
)

type Section struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// Template is an ordered list of BRD sections.
type Template struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// SectionIDs returns section ids in template order.
func (t *Template) SectionIDs() []string {
	ids := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func (t *Template) Section(id string) (Section, bool) {
	for _, s := range t.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Default is the built-in comprehensive template. Every call returns a new value.
func Default() *Template {
	return &Template{
		Name: DefaultName,
		Sections: []Section{
			{ID: "executive_summary", Title: "Executive Summary", Required: true},
			{ID: "business_goals", Title: "Business Goals", Required: true},
			{ID: "stakeholders", Title: "Stakeholders", Required: true},
			{ID: "scope", Title: "Scope and Limitations", Required: true},
			{ID: "functional_requirements", Title: "Functional Requirements", Required: true},
			{ID: "non_functional_requirements", Title: "Non-Functional Requirements", Required: true},
			{ID: "timeline", Title: "Timeline & Milestones", Required: true},
			{ID: "success_metrics", Title: "Success Metrics", Required: true},
		},
	}
}

type IStore interface {
	Load(name string) *Template
}

// Store reads templates from a directory on every call.
type Store struct {
	dir    string
	logger logger.ILogger
}

func NewStore(dir string, log logger.ILogger) *Store {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Store{dir: dir, logger: log}
}

var extensions = []string{".json", ".yaml", ".yml"}

// Load resolves name to <dir>/<name>.{json,yaml,yml}. Unknown, unreadable or
// empty templates fall back to Default.
func (s *Store) Load(name string) *Template {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return Default()
	}

	for _, ext := range extensions {
		path := filepath.Join(s.dir, name+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		tmpl, err := Parse(data, ext)
		if err != nil {
			s.logger.Warn(moduleName, "Invalid template file, using default", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			return Default()
		}
		if tmpl.Name == "" {
			tmpl.Name = name
		}
		return tmpl
	}

	return Default()
}

// Parse decodes a template from JSON or YAML depending on ext.
func Parse(data []byte, ext string) (*Template, error) {
	var tmpl Template
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &tmpl); err != nil {
			return nil, eris.Wrap(err, "decode json template")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return nil, eris.Wrap(err, "decode yaml template")
		}
	default:
		return nil, eris.Errorf("unsupported template extension %q", ext)
	}

	if len(tmpl.Sections) == 0 {
		return nil, eris.New("template has no sections")
	}
	for i, sec := range tmpl.Sections {
		if sec.ID == "" {
			return nil, eris.Errorf("section %d has no id", i)
		}
		if sec.Title == "" {
			tmpl.Sections[i].Title = sec.ID
		}
	}
	return &tmpl, nil
}
