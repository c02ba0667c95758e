// Package demodata writes the sample project used for manual testing of the
// generation endpoints.
package demodata

import (
	"encoding/json"
	"os"
	"path/filepath"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/pkg/sourceparser"

	"github.com/rotisserie/eris"
)

const DemoProjectID = "demo-mobile-app"

// Step reports one finished unit of work.
type Step struct {
	Name  string
	Path  string
	Count int
}

type Summary struct {
	Steps []Step
}

func (s *Summary) add(name, path string, count int) {
	s.Steps = append(s.Steps, Step{Name: name, Path: path, Count: count})
}

// Generate creates raw/, processed/ and sample-uploads/ under outDir, writes
// the fixtures, then writes enriched copies and a ready-to-send generation
// request built from them.
func Generate(outDir string) (*Summary, error) {
	summary := &Summary{}

	dirs := map[string]string{}
	for _, name := range []string{"raw", "processed", "sample-uploads"} {
		dir := filepath.Join(outDir, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, eris.Wrapf(err, "failed to create %s", dir)
		}
		dirs[name] = dir
		summary.add("directory", dir, 0)
	}

	paths := sourceparser.Paths{
		Emails:    filepath.Join(dirs["processed"], "emails.json"),
		Meetings:  filepath.Join(dirs["processed"], "meetings.json"),
		Slack:     filepath.Join(dirs["processed"], "slack.json"),
		Documents: []string{filepath.Join(dirs["sample-uploads"], "requirements.txt")},
	}

	emails, meetings, slack := Emails(), Meetings(), SlackMessages()
	if err := writeJSON(paths.Emails, emails); err != nil {
		return nil, err
	}
	summary.add("emails", paths.Emails, len(emails))

	if err := writeJSON(paths.Meetings, meetings); err != nil {
		return nil, err
	}
	summary.add("meetings", paths.Meetings, len(meetings))

	if err := writeJSON(paths.Slack, slack); err != nil {
		return nil, err
	}
	summary.add("slack", paths.Slack, len(slack))

	if err := os.WriteFile(paths.Documents[0], []byte(RequirementsText), 0o644); err != nil {
		return nil, eris.Wrapf(err, "failed to write %s", paths.Documents[0])
	}
	summary.add("requirements", paths.Documents[0], 1)

	bundle, err := sourceparser.ParseAll(paths)
	if err != nil {
		return nil, err
	}

	enriched := []struct {
		name  string
		value interface{}
		count int
	}{
		{"emails_enriched", bundle.Emails, len(bundle.Emails)},
		{"meetings_enriched", bundle.Meetings, len(bundle.Meetings)},
		{"slack_enriched", bundle.Slack, len(bundle.Slack)},
		{"documents_enriched", bundle.Documents, len(bundle.Documents)},
	}
	for _, e := range enriched {
		path := filepath.Join(dirs["processed"], e.name+".json")
		if err := writeJSON(path, e.value); err != nil {
			return nil, err
		}
		summary.add(e.name, path, e.count)
	}

	requestPath := filepath.Join(dirs["processed"], "generate_request.json")
	request := dto.GenerateBRDRequest{
		ProjectID:   DemoProjectID,
		DataSources: bundle.DataSources(),
	}
	if err := writeJSON(requestPath, request); err != nil {
		return nil, err
	}
	summary.add("generate_request", requestPath, 1)

	return summary, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "failed to encode %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
