package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/pkg/template"
	"reqforge-ai-be/pkg/utils"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
)

const (
	defaultExportTitle = "Business Requirements Document"
	xlsxContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	brdSheet          = "BRD"
	requirementsSheet = "Requirements"
)

type IExportService interface {
	Export(ctx context.Context, req *dto.ExportRequest) (*dto.ExportResponse, error)
	ExportXLSX(ctx context.Context, req *dto.ExportRequest) (*dto.ExportFile, error)
}

type exportService struct {
	templates template.IStore
	publisher IPublisherService
	logger    logger.ILogger
}

func NewExportService(templates template.IStore, publisher IPublisherService, log logger.ILogger) IExportService {
	return &exportService{
		templates: templates,
		publisher: publisher,
		logger:    log,
	}
}

type exportSection struct {
	Title string
	Value interface{}
}

func exportTitle(req *dto.ExportRequest) string {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return defaultExportTitle
	}
	return title
}

// orderedSections lists template sections first, in template order, then any
// other keys alphabetically. Generated {title, content, completed} objects are
// unwrapped to their content.
func (s *exportService) orderedSections(req *dto.ExportRequest) []exportSection {
	tmpl := s.templates.Load(req.Template)
	sections := make([]exportSection, 0, len(req.BrdContent))

	rendered := make(map[string]bool, len(req.BrdContent))
	for _, sec := range tmpl.Sections {
		value, ok := req.BrdContent[sec.ID]
		if !ok {
			continue
		}
		sections = append(sections, unwrapSection(sec.Title, value))
		rendered[sec.ID] = true
	}

	rest := make([]string, 0, len(req.BrdContent))
	for key := range req.BrdContent {
		if !rendered[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		sections = append(sections, unwrapSection(utils.HumanizeID(key), req.BrdContent[key]))
	}
	return sections
}

func (s *exportService) Export(ctx context.Context, req *dto.ExportRequest) (*dto.ExportResponse, error) {
	title := exportTitle(req)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	for _, sec := range s.orderedSections(req) {
		sb.WriteString(utils.FormatSection(sec.Title, sec.Value))
	}

	res := &dto.ExportResponse{
		Filename: utils.SanitizeFilename(title) + ".md",
		Markdown: strings.TrimRight(sb.String(), "\n") + "\n",
	}

	s.publisher.PublishBRDExported(ctx, res.Filename, len(req.BrdContent))

	return res, nil
}

// ExportXLSX writes a workbook with one row per section and a second sheet
// listing the requirements found in the section texts.
func (s *exportService) ExportXLSX(ctx context.Context, req *dto.ExportRequest) (*dto.ExportFile, error) {
	title := exportTitle(req)
	sections := s.orderedSections(req)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", brdSheet); err != nil {
		return nil, eris.Wrap(err, "rename sheet")
	}
	if _, err := f.NewSheet(requirementsSheet); err != nil {
		return nil, eris.Wrap(err, "create requirements sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, eris.Wrap(err, "create header style")
	}

	brdRows := [][]interface{}{{title}, {"Section", "Content"}}
	var reqRows [][]interface{}
	reqRows = append(reqRows, []interface{}{"ID", "Requirement", "Section"})
	for _, sec := range sections {
		text := sectionText(sec.Value)
		brdRows = append(brdRows, []interface{}{sec.Title, text})
		for _, sentence := range utils.ExtractRequirements(text) {
			reqRows = append(reqRows, []interface{}{utils.CreateRequirementID(sentence, len(reqRows)), sentence, sec.Title})
		}
	}

	if err := writeRows(f, brdSheet, brdRows); err != nil {
		return nil, err
	}
	if err := writeRows(f, requirementsSheet, reqRows); err != nil {
		return nil, err
	}
	for _, cells := range [][2]string{{"A1", "A1"}, {"A2", "B2"}} {
		if err := f.SetCellStyle(brdSheet, cells[0], cells[1], headerStyle); err != nil {
			return nil, eris.Wrap(err, "style brd header")
		}
	}
	if err := f.SetCellStyle(requirementsSheet, "A1", "C1", headerStyle); err != nil {
		return nil, eris.Wrap(err, "style requirements header")
	}
	if err := f.SetColWidth(brdSheet, "A", "A", 30); err != nil {
		return nil, eris.Wrap(err, "set column width")
	}
	if err := f.SetColWidth(brdSheet, "B", "B", 100); err != nil {
		return nil, eris.Wrap(err, "set column width")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, eris.Wrap(err, "write workbook")
	}

	file := &dto.ExportFile{
		Filename:    utils.SanitizeFilename(title) + ".xlsx",
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}

	s.logger.Info("ExportService", "Workbook exported", map[string]interface{}{
		"filename":     file.Filename,
		"sections":     len(sections),
		"requirements": len(reqRows) - 1,
	})
	s.publisher.PublishBRDExported(ctx, file.Filename, len(req.BrdContent))

	return file, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return eris.Wrap(err, "resolve cell")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return eris.Wrapf(err, "write %s row %d", sheet, i+1)
		}
	}
	return nil
}

func unwrapSection(title string, value interface{}) exportSection {
	if m, ok := value.(map[string]interface{}); ok {
		if content, has := m["content"]; has && isSectionEnvelope(m) {
			if t, ok := m["title"].(string); ok && t != "" {
				title = t
			}
			value = content
		}
	}
	return exportSection{Title: title, Value: value}
}

func isSectionEnvelope(m map[string]interface{}) bool {
	for k := range m {
		switch k {
		case "title", "content", "completed":
		default:
			return false
		}
	}
	return true
}

// sectionText flattens section content for a single spreadsheet cell.
func sectionText(value interface{}) string {
	switch val := value.(type) {
	case []interface{}:
		lines := make([]string, 0, len(val))
		for _, item := range val {
			lines = append(lines, utils.Stringify(item))
		}
		return strings.Join(lines, "\n")
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(val))
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %s", utils.HumanizeID(k), utils.Stringify(val[k])))
		}
		return strings.Join(lines, "\n")
	default:
		return utils.Stringify(val)
	}
}
