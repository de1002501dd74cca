package exporter

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

//go:embed template.docx
var wordTemplateFS embed.FS

// WordExporter renders the report as a Word summary document: session
// header, status tally and a per-row listing. Images stay in the Excel
// rendition.
type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(rows []model.Row, cols model.Columns, sel model.SessionSelection, cfg *config.Config) (string, error) {
	if err := checkPreconditions(rows, sel, cfg); err != nil {
		return "", err
	}

	// The docx library only opens files, so the embedded template goes
	// through a temp file first.
	templateBytes, err := wordTemplateFS.ReadFile("template.docx")
	if err != nil {
		return "", &BuildError{Stage: "word template", Err: err}
	}

	tmpFile, err := os.CreateTemp("", "nightshift-template-*.docx")
	if err != nil {
		return "", &BuildError{Stage: "word template", Err: err}
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return "", &BuildError{Stage: "word template", Err: err}
	}
	if err := tmpFile.Close(); err != nil {
		return "", &BuildError{Stage: "word template", Err: err}
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return "", &BuildError{Stage: "word template", Err: err}
	}
	defer r.Close()

	doc := r.Editable()

	doc.Replace("{{Date}}", sel.DisplayDate(), -1)
	doc.Replace("{{Inspector}}", sel.Inspector, -1)
	doc.Replace("{{Station}}", sel.Station, -1)
	doc.Replace("{{Content}}", e.buildContent(rows), -1)

	target := filepath.Join(cfg.Output.Dir, buildFilename(sel, cfg, ".docx"))
	if err := doc.WriteToFile(target); err != nil {
		return "", &BuildError{Stage: "word save", Err: err}
	}

	return target, nil
}

// buildContent renders the inspection summary as plain text; the docx
// library handles the XML encoding.
func (e *WordExporter) buildContent(rows []model.Row) string {
	var sb strings.Builder

	tally := make(map[string]int)
	for _, row := range rows {
		if status := row.Value(model.ColStatus).String(); status != "" {
			tally[status]++
		}
	}

	sb.WriteString("INSPECTION SUMMARY\n\n")
	sb.WriteString(fmt.Sprintf("Items: %d\n", len(rows)))
	for _, status := range []string{"Checked", "Not Checked", "Finding"} {
		if n := tally[status]; n > 0 {
			sb.WriteString(fmt.Sprintf("  • %s: %d\n", status, n))
		}
	}
	sb.WriteString("\n" + strings.Repeat("=", 60) + "\n\n")

	for i, row := range rows {
		title := row.Value(model.ColTitle).String()
		if title == "" {
			title = row.Value(model.ColDescription).String()
		}

		sb.WriteString(fmt.Sprintf("Item %s: %s\n", row.STT(), title))
		if status := row.Value(model.ColStatus).String(); status != "" {
			sb.WriteString(fmt.Sprintf("  Status: %s\n", status))
		}
		if note := row.Value(model.ColNote).String(); note != "" {
			sb.WriteString(fmt.Sprintf("  Note: %s\n", note))
		}
		if action := row.Value(model.ColCorrective).String(); action != "" {
			sb.WriteString(fmt.Sprintf("  Corrective action: %s\n", action))
		}
		if n := len(row.Attachments()); n > 0 {
			sb.WriteString(fmt.Sprintf("  Photos: %d attached (see Excel report)\n", n))
		}

		if i < len(rows)-1 {
			sb.WriteString("\n" + strings.Repeat("-", 60) + "\n\n")
		}
	}

	return sb.String()
}
