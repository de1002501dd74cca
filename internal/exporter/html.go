package exporter

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// HTMLExporter renders the report as a standalone HTML page: session header,
// status tally and the full item table with attachment thumbnails inlined as
// data URIs, so the file can be opened or mailed without any sidecar images.
type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// htmlItem is one rendered table line.
type htmlItem struct {
	STT        string
	Title      string
	Descr      string
	Status     string
	Note       string
	Corrective string
	Target     string
	Images     []htmlImage
}

type htmlImage struct {
	DataURI template.URL
	Name    string
}

type htmlReportData struct {
	ReportName string
	Date       string
	Inspector  string
	Station    string
	Items      []htmlItem
	Tally      []htmlTallyEntry
}

type htmlTallyEntry struct {
	Status string
	Count  int
}

func (e *HTMLExporter) Export(rows []model.Row, cols model.Columns, sel model.SessionSelection, cfg *config.Config) (string, error) {
	if err := checkPreconditions(rows, sel, cfg); err != nil {
		return "", err
	}

	data := htmlReportData{
		ReportName: cfg.Output.ReportName,
		Date:       sel.DisplayDate(),
		Inspector:  sel.Inspector,
		Station:    sel.Station,
	}

	tally := make(map[string]int)
	for _, row := range rows {
		item := htmlItem{
			STT:        row.STT(),
			Title:      row.Value(model.ColTitle).String(),
			Descr:      row.Value(model.ColDescription).String(),
			Status:     row.Value(model.ColStatus).String(),
			Note:       row.Value(model.ColNote).String(),
			Corrective: row.Value(model.ColCorrective).String(),
			Target:     row.Value(model.ColTarget).String(),
		}
		for _, att := range row.Attachments() {
			// The pipeline re-encodes everything as JPEG.
			item.Images = append(item.Images, htmlImage{
				DataURI: template.URL("data:image/jpeg;base64," + att.EncodedImage),
				Name:    att.OriginalName,
			})
		}
		if item.Status != "" {
			tally[item.Status]++
		}
		data.Items = append(data.Items, item)
	}

	for _, status := range cfg.Session.StatusOptions {
		if n := tally[status]; n > 0 {
			data.Tally = append(data.Tally, htmlTallyEntry{Status: status, Count: n})
		}
	}

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"statusClass": statusClass,
	}).Parse(reportPageTemplate)
	if err != nil {
		return "", &BuildError{Stage: "html template", Err: err}
	}

	target := filepath.Join(cfg.Output.Dir, buildFilename(sel, cfg, ".html"))
	f, err := os.Create(target)
	if err != nil {
		return "", &BuildError{Stage: "html save", Err: err}
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", &BuildError{Stage: "html render", Err: err}
	}

	return target, nil
}

// statusClass returns the CSS badge class for a status value.
func statusClass(status string) string {
	switch strings.ToLower(status) {
	case "checked":
		return "status-checked"
	case "not checked":
		return "status-pending"
	case "finding":
		return "status-finding"
	default:
		return "status-default"
	}
}
