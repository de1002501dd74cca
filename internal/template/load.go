package template

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// Template is the fully projected working set produced by a template load.
// It is built into a fresh value and only handed to the caller on full
// success, so a failed load never disturbs existing rows.
type Template struct {
	Columns    model.Columns
	RawHeader  []string
	Rows       []model.Row
	Classifier Classifier
}

// Load reads the template workbook at path, normalizes its header, projects
// its data lines and computes the field classifier. First sheet only; the
// first line is the header.
func Load(path string, sel model.SessionSelection, cfg *config.Config) (*Template, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return fromWorkbook(f, path, sel, cfg)
}

// LoadReader is the stream variant of Load, used when the workbook bytes
// arrive from somewhere other than the local filesystem.
func LoadReader(r io.Reader, sel model.SessionSelection, cfg *config.Config) (*Template, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	defer f.Close()

	return fromWorkbook(f, "", sel, cfg)
}

func fromWorkbook(f *excelize.File, path string, sel model.SessionSelection, cfg *config.Config) (*Template, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	lines, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(lines) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("sheet %q is empty", sheets[0])}
	}

	rawHeader := lines[0]
	cols, err := NormalizeHeader(rawHeader, cfg)
	if err != nil {
		return nil, err
	}

	rows := ProjectLines(cols, rawHeader, lines[1:], sel, cfg)

	return &Template{
		Columns:    cols,
		RawHeader:  rawHeader,
		Rows:       rows,
		Classifier: NewClassifier(cols),
	}, nil
}
