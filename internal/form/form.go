// Package form holds the in-memory working set between template load and
// export: the canonical rows, the form-wide session selection, and the edit
// surface the UI collaborator drives. Every mutation passes the editable
// field classifier; edits to non-editable columns are silent no-ops.
package form

import (
	"fmt"
	"time"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/attach"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/guidance"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/template"
)

// Form is the single-writer working set. All operations run on the caller's
// goroutine; there is no concurrent writer and no locking.
type Form struct {
	cfg        *config.Config
	cols       model.Columns
	rows       []model.Row
	classifier template.Classifier
	sel        model.SessionSelection
}

// New builds a form over a freshly loaded template. The session date
// defaults to the current date.
func New(tpl *template.Template, cfg *config.Config) *Form {
	return &Form{
		cfg:        cfg,
		cols:       tpl.Columns,
		rows:       tpl.Rows,
		classifier: tpl.Classifier,
		sel:        model.NewSessionSelection(),
	}
}

func (f *Form) Columns() model.Columns { return f.cols }

func (f *Form) Rows() []model.Row { return f.rows }

func (f *Form) Selection() model.SessionSelection { return f.sel }

// RowBySTT finds a row by its sequence number.
func (f *Form) RowBySTT(stt string) (model.Row, bool) {
	for _, row := range f.rows {
		if row.STT() == stt {
			return row, true
		}
	}
	return nil, false
}

// CurrentRow returns the row matching the session's current selection.
func (f *Form) CurrentRow() (model.Row, bool) {
	if f.sel.CurrentSTT == "" {
		return nil, false
	}
	return f.RowBySTT(f.sel.CurrentSTT)
}

// SelectRow moves the session's row selection. Unknown sequence numbers
// leave the selection unchanged.
func (f *Form) SelectRow(stt string) bool {
	if _, ok := f.RowBySTT(stt); !ok {
		return false
	}
	f.sel.CurrentSTT = stt
	return true
}

// SetField writes value into one column of the row identified by stt.
// Returns false without mutating anything when the row is unknown or the
// column does not accept edits. The attachment column is editable only
// through AddImages/RemoveImage; a text write would replace the list cell
// and drop every attached image.
func (f *Form) SetField(stt, col, value string) bool {
	if col == model.ColAttachment {
		return false
	}
	if !f.classifier.IsEditable(col) {
		return false
	}
	row, ok := f.RowBySTT(stt)
	if !ok {
		return false
	}
	row.Set(col, model.TextCell(value))
	return true
}

// SetDate moves the session date and broadcasts the formatted value into the
// Date/DATE columns of every row, not just the selected one.
func (f *Form) SetDate(t time.Time) {
	f.sel.Date = t
	formatted := f.sel.DisplayDate()
	for _, row := range f.rows {
		for _, col := range []string{model.ColDate, model.ColDateUpper} {
			if f.cols.Contains(col) {
				row.Set(col, model.TextCell(formatted))
			}
		}
	}
}

// SetInspector records the inspector selection. Depending on configuration
// the value fans out to every row or lands on the current row only.
func (f *Form) SetInspector(name string) {
	f.sel.Inspector = name
	f.applyIdentity(model.ColInspector, name)
}

// SetStation records the station selection with the same fan-out rule.
func (f *Form) SetStation(code string) {
	f.sel.Station = code
	f.applyIdentity(model.ColStation, code)
}

func (f *Form) applyIdentity(col, value string) {
	if !f.cols.Contains(col) {
		return
	}
	if f.cfg.Session.BroadcastIdentity {
		for _, row := range f.rows {
			row.Set(col, model.TextCell(value))
		}
		return
	}
	if row, ok := f.CurrentRow(); ok {
		row.Set(col, model.TextCell(value))
	}
}

// AddImages attaches an upload batch to the row identified by stt. Per-file
// failures are returned; the batch continues past them.
func (f *Form) AddImages(stt string, uploads []attach.Upload) ([]error, bool) {
	row, ok := f.RowBySTT(stt)
	if !ok {
		return nil, false
	}
	return attach.AddImages(row, uploads), true
}

// RemoveImage drops one attachment from the row identified by stt.
func (f *Form) RemoveImage(stt string, index int) bool {
	row, ok := f.RowBySTT(stt)
	if !ok {
		return false
	}
	attach.RemoveImage(row, index)
	return true
}

// Guidance returns the inspection instructions for the selected row.
func (f *Form) Guidance() string {
	return guidance.Lookup(f.sel.CurrentSTT)
}

// Submit stamps the session identity and date onto the current row and
// returns the next higher sequence number so the caller can advance the
// selection ("" when the current row is the last one).
func (f *Form) Submit() (string, error) {
	if f.sel.CurrentSTT == "" {
		return "", fmt.Errorf("no row selected")
	}
	if f.sel.Inspector == "" {
		return "", fmt.Errorf("inspector name is not set")
	}

	row, ok := f.CurrentRow()
	if !ok {
		return "", fmt.Errorf("no row with STT %q", f.sel.CurrentSTT)
	}

	formatted := f.sel.DisplayDate()
	for _, col := range []string{model.ColDate, model.ColDateUpper} {
		if f.cols.Contains(col) {
			row.Set(col, model.TextCell(formatted))
		}
	}
	row.Set(model.ColInspector, model.TextCell(f.sel.Inspector))
	if f.cfg.Session.EnableStation && f.cols.Contains(model.ColStation) {
		row.Set(model.ColStation, model.TextCell(f.sel.Station))
	}

	return f.nextSTT(row.STT()), nil
}

// nextSTT returns the first row whose numeric sequence number exceeds the
// given one, in row order.
func (f *Form) nextSTT(current string) string {
	cur, ok := numeric(current)
	if !ok {
		return ""
	}
	for _, row := range f.rows {
		if n, ok := numeric(row.STT()); ok && n > cur {
			return row.STT()
		}
	}
	return ""
}

func numeric(s string) (float64, bool) {
	var n float64
	_, err := fmt.Sscanf(s, "%g", &n)
	return n, err == nil
}

// RestoreDraft swaps a persisted snapshot in: rows are replaced wholesale
// and the session identity fields are taken from the draft. The current row
// selection is reset.
func (f *Form) RestoreDraft(d *model.Draft) {
	f.rows = d.Rows
	f.sel.Inspector = d.Inspector
	f.sel.Station = d.Station
	if !d.Date.IsZero() {
		f.sel.Date = d.Date
	}
	f.sel.CurrentSTT = ""
}
