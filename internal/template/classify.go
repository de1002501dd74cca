package template

import "github.com/ThaiBaHoa/daily-nightshift-report/internal/model"

// FieldSpec is the per-column metadata exposed to the form surface.
type FieldSpec struct {
	IsEditable bool
}

// editableColumns is the fixed allow-list of template fields that accept
// user edits.
var editableColumns = []string{
	model.ColInspector,
	model.ColStation,
	model.ColDate,
	model.ColDateUpper,
	model.ColStatus,
	model.ColNote,
	model.ColCorrective,
	model.ColTarget,
	model.ColAttachment,
}

// readOnlyColumns are sourced from spreadsheet data and stay read-only even
// if they appear on the allow-list, so a user can never overwrite them.
var readOnlyColumns = []string{
	model.ColType,
	model.ColTitle,
	model.ColDescription,
}

// Classifier answers, per canonical column, whether edits persist into rows.
// Computed once at template load; immutable afterward.
type Classifier map[string]FieldSpec

// NewClassifier computes the field specs for the canonical column set.
func NewClassifier(cols model.Columns) Classifier {
	allowed := make(map[string]bool, len(editableColumns))
	for _, col := range editableColumns {
		allowed[col] = true
	}
	for _, col := range readOnlyColumns {
		allowed[col] = false
	}

	c := make(Classifier, len(cols))
	for _, col := range cols {
		c[col] = FieldSpec{IsEditable: allowed[col]}
	}
	return c
}

// IsEditable reports whether edits to col persist. Columns outside the
// canonical set are never editable.
func (c Classifier) IsEditable(col string) bool {
	return c[col].IsEditable
}
