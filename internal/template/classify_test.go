package template

import (
	"testing"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

func TestClassifierAllowList(t *testing.T) {
	cols := model.Columns{
		"STT", "Date", "STATION", "Type", "TITLE", "Description",
		"Status", "Note", "Corrective action", "Target", "DATE",
		"INSPECTOR", "attachment",
	}
	c := NewClassifier(cols)

	editable := []string{
		"INSPECTOR", "STATION", "Date", "DATE", "Status", "Note",
		"Corrective action", "Target", "attachment",
	}
	for _, col := range editable {
		if !c.IsEditable(col) {
			t.Errorf("%s should be editable", col)
		}
	}

	// Spreadsheet-sourced columns stay read-only
	readonly := []string{"STT", "Type", "TITLE", "Description"}
	for _, col := range readonly {
		if c.IsEditable(col) {
			t.Errorf("%s must not be editable", col)
		}
	}
}

func TestClassifierUnknownColumn(t *testing.T) {
	c := NewClassifier(model.Columns{"STT", "Status"})

	if c.IsEditable("Note") {
		t.Error("columns outside the canonical set must not be editable")
	}
	if c.IsEditable("") {
		t.Error("empty column name must not be editable")
	}
}
