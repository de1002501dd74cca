package template

import (
	"strconv"
	"strings"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// ProjectLines converts raw worksheet lines (arrays aligned to the original
// header positions) into canonical rows. Lines without a sequence number are
// dropped unless the lenient keep_missing_stt policy is configured.
func ProjectLines(cols model.Columns, rawHeader []string, lines [][]string, sel model.SessionSelection, cfg *config.Config) []model.Row {
	rows := make([]model.Row, 0, len(lines))
	for _, line := range lines {
		record := lineToRecord(rawHeader, line)
		if row, ok := projectRecord(cols, record, sel, cfg); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// ProjectRecords is the pre-keyed variant of ProjectLines.
func ProjectRecords(cols model.Columns, records []map[string]string, sel model.SessionSelection, cfg *config.Config) []model.Row {
	rows := make([]model.Row, 0, len(records))
	for _, record := range records {
		if row, ok := projectRecord(cols, record, sel, cfg); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// lineToRecord keys a positional line by the pre-normalization header.
// When the header carries duplicate names the later position wins.
func lineToRecord(rawHeader []string, line []string) map[string]string {
	record := make(map[string]string, len(rawHeader))
	for i, name := range rawHeader {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if i < len(line) {
			record[name] = line[i]
		} else {
			record[name] = ""
		}
	}
	return record
}

// projectRecord builds one canonical row. Synthetic columns are blanked or
// filled from the session selection regardless of spreadsheet content; all
// other columns take the source value coerced to text, defaulting to "".
func projectRecord(cols model.Columns, record map[string]string, sel model.SessionSelection, cfg *config.Config) (model.Row, bool) {
	sttRaw := strings.TrimSpace(record[model.ColSTT])
	if sttRaw == "" && !cfg.Template.KeepMissingSTT {
		return nil, false
	}

	row := make(model.Row, len(cols))
	for _, col := range cols {
		switch col {
		case model.ColSTT:
			row[col] = sttCell(sttRaw)
		case model.ColDate, model.ColDateUpper:
			row[col] = model.TextCell(sel.DisplayDate())
		case model.ColInspector, model.ColStation:
			row[col] = model.TextCell("")
		case model.ColAttachment:
			row[col] = model.AttachmentsCell(nil)
		default:
			row[col] = model.TextCell(record[col])
		}
	}
	return row, true
}

// sttCell parses the sequence number as numeric; a non-numeric value is kept
// as text rather than discarded, an empty one stays null (lenient mode only).
func sttCell(raw string) model.Cell {
	if raw == "" {
		return model.NullCell()
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return model.NumberCell(n)
	}
	return model.TextCell(raw)
}
