package model

// Canonical column names recognized by exact, case-sensitive match.
const (
	ColSTT         = "STT"
	ColDate        = "Date"
	ColDateUpper   = "DATE"
	ColInspector   = "INSPECTOR"
	ColStation     = "STATION"
	ColAttachment  = "attachment"
	ColType        = "Type"
	ColTitle       = "TITLE"
	ColDescription = "Description"
	ColStatus      = "Status"
	ColNote        = "Note"
	ColCorrective  = "Corrective action"
	ColTarget      = "Target"
)

// Date layouts used across the system. The draft serializes dates as
// ISO-8601 via time.Time's default JSON encoding.
const (
	DisplayDateLayout  = "02/01/2006"
	FilenameDateLayout = "02012006"
)

// Columns is the canonical ordered column set derived once per template load.
type Columns []string

// Contains reports whether name is part of the canonical set.
func (c Columns) Contains(name string) bool {
	return c.Index(name) >= 0
}

// Index returns the position of name, or -1.
func (c Columns) Index(name string) int {
	for i, col := range c {
		if col == name {
			return i
		}
	}
	return -1
}

// Attachment is an inline-encoded image owned by exactly one row.
type Attachment struct {
	EncodedImage string `json:"image"`
	OriginalName string `json:"name"`
}

// Row maps canonical column names to cell values. Rows are identified at the
// domain level by their STT value, not by slice position.
type Row map[string]Cell

// Value returns the cell for col; absent columns read as null.
func (r Row) Value(col string) Cell {
	return r[col]
}

// Set stores a cell under col. Column validity is enforced at the projection
// boundary, not here.
func (r Row) Set(col string, c Cell) {
	r[col] = c
}

// STT renders the row's sequence number as text ("" when unset).
func (r Row) STT() string {
	return r[ColSTT].String()
}

// Attachments returns the row's attachment list (nil when none).
func (r Row) Attachments() []Attachment {
	return r[ColAttachment].Attachments()
}

// HasContent reports whether any column outside the ignored set holds a
// non-empty value. Used by the export precondition check, which discounts
// columns the projector fills on its own.
func (r Row) HasContent(ignore ...string) bool {
	skip := make(map[string]bool, len(ignore))
	for _, col := range ignore {
		skip[col] = true
	}
	for col, cell := range r {
		if skip[col] {
			continue
		}
		if !cell.IsEmpty() {
			return true
		}
	}
	return false
}

// Clone returns a deep-enough copy: cells are value types, attachment slices
// are re-sliced so the copy cannot alias the original's list.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for col, cell := range r {
		if cell.Kind() == CellAttachments {
			list := make([]Attachment, len(cell.Attachments()))
			copy(list, cell.Attachments())
			cell = AttachmentsCell(list)
		}
		out[col] = cell
	}
	return out
}
