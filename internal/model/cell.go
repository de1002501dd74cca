package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CellKind discriminates the closed set of value shapes a cell can hold.
type CellKind int

const (
	CellNull CellKind = iota
	CellText
	CellNumber
	CellAttachments
)

// Cell is a single row value: text, number, null, or an attachment list.
// The zero value is the null cell.
type Cell struct {
	kind        CellKind
	text        string
	number      float64
	attachments []Attachment
}

// NullCell returns the explicit null cell.
func NullCell() Cell {
	return Cell{kind: CellNull}
}

// TextCell wraps a string value.
func TextCell(s string) Cell {
	return Cell{kind: CellText, text: s}
}

// NumberCell wraps a numeric value.
func NumberCell(n float64) Cell {
	return Cell{kind: CellNumber, number: n}
}

// AttachmentsCell wraps an attachment list. A nil list is normalized to an
// empty one so the draft wire shape stays `[]`, never `null`.
func AttachmentsCell(list []Attachment) Cell {
	if list == nil {
		list = []Attachment{}
	}
	return Cell{kind: CellAttachments, attachments: list}
}

func (c Cell) Kind() CellKind { return c.kind }

func (c Cell) Text() string { return c.text }

func (c Cell) Number() float64 { return c.number }

// Attachments returns the attachment list. Callers must treat the slice as
// owned by the cell; replace it via AttachmentsCell rather than appending.
func (c Cell) Attachments() []Attachment { return c.attachments }

// String renders the cell the way it appears in a worksheet cell: numbers
// without a trailing ".0", null and attachments as empty text.
func (c Cell) String() string {
	switch c.kind {
	case CellText:
		return c.text
	case CellNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	default:
		return ""
	}
}

// IsEmpty reports whether the cell carries no user-visible content.
func (c Cell) IsEmpty() bool {
	switch c.kind {
	case CellNull:
		return true
	case CellText:
		return c.text == ""
	case CellNumber:
		return false
	case CellAttachments:
		return len(c.attachments) == 0
	}
	return true
}

// MarshalJSON emits the draft wire shape: string, number, null, or an array
// of attachment objects.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case CellText:
		return json.Marshal(c.text)
	case CellNumber:
		return json.Marshal(c.number)
	case CellAttachments:
		return json.Marshal(c.attachments)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts the same four shapes and rejects anything else
// (objects, booleans, nested arrays of non-attachments).
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*c = NullCell()
		return nil
	case string:
		*c = TextCell(v)
		return nil
	case float64:
		*c = NumberCell(v)
		return nil
	case []any:
		var list []Attachment
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("cell: attachment list: %w", err)
		}
		*c = AttachmentsCell(list)
		return nil
	default:
		return fmt.Errorf("cell: unsupported value shape %T", raw)
	}
}
