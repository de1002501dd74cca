package exporter

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/attach"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

const sheetName = "Sheet1"

// Attachment grid geometry (pixels). Up to maxImages pictures per row are
// placed in a gridCols-wide grid anchored at the attachment cell; anything
// beyond that is summarized as a textual count instead of placed.
const (
	maxImages  = 4
	gridCols   = 2
	slotWidth  = 90
	slotHeight = 60
	gridGap    = 6
	gridMargin = 4

	// Text strip reserved under the grid for the overflow annotation. The
	// annotation cell is bottom-aligned, so the text renders below the
	// floating pictures instead of underneath them.
	annotationStrip = 18
)

// Columns rendered with top-aligned wrapping and widened.
var wrapColumns = map[string]bool{
	model.ColTitle:       true,
	model.ColDescription: true,
	model.ColNote:        true,
	model.ColCorrective:  true,
	model.ColTarget:      true,
}

// ExcelExporter reconciles canonical rows, session overrides and image
// attachments into the report workbook.
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export builds the workbook and saves it under the configured output
// directory. The workbook is assembled fully in memory; any construction
// failure aborts before a file is written.
func (e *ExcelExporter) Export(rows []model.Row, cols model.Columns, sel model.SessionSelection, cfg *config.Config) (string, error) {
	if err := checkPreconditions(rows, sel, cfg); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return "", &BuildError{Stage: "styles", Err: err}
	}

	out := exportColumns(cols)

	if err := e.writeHeader(f, styler, out); err != nil {
		return "", &BuildError{Stage: "header", Err: err}
	}

	for i, row := range rows {
		if err := e.writeRow(f, styler, out, row, sel, cfg, i+2); err != nil {
			return "", err
		}
	}

	e.applyColumnWidths(f, out)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	target := filepath.Join(cfg.Output.Dir, buildFilename(sel, cfg, ".xlsx"))
	if err := f.SaveAs(target); err != nil {
		return "", &BuildError{Stage: "save", Err: err}
	}

	return target, nil
}

// checkPreconditions refuses the export before any construction starts.
func checkPreconditions(rows []model.Row, sel model.SessionSelection, cfg *config.Config) error {
	if sel.Inspector == "" {
		return &PreconditionError{Reason: "inspector name is not set"}
	}
	if cfg.Session.EnableStation && sel.Station == "" {
		return &PreconditionError{Reason: "station is not set"}
	}

	// Columns the projector fills on its own don't count as content.
	ignore := []string{
		model.ColSTT,
		model.ColDate,
		model.ColDateUpper,
		model.ColInspector,
		model.ColStation,
	}
	for _, row := range rows {
		if row.HasContent(ignore...) {
			return nil
		}
	}
	return &PreconditionError{Reason: "no data to export"}
}

// exportColumns drops DATE, the duplicate of Date, from the output set.
func exportColumns(cols model.Columns) model.Columns {
	out := make(model.Columns, 0, len(cols))
	for _, col := range cols {
		if col == model.ColDateUpper {
			continue
		}
		out = append(out, col)
	}
	return out
}

func (e *ExcelExporter) writeHeader(f *excelize.File, s *Styler, cols model.Columns) error {
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, s.HeaderStyle); err != nil {
			return err
		}
	}
	return nil
}

// writeRow emits one output line. Date, INSPECTOR and STATION are
// overwritten with the current session values; the attachment column gets
// floating images rather than cell text.
func (e *ExcelExporter) writeRow(f *excelize.File, s *Styler, cols model.Columns, row model.Row, sel model.SessionSelection, cfg *config.Config, line int) error {
	attachments := row.Attachments()

	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, line)
		if err != nil {
			return &BuildError{Stage: "layout", Err: err}
		}

		style := s.DefaultStyle
		var value any

		switch col {
		case model.ColDate:
			value = sel.DisplayDate()
		case model.ColInspector:
			value = sel.Inspector
		case model.ColStation:
			value = sel.Station
		case model.ColAttachment:
			if len(attachments) > maxImages {
				value = fmt.Sprintf("+%d more images", len(attachments)-maxImages)
				style = s.AnnotationStyle
			} else {
				value = ""
			}
		default:
			stored := row.Value(col)
			if stored.Kind() == model.CellNumber {
				value = stored.Number()
			} else {
				value = stored.String()
			}
			if wrapColumns[col] {
				style = s.WrapStyle
			}
		}

		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return &BuildError{Stage: "cells", Err: err}
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return &BuildError{Stage: "cells", Err: err}
		}
	}

	if err := e.placeImages(f, cols, attachments, line); err != nil {
		return err
	}

	if h := rowHeight(row, attachments); h > 0 {
		if err := f.SetRowHeight(sheetName, line, h); err != nil {
			return &BuildError{Stage: "layout", Err: err}
		}
	}

	return nil
}

// placeImages anchors up to maxImages pictures at the attachment cell in a
// 2-wide grid with fixed spacing offsets so neighbours never overlap.
func (e *ExcelExporter) placeImages(f *excelize.File, cols model.Columns, attachments []model.Attachment, line int) error {
	if len(attachments) == 0 {
		return nil
	}

	colIdx := cols.Index(model.ColAttachment)
	if colIdx < 0 {
		return nil
	}
	anchor, err := excelize.CoordinatesToCellName(colIdx+1, line)
	if err != nil {
		return &BuildError{Stage: "images", Err: err}
	}

	for i, att := range attachments {
		if i >= maxImages {
			break
		}

		data, err := attach.Bytes(att)
		if err != nil {
			return &BuildError{Stage: "images", Err: err}
		}

		ext, scaleX, scaleY, err := pictureGeometry(data)
		if err != nil {
			return &BuildError{Stage: "images", Err: fmt.Errorf("%s: %w", att.OriginalName, err)}
		}

		pic := &excelize.Picture{
			Extension: ext,
			File:      data,
			Format: &excelize.GraphicOptions{
				OffsetX: gridMargin + (i%gridCols)*(slotWidth+gridGap),
				OffsetY: gridMargin + (i/gridCols)*(slotHeight+gridGap),
				ScaleX:  scaleX,
				ScaleY:  scaleY,
			},
		}
		if err := f.AddPictureFromBytes(sheetName, anchor, pic); err != nil {
			return &BuildError{Stage: "images", Err: err}
		}
	}

	return nil
}

// pictureGeometry decodes the image header and returns the extension plus
// the uniform scale that fits the picture into one grid slot.
func pictureGeometry(data []byte) (string, float64, float64, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, err
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return "", 0, 0, fmt.Errorf("image has zero dimensions")
	}

	scale := float64(slotWidth) / float64(cfg.Width)
	if s := float64(slotHeight) / float64(cfg.Height); s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}

	return "." + format, scale, scale, nil
}

// rowHeight grows rows to fit the attachment grid and long wrapped text.
// Returns 0 when the default height is enough.
func rowHeight(row model.Row, attachments []model.Attachment) float64 {
	var height float64

	if len(attachments) > 0 {
		gridRows := (min(len(attachments), maxImages) + gridCols - 1) / gridCols
		// Pixel grid extent converted to points (96 px/inch vs 72 pt/inch).
		px := 2*gridMargin + gridRows*slotHeight + (gridRows-1)*gridGap
		if len(attachments) > maxImages {
			px += annotationStrip
		}
		height = float64(px) * 72 / 96
	}

	for col := range wrapColumns {
		// Rune count, not byte length: Vietnamese free text is multi-byte
		// and would otherwise double the line estimate.
		runes := utf8.RuneCountInString(row.Value(col).String())
		if runes == 0 {
			continue
		}
		lines := (runes + 44) / 45
		if h := float64(lines) * 15; h > height {
			height = h
		}
	}

	if height <= 20 {
		return 0
	}
	return height
}

func (e *ExcelExporter) applyColumnWidths(f *excelize.File, cols model.Columns) {
	for i, col := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}

		width := 14.0
		switch {
		case col == model.ColSTT:
			width = 6
		case col == model.ColAttachment:
			width = 28
		case wrapColumns[col]:
			width = 40
		case col == model.ColDate || col == model.ColStation:
			width = 12
		}
		f.SetColWidth(sheetName, name, name, width)
	}
}
