package exporter

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Session: config.SessionConfig{
			Inspectors:        []string{"TBHOA", "DTPHU"},
			Stations:          []string{"SGN", "HAN", "DAD"},
			StatusOptions:     []string{"Checked", "Not Checked", "Finding"},
			EnableStation:     true,
			BroadcastIdentity: true,
		},
		Output: config.OutputConfig{
			Dir:        t.TempDir(),
			ReportName: "Daily Nightshift report",
		},
	}
}

func testSelection() model.SessionSelection {
	return model.SessionSelection{
		Inspector: "TBHOA",
		Station:   "SGN",
		Date:      time.Date(2024, 5, 28, 3, 0, 0, 0, time.UTC),
	}
}

func testColumns() model.Columns {
	return model.Columns{
		model.ColSTT, model.ColDate, model.ColStation, model.ColTitle,
		model.ColStatus, model.ColDateUpper, model.ColInspector,
		model.ColAttachment,
	}
}

func testRow(stt float64, title string) model.Row {
	return model.Row{
		model.ColSTT:        model.NumberCell(stt),
		model.ColDate:       model.NullCell(),
		model.ColStation:    model.NullCell(),
		model.ColTitle:      model.TextCell(title),
		model.ColStatus:     model.TextCell("Checked"),
		model.ColDateUpper:  model.NullCell(),
		model.ColInspector:  model.NullCell(),
		model.ColAttachment: model.AttachmentsCell(nil),
	}
}

// encodedPNG returns an attachment carrying a real base64 PNG so picture
// placement exercises the full decode path.
func encodedPNG(t *testing.T, name string) model.Attachment {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(20 * x), B: uint8(30 * y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return model.Attachment{
		EncodedImage: base64.StdEncoding.EncodeToString(buf.Bytes()),
		OriginalName: name,
	}
}

func TestExportRequiresInspector(t *testing.T) {
	sel := testSelection()
	sel.Inspector = ""

	_, err := NewExcelExporter().Export([]model.Row{testRow(1, "Generator")}, testColumns(), sel, testConfig(t))

	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("err = %v, want PreconditionError", err)
	}
}

func TestExportRequiresStationWhenEnabled(t *testing.T) {
	sel := testSelection()
	sel.Station = ""

	_, err := NewExcelExporter().Export([]model.Row{testRow(1, "Generator")}, testColumns(), sel, testConfig(t))

	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("err = %v, want PreconditionError", err)
	}

	cfg := testConfig(t)
	cfg.Session.EnableStation = false
	if _, err := NewExcelExporter().Export([]model.Row{testRow(1, "Generator")}, testColumns(), sel, cfg); err != nil {
		t.Fatalf("station disabled, export failed: %v", err)
	}
}

func TestExportRequiresContent(t *testing.T) {
	// Projector-filled columns alone don't count as content.
	row := model.Row{
		model.ColSTT:        model.NumberCell(1),
		model.ColDate:       model.TextCell("28/05/2024"),
		model.ColDateUpper:  model.TextCell("28/05/2024"),
		model.ColInspector:  model.TextCell("TBHOA"),
		model.ColStation:    model.TextCell("SGN"),
		model.ColAttachment: model.AttachmentsCell(nil),
	}

	_, err := NewExcelExporter().Export([]model.Row{row}, testColumns(), testSelection(), testConfig(t))

	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("err = %v, want PreconditionError", err)
	}
}

func TestExportFilename(t *testing.T) {
	path, err := NewExcelExporter().Export([]model.Row{testRow(1, "Generator")}, testColumns(), testSelection(), testConfig(t))
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := "Daily Nightshift report_28052024_TBHOA_SGN.xlsx"
	if got := filepath.Base(path); got != want {
		t.Errorf("filename = %q, want %q", got, want)
	}
}

func TestExportHeaderAndSessionOverrides(t *testing.T) {
	row := testRow(1, "Generator")
	row.Set(model.ColDate, model.TextCell("01/01/2020")) // stale draft value

	path, err := NewExcelExporter().Export([]model.Row{row}, testColumns(), testSelection(), testConfig(t))
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	lines, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) < 2 {
		t.Fatalf("workbook has %d lines, want 2", len(lines))
	}

	header := lines[0]
	for _, col := range header {
		if col == model.ColDateUpper {
			t.Errorf("header still contains %s", model.ColDateUpper)
		}
	}

	// Header order follows the input columns minus the dropped duplicate.
	wantHeader := []string{
		model.ColSTT, model.ColDate, model.ColStation, model.ColTitle,
		model.ColStatus, model.ColInspector, model.ColAttachment,
	}
	for i, want := range wantHeader {
		if i >= len(header) || header[i] != want {
			t.Fatalf("header = %v, want %v", header, wantHeader)
		}
	}

	// Session values overwrite whatever the draft held.
	if lines[1][1] != "28/05/2024" {
		t.Errorf("Date = %q, want 28/05/2024", lines[1][1])
	}
	if lines[1][2] != "SGN" {
		t.Errorf("STATION = %q, want SGN", lines[1][2])
	}
	if lines[1][5] != "TBHOA" {
		t.Errorf("INSPECTOR = %q, want TBHOA", lines[1][5])
	}
}

func TestExportImageGridCap(t *testing.T) {
	row := testRow(3, "Fire extinguisher")
	atts := make([]model.Attachment, 6)
	for i := range atts {
		atts[i] = encodedPNG(t, "photo.png")
	}
	row.Set(model.ColAttachment, model.AttachmentsCell(atts))

	path, err := NewExcelExporter().Export([]model.Row{row}, testColumns(), testSelection(), testConfig(t))
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// attachment is the last output column (G) on the first data line.
	pics, err := f.GetPictures(sheetName, "G2")
	if err != nil {
		t.Fatal(err)
	}
	if len(pics) != maxImages {
		t.Errorf("placed %d pictures, want %d", len(pics), maxImages)
	}

	text, err := f.GetCellValue(sheetName, "G2")
	if err != nil {
		t.Fatal(err)
	}
	if text != "+2 more images" {
		t.Errorf("attachment cell = %q, want +2 more images", text)
	}
}

func TestRowHeightReservesAnnotationStrip(t *testing.T) {
	row := testRow(1, "Generator")

	capped := make([]model.Attachment, maxImages)
	overflow := make([]model.Attachment, maxImages+2)

	base := rowHeight(row, capped)
	annotated := rowHeight(row, overflow)

	// The overflow annotation gets its own strip below the picture grid.
	want := base + float64(annotationStrip)*72/96
	if annotated != want {
		t.Errorf("annotated height = %v, want %v (grid %v + strip)", annotated, want, base)
	}
}

func TestRowHeightCountsRunesNotBytes(t *testing.T) {
	ascii := model.Row{model.ColNote: model.TextCell(strings.Repeat("a", 90))}
	viet := model.Row{model.ColNote: model.TextCell(strings.Repeat("ế", 90))}

	ha := rowHeight(ascii, nil)
	hv := rowHeight(viet, nil)
	if ha != hv {
		t.Errorf("same rune count must estimate the same height: ascii %v, multi-byte %v", ha, hv)
	}
}

func TestExportFewImagesNoAnnotation(t *testing.T) {
	row := testRow(3, "Fire extinguisher")
	row.Set(model.ColAttachment, model.AttachmentsCell([]model.Attachment{
		encodedPNG(t, "a.png"),
		encodedPNG(t, "b.png"),
	}))

	path, err := NewExcelExporter().Export([]model.Row{row}, testColumns(), testSelection(), testConfig(t))
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	pics, err := f.GetPictures(sheetName, "G2")
	if err != nil {
		t.Fatal(err)
	}
	if len(pics) != 2 {
		t.Errorf("placed %d pictures, want 2", len(pics))
	}
	if text, _ := f.GetCellValue(sheetName, "G2"); text != "" {
		t.Errorf("attachment cell = %q, want empty", text)
	}
}
