package attach

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// pngImage renders a small gradient so JPEG re-encoding has real content.
func pngImage(t *testing.T, w, h int) *bytes.Reader {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func decodeDims(t *testing.T, att model.Attachment) (int, int) {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(att.EncodedImage)
	if err != nil {
		t.Fatalf("attachment is not valid base64: %v", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("attachment does not decode: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("re-encoded format = %q, want jpeg", format)
	}
	return cfg.Width, cfg.Height
}

func TestProcessScalesDown(t *testing.T) {
	att, err := Process("big.png", pngImage(t, 1600, 1200))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	w, h := decodeDims(t, att)
	if w > MaxWidth || h > MaxHeight {
		t.Errorf("dimensions %dx%d exceed bound %dx%d", w, h, MaxWidth, MaxHeight)
	}
	// 4:3 input scales to exactly the bound
	if w != 800 || h != 600 {
		t.Errorf("dimensions = %dx%d, want 800x600", w, h)
	}
	if att.OriginalName != "big.png" {
		t.Errorf("original name = %q", att.OriginalName)
	}
}

func TestProcessKeepsAspectRatio(t *testing.T) {
	// Tall input: height is the binding constraint
	att, err := Process("tall.png", pngImage(t, 900, 1800))
	if err != nil {
		t.Fatal(err)
	}
	w, h := decodeDims(t, att)
	if h != 600 {
		t.Errorf("height = %d, want 600", h)
	}
	if w < 299 || w > 301 {
		t.Errorf("width = %d, want ~300 (aspect preserved)", w)
	}
}

func TestProcessNeverUpscales(t *testing.T) {
	att, err := Process("small.png", pngImage(t, 120, 80))
	if err != nil {
		t.Fatal(err)
	}
	w, h := decodeDims(t, att)
	if w != 120 || h != 80 {
		t.Errorf("small image resized to %dx%d, want untouched 120x80", w, h)
	}
}

func TestAddImagesBatchContinuesPastFailure(t *testing.T) {
	row := model.Row{model.ColAttachment: model.AttachmentsCell(nil)}

	uploads := []Upload{
		{Name: "ok1.png", Reader: pngImage(t, 100, 100)},
		{Name: "broken.png", Reader: strings.NewReader("not an image")},
		{Name: "ok2.png", Reader: pngImage(t, 100, 100)},
	}

	failures := AddImages(row, uploads)
	if len(failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(failures))
	}
	if _, ok := failures[0].(*ProcessError); !ok {
		t.Errorf("failure %T is not a ProcessError", failures[0])
	}

	atts := row.Attachments()
	if len(atts) != 2 {
		t.Fatalf("attachments = %d, want 2", len(atts))
	}
	// Upload order preserved
	if atts[0].OriginalName != "ok1.png" || atts[1].OriginalName != "ok2.png" {
		t.Errorf("order = %q, %q", atts[0].OriginalName, atts[1].OriginalName)
	}
}

func TestRemoveImage(t *testing.T) {
	row := model.Row{model.ColAttachment: model.AttachmentsCell([]model.Attachment{
		{OriginalName: "a.jpg"},
		{OriginalName: "b.jpg"},
		{OriginalName: "c.jpg"},
	})}

	RemoveImage(row, 1)
	atts := row.Attachments()
	if len(atts) != 2 || atts[0].OriginalName != "a.jpg" || atts[1].OriginalName != "c.jpg" {
		t.Errorf("after remove: %v", atts)
	}

	// Out of range is a no-op
	RemoveImage(row, 5)
	RemoveImage(row, -1)
	if len(row.Attachments()) != 2 {
		t.Errorf("out-of-range remove mutated the list: %v", row.Attachments())
	}
}
