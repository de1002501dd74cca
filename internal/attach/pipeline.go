// Package attach implements the image attachment pipeline: uploaded images
// are downsampled to a bounded resolution, re-encoded as lossy JPEG and kept
// inline on their row as base64 text until export places them into the
// output workbook.
package attach

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/logger"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
)

// Resolution bound for stored attachments. Images are scaled down to fit,
// never up; aspect ratio is preserved.
const (
	MaxWidth  = 800
	MaxHeight = 600
)

const jpegQuality = 80

// ProcessError signals a single-file decode or resize failure. The rest of
// the upload batch is unaffected.
type ProcessError struct {
	Name string
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("image %q could not be processed: %v", e.Name, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Upload is one file in an upload batch.
type Upload struct {
	Name   string
	Reader io.Reader
}

// Process decodes one image, scales it into the resolution bound and returns
// the inline-encoded attachment.
func Process(name string, r io.Reader) (model.Attachment, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return model.Attachment{}, &ProcessError{Name: name, Err: err}
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxWidth || bounds.Dy() > MaxHeight {
		img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return model.Attachment{}, &ProcessError{Name: name, Err: err}
	}

	return model.Attachment{
		EncodedImage: base64.StdEncoding.EncodeToString(buf.Bytes()),
		OriginalName: name,
	}, nil
}

// AddImages processes an upload batch sequentially in array order and
// appends the successes to the row's attachment list, preserving upload
// order. A corrupt file is reported and skipped; it never aborts its
// siblings. Returns one error per failed file.
func AddImages(row model.Row, uploads []Upload) []error {
	var failures []error
	list := row.Attachments()

	for _, up := range uploads {
		att, err := Process(up.Name, up.Reader)
		if err != nil {
			logger.Warn("%v", err)
			failures = append(failures, err)
			continue
		}
		list = append(list, att)
	}

	row.Set(model.ColAttachment, model.AttachmentsCell(list))
	return failures
}

// RemoveImage removes the attachment at index; out-of-range indexes are a
// no-op.
func RemoveImage(row model.Row, index int) {
	list := row.Attachments()
	if index < 0 || index >= len(list) {
		return
	}
	list = append(list[:index], list[index+1:]...)
	row.Set(model.ColAttachment, model.AttachmentsCell(list))
}

// Bytes decodes an attachment back to raw image bytes for embedding.
func Bytes(att model.Attachment) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(att.EncodedImage)
	if err != nil {
		return nil, &ProcessError{Name: att.OriginalName, Err: err}
	}
	return data, nil
}
