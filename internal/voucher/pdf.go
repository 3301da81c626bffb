package voucher

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
)

var ErrEmptyImage = errors.New("voucher image is empty")

// A4 page size in millimetres.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// Filename is the download name for a voucher PDF.
func Filename(reference string) string {
	return "Voucher-" + reference + ".pdf"
}

// WritePDF places a rendered voucher PNG onto a single A4 page, centered
// and aspect-fit, and returns the finished document. Any failure aborts
// with no partial output.
func WritePDF(reference string, pngData []byte) ([]byte, error) {
	if len(pngData) == 0 {
		return nil, ErrEmptyImage
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Filename(reference), true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	info := pdf.RegisterImageOptionsReader("voucher", opts, bytes.NewReader(pngData))
	if pdf.Err() {
		return nil, fmt.Errorf("failed to register voucher image: %w", pdf.Error())
	}

	imgW, imgH := info.Extent()
	if imgW <= 0 || imgH <= 0 {
		return nil, ErrEmptyImage
	}

	scale := pageWidthMM / imgW
	if s := pageHeightMM / imgH; s < scale {
		scale = s
	}
	drawW := imgW * scale
	drawH := imgH * scale
	x := (pageWidthMM - drawW) / 2
	y := (pageHeightMM - drawH) / 2

	pdf.ImageOptions("voucher", x, y, drawW, drawH, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write voucher pdf: %w", err)
	}
	return buf.Bytes(), nil
}
