//go:build unit

package voucher_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"hotel-booking-api/internal/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assembledDoc(t *testing.T) *voucher.Document {
	t.Helper()
	doc, err := voucher.Assemble(baseSource())
	require.NoError(t, err)
	return doc
}

func TestRasterRenderer(t *testing.T) {
	t.Run("renders a decodable png at canvas size", func(t *testing.T) {
		r, err := voucher.NewRasterRenderer(1)
		require.NoError(t, err)
		assert.Equal(t, "image/png", r.ContentType())

		data, err := r.Render(assembledDoc(t))
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		bounds := img.Bounds()
		assert.Equal(t, voucher.PageWidthPx, bounds.Dx())
		assert.Equal(t, voucher.PageHeightPx, bounds.Dy())
	})

	t.Run("supersampling scales the canvas", func(t *testing.T) {
		r, err := voucher.NewRasterRenderer(2)
		require.NoError(t, err)

		data, err := r.Render(assembledDoc(t))
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, voucher.PageWidthPx*2, img.Bounds().Dx())
		assert.Equal(t, voucher.PageHeightPx*2, img.Bounds().Dy())
	})

	t.Run("renders arabic guest and hotel names", func(t *testing.T) {
		src := baseSource()
		src.GuestName = "محمد عبدالله"
		src.HotelName = "فندق الصحراء"
		src.HotelCity = "الرياض"
		doc, err := voucher.Assemble(src)
		require.NoError(t, err)

		r, err := voucher.NewRasterRenderer(1)
		require.NoError(t, err)
		data, err := r.Render(doc)
		require.NoError(t, err)

		_, err = png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
	})

	t.Run("rejects a nil document", func(t *testing.T) {
		r, err := voucher.NewRasterRenderer(1)
		require.NoError(t, err)

		_, err = r.Render(nil)
		assert.Error(t, err)
	})
}

func TestSVGRenderer(t *testing.T) {
	r := voucher.NewSVGRenderer()
	assert.Equal(t, "image/svg+xml", r.ContentType())

	data, err := r.Render(assembledDoc(t))
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.Contains(out, "<svg"))
	assert.True(t, strings.Contains(out, "HB-20260201-A1B2C-0F3D"))
	assert.True(t, strings.Contains(out, "CONFIRMED"))
}

func TestWritePDF(t *testing.T) {
	t.Run("wraps the rendered image in a single page", func(t *testing.T) {
		r, err := voucher.NewRasterRenderer(1)
		require.NoError(t, err)
		pngData, err := r.Render(assembledDoc(t))
		require.NoError(t, err)

		pdfData, err := voucher.WritePDF("HB-20260201-A1B2C-0F3D", pngData)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdfData, []byte("%PDF")))
	})

	t.Run("rejects empty image data", func(t *testing.T) {
		_, err := voucher.WritePDF("HB-20260201-A1B2C-0F3D", nil)
		assert.ErrorIs(t, err, voucher.ErrEmptyImage)
	})
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Voucher-HB-20260201-A1B2C-0F3D.pdf", voucher.Filename("HB-20260201-A1B2C-0F3D"))
}
