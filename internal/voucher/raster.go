package voucher

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/png"

	"hotel-booking-api/internal/domain/pricing"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DejaVu Sans is bundled because the Go fonts carry no Arabic glyphs;
// Arabic guest and hotel names must not degrade to .notdef boxes in
// the downloadable artifact. License sits next to the files.
var (
	//go:embed fonts/DejaVuSans.ttf
	regularTTF []byte

	//go:embed fonts/DejaVuSans-Bold.ttf
	boldTTF []byte
)

// RasterRenderer draws the voucher onto an A4-proportioned canvas
// (794x1123 at 96 DPI) multiplied by a supersampling factor, then
// encodes it as a full-quality PNG. The PNG is what gets embedded into
// the downloadable PDF page.
type RasterRenderer struct {
	scale  float64
	title  font.Face
	header font.Face
	label  font.Face
	body   font.Face
	small  font.Face
}

func NewRasterRenderer(scale int) (*RasterRenderer, error) {
	if scale < 1 {
		scale = 1
	}
	s := float64(scale)

	regular, err := opentype.Parse(regularTTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(boldTTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	newFace := func(src *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size * s,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	r := &RasterRenderer{scale: s}
	if r.title, err = newFace(bold, 28); err != nil {
		return nil, err
	}
	if r.header, err = newFace(bold, 16); err != nil {
		return nil, err
	}
	if r.label, err = newFace(bold, 12); err != nil {
		return nil, err
	}
	if r.body, err = newFace(regular, 13); err != nil {
		return nil, err
	}
	if r.small, err = newFace(regular, 10); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RasterRenderer) ContentType() string {
	return "image/png"
}

func (r *RasterRenderer) Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrMissingReference
	}

	s := r.scale
	width := int(PageWidthPx * s)
	height := int(PageHeightPx * s)
	dc := gg.NewContext(width, height)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	margin := 48 * s
	contentWidth := float64(width) - 2*margin

	// header band
	dc.SetRGB255(23, 37, 84)
	dc.DrawRectangle(0, 0, float64(width), 130*s)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(r.title)
	dc.DrawString("BOOKING VOUCHER", margin, 56*s)
	dc.SetFontFace(r.body)
	dc.DrawString("Reference: "+doc.Header.Reference, margin, 92*s)

	r.drawStatusBadge(dc, doc.Header.DisplayStatus.String(), float64(width)-margin, 56*s)

	y := 180 * s
	y = r.drawSection(dc, "Guest", margin, y, [][2]string{
		{"Name", doc.Guest.Name},
		{"Email", doc.Guest.Email},
		{"Phone", doc.Guest.Phone},
		{"Nationality", doc.Guest.Nationality},
	})

	y = r.drawSection(dc, "Stay", margin, y, [][2]string{
		{"Check-in", doc.Stay.CheckIn},
		{"Check-out", doc.Stay.CheckOut},
		{"Nights", fmt.Sprintf("%d", doc.Stay.Nights)},
	})

	y = r.drawSection(dc, "Property", margin, y, [][2]string{
		{"Hotel", doc.Property.Name},
		{"City", doc.Property.City},
		{"Address", doc.Property.Address},
		{"Asset ID", doc.Property.AssetID},
	})

	// financial ledger with right-aligned amounts
	dc.SetRGB255(23, 37, 84)
	dc.SetFontFace(r.header)
	dc.DrawString("Charges (SAR)", margin, y)
	y += 26 * s
	for _, line := range doc.Financial.Lines {
		dc.SetRGB255(60, 60, 60)
		dc.SetFontFace(r.body)
		dc.DrawString(line.Label, margin, y)
		amount := pricing.DisplayAmount(line.Amount)
		dc.DrawStringAnchored(amount, margin+contentWidth, y, 1, 0)
		y += 22 * s
	}
	dc.SetRGB255(180, 180, 180)
	dc.DrawLine(margin, y-14*s, margin+contentWidth, y-14*s)
	dc.SetLineWidth(1 * s)
	dc.Stroke()
	y += 18 * s

	if doc.Welcome != "" {
		dc.SetRGB255(60, 60, 60)
		dc.SetFontFace(r.body)
		dc.DrawStringWrapped(doc.Welcome, margin, y, 0, 0, contentWidth, 1.4, gg.AlignLeft)
		y += 70 * s
	}

	dc.SetRGB255(23, 37, 84)
	dc.SetFontFace(r.header)
	dc.DrawString("Policies", margin, y)
	y += 24 * s
	dc.SetRGB255(100, 100, 100)
	dc.SetFontFace(r.small)
	for _, policy := range doc.Policies {
		dc.DrawStringWrapped("- "+policy, margin, y, 0, 0, contentWidth, 1.3, gg.AlignLeft)
		y += 32 * s
	}

	// footer band
	dc.SetRGB255(240, 242, 248)
	dc.DrawRectangle(0, float64(height)-70*s, float64(width), 70*s)
	dc.Fill()
	dc.SetRGB255(60, 60, 60)
	dc.SetFontFace(r.small)
	contact := doc.Footer.Phone
	if doc.Footer.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += doc.Footer.Email
	}
	dc.DrawStringAnchored(contact, float64(width)/2, float64(height)-35*s, 0.5, 0.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode voucher png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *RasterRenderer) drawSection(dc *gg.Context, title string, x, y float64, rows [][2]string) float64 {
	s := r.scale

	dc.SetRGB255(23, 37, 84)
	dc.SetFontFace(r.header)
	dc.DrawString(title, x, y)
	y += 26 * s

	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		dc.SetRGB255(120, 120, 120)
		dc.SetFontFace(r.label)
		dc.DrawString(row[0], x, y)
		dc.SetRGB255(40, 40, 40)
		dc.SetFontFace(r.body)
		dc.DrawString(StripIsolates(row[1]), x+140*s, y)
		y += 22 * s
	}
	return y + 18*s
}

func (r *RasterRenderer) drawStatusBadge(dc *gg.Context, status string, rightX, y float64) {
	s := r.scale

	switch status {
	case "CONFIRMED":
		dc.SetRGB255(22, 163, 74)
	case "CANCELLED", "FAILED":
		dc.SetRGB255(220, 38, 38)
	default:
		dc.SetRGB255(217, 119, 6)
	}

	dc.SetFontFace(r.header)
	w, h := dc.MeasureString(status)
	padX, padY := 14*s, 8*s
	dc.DrawRoundedRectangle(rightX-w-2*padX, y-h-padY, w+2*padX, h+2*padY, 6*s)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawString(status, rightX-w-padX, y)
}
