package voucher

import (
	"bytes"
	"fmt"

	"hotel-booking-api/internal/domain/pricing"

	svg "github.com/ajstarks/svgo"
)

// SVGRenderer produces a lightweight vector preview of the voucher for
// inline display. The downloadable artifact always goes through the
// raster renderer; SVG text stays selectable and scales cleanly in the
// browser.
type SVGRenderer struct{}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

func (r *SVGRenderer) ContentType() string {
	return "image/svg+xml"
}

func (r *SVGRenderer) Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrMissingReference
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(PageWidthPx, PageHeightPx)

	canvas.Rect(0, 0, PageWidthPx, PageHeightPx, "fill:white")
	canvas.Rect(0, 0, PageWidthPx, 130, "fill:#172554")

	canvas.Text(48, 56, "BOOKING VOUCHER", "font-family:sans-serif;font-size:28px;font-weight:bold;fill:white")
	canvas.Text(48, 92, "Reference: "+doc.Header.Reference, "font-family:sans-serif;font-size:13px;fill:white")

	status := doc.Header.DisplayStatus.String()
	canvas.Rect(PageWidthPx-48-150, 30, 150, 34, fmt.Sprintf("fill:%s;rx:6", statusColor(status)))
	canvas.Text(PageWidthPx-48-75, 53, status, "font-family:sans-serif;font-size:15px;font-weight:bold;fill:white;text-anchor:middle")

	y := 180
	y = svgSection(canvas, "Guest", y, [][2]string{
		{"Name", doc.Guest.Name},
		{"Email", doc.Guest.Email},
		{"Phone", doc.Guest.Phone},
		{"Nationality", doc.Guest.Nationality},
	})
	y = svgSection(canvas, "Stay", y, [][2]string{
		{"Check-in", doc.Stay.CheckIn},
		{"Check-out", doc.Stay.CheckOut},
		{"Nights", fmt.Sprintf("%d", doc.Stay.Nights)},
	})
	y = svgSection(canvas, "Property", y, [][2]string{
		{"Hotel", doc.Property.Name},
		{"City", doc.Property.City},
		{"Address", doc.Property.Address},
		{"Asset ID", doc.Property.AssetID},
	})

	canvas.Text(48, y, "Charges (SAR)", "font-family:sans-serif;font-size:16px;font-weight:bold;fill:#172554")
	y += 26
	for _, line := range doc.Financial.Lines {
		canvas.Text(48, y, line.Label, "font-family:sans-serif;font-size:13px;fill:#3c3c3c")
		canvas.Text(PageWidthPx-48, y, pricing.DisplayAmount(line.Amount), "font-family:sans-serif;font-size:13px;fill:#3c3c3c;text-anchor:end")
		y += 22
	}
	y += 18

	if doc.Welcome != "" {
		canvas.Text(48, y, doc.Welcome, "font-family:sans-serif;font-size:13px;fill:#3c3c3c")
		y += 40
	}

	canvas.Text(48, y, "Policies", "font-family:sans-serif;font-size:16px;font-weight:bold;fill:#172554")
	y += 24
	for _, policy := range doc.Policies {
		canvas.Text(48, y, "- "+policy, "font-family:sans-serif;font-size:10px;fill:#646464")
		y += 20
	}

	canvas.Rect(0, PageHeightPx-70, PageWidthPx, 70, "fill:#f0f2f8")
	contact := doc.Footer.Phone
	if doc.Footer.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += doc.Footer.Email
	}
	canvas.Text(PageWidthPx/2, PageHeightPx-32, contact, "font-family:sans-serif;font-size:10px;fill:#3c3c3c;text-anchor:middle")

	canvas.End()
	return buf.Bytes(), nil
}

func svgSection(canvas *svg.SVG, title string, y int, rows [][2]string) int {
	canvas.Text(48, y, title, "font-family:sans-serif;font-size:16px;font-weight:bold;fill:#172554")
	y += 26
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		canvas.Text(48, y, row[0], "font-family:sans-serif;font-size:12px;font-weight:bold;fill:#787878")
		canvas.Text(48+140, y, row[1], "font-family:sans-serif;font-size:13px;fill:#282828")
		y += 22
	}
	return y + 18
}

func statusColor(status string) string {
	switch status {
	case "CONFIRMED":
		return "#16a34a"
	case "CANCELLED", "FAILED":
		return "#dc2626"
	default:
		return "#d97706"
	}
}
