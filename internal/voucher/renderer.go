package voucher

// A4 voucher canvas at 96 DPI.
const (
	PageWidthPx  = 794
	PageHeightPx = 1123
)

// Renderer turns an assembled voucher document into an image. Keeping
// this behind an interface lets the assembler and the HTTP layer be
// tested without any drawing backend.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	ContentType() string
}
