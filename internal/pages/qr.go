package pages

import (
	"log"
	"text/template"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/vincent-petithory/dataurl"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/theme"
)

const qrImageSize = 512

// QRGenerator renders the shareable-link page with an embedded QR code.
type QRGenerator struct {
	theme theme.Theme

	// encode turns a URL into an embeddable image URI. Replaceable in tests.
	encode func(rawURL string) (string, error)

	tmpl *template.Template
}

// NewQRGenerator creates a QR page generator.
func NewQRGenerator(th theme.Theme) *QRGenerator {
	return &QRGenerator{
		theme:  th,
		encode: encodeQRDataURI,
		tmpl:   parsePage("qr.tmpl"),
	}
}

type qrData struct {
	Theme      theme.Theme
	QRImage    string
	Label      string
	URL        string
	PageNumber int
}

// Generate renders the QR page for target. When encoding fails the page is
// still produced with the label and plain URL, just without the image.
func (g *QRGenerator) Generate(target book.QRTarget, pageNumber int) string {
	data := qrData{
		Theme:      g.theme,
		Label:      target.Label,
		URL:        target.URL,
		PageNumber: pageNumber,
	}
	if img, err := g.encode(target.URL); err != nil {
		log.Printf("WARNING: could not encode QR code for %s: %v", target.URL, err)
	} else {
		data.QRImage = img
	}
	return renderPage(g.tmpl, data)
}

func encodeQRDataURI(rawURL string) (string, error) {
	png, err := qrcode.Encode(rawURL, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}
	return dataurl.New(png, "image/png").String(), nil
}
