// Package export renders a recorded generation as a printable A4 flyer.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/dataurl"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/share"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FlyerPDF lays out one history item: product image on top, headline, body,
// hashtag line and the company footer.
func FlyerPDF(item ads.HistoryItem) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(item.Content.Headline, true)

	// The Go fonts carry the Vietnamese glyphs the built-in core fonts lack.
	pdf.AddUTF8FontFromBytes("go", "", goregular.TTF)
	pdf.AddUTF8FontFromBytes("go", "B", gobold.TTF)

	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right

	y := placeProductImage(pdf, item.ProductImage, left, contentWidth)

	pdf.SetXY(left, y)
	pdf.SetFont("go", "B", 20)
	pdf.MultiCell(contentWidth, 9, item.Content.Headline, "", "L", false)

	pdf.Ln(3)
	pdf.SetFont("go", "", 12)
	pdf.MultiCell(contentWidth, 6, item.Content.Body, "", "L", false)

	pdf.Ln(3)
	pdf.SetFont("go", "B", 11)
	pdf.SetTextColor(79, 70, 229)
	pdf.MultiCell(contentWidth, 6, share.HashtagLine(item.Content), "", "L", false)
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(4)
	pdf.SetFont("go", "", 10)
	pdf.SetTextColor(100, 100, 100)
	footer := fmt.Sprintf("%s — %s", item.CompanyName, time.UnixMilli(item.CreatedAtMs).Format("02/01/2006"))
	pdf.MultiCell(contentWidth, 5, footer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render flyer pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// placeProductImage draws the product image full-width when it decodes;
// a remote URL or broken payload just skips the image block. Returns the Y
// where the text starts.
func placeProductImage(pdf *gofpdf.Fpdf, imageURI string, left, width float64) float64 {
	const top = 15.0

	mimeType, raw, err := dataurl.Decode(imageURI)
	if err != nil {
		return top
	}

	imageType := imageTypeFor(mimeType)
	if imageType == "" {
		return top
	}

	name := "product"
	options := gofpdf.ImageOptions{ImageType: imageType}
	info := pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(raw))
	if info == nil || pdf.Err() {
		return top
	}

	height := width * info.Height() / info.Width()
	if height > 120 {
		height = 120
	}
	pdf.ImageOptions(name, left, top, width, height, false, options, 0, "")
	return top + height + 10
}

func imageTypeFor(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return "JPG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}
