// Package preview composes the branded ad preview server-side: product image,
// circular logo overlay at the configured opacity, a brand banner strip and a
// hotline QR code.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/dataurl"

	_ "image/gif"
	_ "image/jpeg"
)

const (
	canvasSize = 1000

	logoSize   = 160
	logoMargin = 40

	bannerHeight = 130

	qrSize = 96
)

type Options struct {
	ProductImage string
	Logo         string
	LogoOpacity  float64
	Brand        ads.BrandProfile
}

// Render returns the composed preview as PNG bytes.
func Render(opts Options) ([]byte, error) {
	if opts.ProductImage == "" {
		return nil, fmt.Errorf("preview needs a product image")
	}

	product, err := decodeDataURI(opts.ProductImage)
	if err != nil {
		return nil, fmt.Errorf("decode product image: %w", err)
	}

	dc := gg.NewContext(canvasSize, canvasSize)
	drawCover(dc, product, canvasSize, canvasSize)

	if opts.Logo != "" {
		if err := drawLogo(dc, opts.Logo, opts.LogoOpacity); err != nil {
			return nil, fmt.Errorf("draw logo: %w", err)
		}
	}

	if err := drawBrandBanner(dc, opts.Brand); err != nil {
		return nil, fmt.Errorf("draw brand banner: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCover scales the image to cover the target area, cropping edges.
func drawCover(dc *gg.Context, img image.Image, width, height int) {
	srcWidth := float64(img.Bounds().Dx())
	srcHeight := float64(img.Bounds().Dy())
	scaleX := float64(width) / srcWidth
	scaleY := float64(height) / srcHeight

	scale := scaleX
	if scaleY > scaleX {
		scale = scaleY
	}

	scaledWidth := srcWidth * scale
	scaledHeight := srcHeight * scale
	offsetX := (float64(width) - scaledWidth) / 2
	offsetY := (float64(height) - scaledHeight) / 2

	dc.Push()
	dc.Translate(offsetX, offsetY)
	dc.Scale(scale, scale)
	dc.DrawImage(img, 0, 0)
	dc.Pop()
}

// drawLogo puts the logo in the top-right corner, circle-clipped, faded to
// the configured opacity.
func drawLogo(dc *gg.Context, logoURI string, opacity float64) error {
	logo, err := decodeDataURI(logoURI)
	if err != nil {
		return err
	}

	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}

	// Scale to the badge size, then fade by masking with a uniform alpha.
	scaled := image.NewRGBA(image.Rect(0, 0, logoSize, logoSize))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), xdraw.Over, nil)

	faded := image.NewRGBA(scaled.Bounds())
	alpha := image.NewUniform(color.Alpha{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(faded, faded.Bounds(), scaled, image.Point{}, alpha, image.Point{}, draw.Over)

	x := canvasSize - logoMargin - logoSize
	y := logoMargin

	dc.Push()
	dc.DrawCircle(float64(x+logoSize/2), float64(y+logoSize/2), float64(logoSize)/2)
	dc.Clip()
	dc.DrawImage(faded, x, y)
	dc.ResetClip()
	dc.Pop()

	return nil
}

func drawBrandBanner(dc *gg.Context, brand ads.BrandProfile) error {
	bannerY := float64(canvasSize - bannerHeight)

	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRectangle(0, bannerY, canvasSize, bannerHeight)
	dc.Fill()

	boldFont, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	regularFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(truetype.NewFace(boldFont, &truetype.Options{Size: 34}))
	dc.DrawStringAnchored(strings.ToUpper(brand.Name), 40, bannerY+48, 0, 0.5)

	dc.SetFontFace(truetype.NewFace(regularFont, &truetype.Options{Size: 26}))
	dc.DrawStringAnchored(brand.Hotline, 40, bannerY+92, 0, 0.5)

	if brand.Hotline != "" {
		if err := drawHotlineQR(dc, brand.Hotline, bannerY); err != nil {
			return err
		}
	}

	return nil
}

// drawHotlineQR drops a scannable tel: code into the banner's right edge.
func drawHotlineQR(dc *gg.Context, hotline string, bannerY float64) error {
	qr, err := qrcode.New("tel:"+hotline, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("build hotline QR: %w", err)
	}
	qr.DisableBorder = true

	img := qr.Image(qrSize)
	x := canvasSize - qrSize - 24
	y := int(bannerY) + (bannerHeight-qrSize)/2
	dc.DrawImage(img, x, y)
	return nil
}

func decodeDataURI(uri string) (image.Image, error) {
	_, raw, err := dataurl.Decode(uri)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image bytes: %w", err)
	}
	return img, nil
}
