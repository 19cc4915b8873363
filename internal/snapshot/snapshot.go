// Package snapshot renders a fixed-width raster image of a quotation for
// quick sharing over chat, mirroring the PDF content in a single PNG named
// by the folio.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dmoralesmx/cotizador/internal/i18n"
	"github.com/dmoralesmx/cotizador/internal/models"
	"github.com/dmoralesmx/cotizador/internal/pdf"
)

// Width is fixed; height grows with the item count.
const Width = 800

const (
	marginX    = 24
	lineHeight = 18
	headerH    = 56
)

type Renderer struct {
	Lang string
}

func New() *Renderer { return &Renderer{Lang: i18n.DefaultLang} }

// Filename is the export name for a quotation snapshot.
func Filename(q models.Quotation) string { return q.Folio + ".png" }

// Render draws the quotation onto a white canvas with a brand-colored header
// band and returns the encoded PNG.
func (r *Renderer) Render(profile *models.BusinessProfile, q models.Quotation, names pdf.NameResolver) ([]byte, error) {
	lbl := func(code string) string { return i18n.T(r.Lang, code) }

	lines := r.bodyLines(q, names, lbl)
	height := headerH + (len(lines)+2)*lineHeight + marginX

	img := image.NewRGBA(image.Rect(0, 0, Width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	br, bg, bb := uint8(0x8B), uint8(0x5A), uint8(0x2B)
	if profile != nil {
		br, bg, bb = profile.PrimaryRGB()
	}
	brand := color.RGBA{R: br, G: bg, B: bb, A: 255}
	draw.Draw(img, image.Rect(0, 0, Width, headerH), image.NewUniform(brand), image.Point{}, draw.Src)

	shopName := "Cotizador"
	if profile != nil && profile.Nombre != "" {
		shopName = profile.Nombre
	}
	drawText(img, marginX, 24, color.White, shopName)
	drawText(img, marginX, 42, color.White, fmt.Sprintf("%s · %s", lbl("quotation"), q.Folio))

	y := headerH + lineHeight
	ink := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	for _, ln := range lines {
		drawText(img, marginX, y, ink, ln)
		y += lineHeight
	}
	drawText(img, marginX, y+lineHeight/2, brand, lbl("footer_thanks"))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) bodyLines(q models.Quotation, names pdf.NameResolver, lbl func(string) string) []string {
	date := q.CreatedAt
	if date.IsZero() {
		date = time.Now()
	}
	lines := []string{
		fmt.Sprintf("%s: %s", lbl("date"), date.Format("02/01/2006")),
		fmt.Sprintf("%s: %s", lbl("status"), lbl("status_"+string(q.Estatus))),
	}
	if q.Cliente != nil {
		lines = append(lines, fmt.Sprintf("%s: %s", lbl("client"), q.Cliente.Nombre))
		if q.Cliente.Telefono != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", lbl("phone"), q.Cliente.Telefono))
		}
	}
	lines = append(lines, "")
	for _, it := range q.Items {
		lines = append(lines, fmt.Sprintf("%dx %s  %s  %s", it.Cantidad, it.Nombre, names.MaterialName(it.MaterialID), models.Money(it.Subtotal())))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s: %s", lbl("subtotal"), models.Money(q.Subtotal)))
	if q.Descuento > 0 {
		lines = append(lines, fmt.Sprintf("%s: -%s", lbl("discount"), models.Money(q.Descuento)))
	}
	lines = append(lines, fmt.Sprintf("%s: %s", lbl("total"), models.Money(q.Total)))
	if q.Entrega != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", lbl("delivery"), q.Entrega))
	}
	if q.MetodoPagoID != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", lbl("payment_method"), names.PaymentMethodName(q.MetodoPagoID)))
	}
	if q.Observaciones != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", lbl("observations"), q.Observaciones))
	}
	return lines
}

func drawText(img *image.RGBA, x, y int, c color.Color, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
