package snapshot

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/dmoralesmx/cotizador/internal/models"
)

type echoResolver struct{}

func (echoResolver) CategoryName(id string) string      { return id }
func (echoResolver) MaterialName(id string) string      { return id }
func (echoResolver) ColorName(id string) string         { return id }
func (echoResolver) FinishName(id string) string        { return id }
func (echoResolver) PaymentMethodName(id string) string { return id }

func sampleQuotation(items int) models.Quotation {
	q := models.Quotation{
		Folio:     "COT-2026-007",
		Cliente:   &models.Client{Nombre: "Juan Pérez", Telefono: "5551234567"},
		Estatus:   models.StatusSent,
		CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
	for i := 0; i < items; i++ {
		q.Items = append(q.Items, models.FurnitureItem{Nombre: "Mueble", MaterialID: "MDF", PrecioUnitario: 1000, Cantidad: 1})
	}
	q.ComputeTotals()
	return q
}

func TestFilename(t *testing.T) {
	if got := Filename(sampleQuotation(1)); got != "COT-2026-007.png" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderIsFixedWidthPNG(t *testing.T) {
	out, err := New().Render(nil, sampleQuotation(2), echoResolver{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != Width {
		t.Fatalf("width = %d, want %d", img.Bounds().Dx(), Width)
	}
}

func TestHeightGrowsWithItems(t *testing.T) {
	r := New()
	short, err := r.Render(nil, sampleQuotation(1), echoResolver{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	long, err := r.Render(nil, sampleQuotation(10), echoResolver{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	a, _ := png.Decode(bytes.NewReader(short))
	b, _ := png.Decode(bytes.NewReader(long))
	if b.Bounds().Dy() <= a.Bounds().Dy() {
		t.Fatalf("10 items (%dpx) must be taller than 1 item (%dpx)", b.Bounds().Dy(), a.Bounds().Dy())
	}
}
