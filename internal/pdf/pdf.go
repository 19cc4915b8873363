// Package pdf renders a quotation as a paginated document: brand header,
// client block, itemized table, totals, terms, observations, footer. Files
// are named by the quotation's folio.
package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dmoralesmx/cotizador/internal/i18n"
	"github.com/dmoralesmx/cotizador/internal/models"
)

// NameResolver turns catalog ids into display names. The catalog service
// satisfies this; lookups never fail (identity fallback on miss).
type NameResolver interface {
	CategoryName(id string) string
	MaterialName(id string) string
	ColorName(id string) string
	FinishName(id string) string
	PaymentMethodName(id string) string
}

type Generator struct {
	Lang string
}

func New() *Generator { return &Generator{Lang: i18n.DefaultLang} }

// Filename is the export name for a quotation document.
func Filename(q models.Quotation) string { return q.Folio + ".pdf" }

// Render produces the PDF bytes for a quotation.
func (g *Generator) Render(profile *models.BusinessProfile, q models.Quotation, names NameResolver) ([]byte, error) {
	doc, err := g.build(profile, q, names)
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func (g *Generator) build(profile *models.BusinessProfile, q models.Quotation, names NameResolver) (core.Document, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithRightMargin(12).
		WithTopMargin(12).
		Build()
	m := maroto.New(cfg)

	white := &props.Color{Red: 255, Green: 255, Blue: 255}
	brand := brandColor(profile)
	gray := &props.Color{Red: 235, Green: 235, Blue: 235}
	lbl := func(code string) string { return i18n.T(g.Lang, code) }

	shopName := "Cotizador"
	if profile != nil && profile.Nombre != "" {
		shopName = profile.Nombre
	}
	m.AddRow(14,
		text.NewCol(8, shopName, props.Text{Size: 15, Style: fontstyle.Bold, Color: white, Top: 4, Left: 3}),
		text.NewCol(4, lbl("quotation"), props.Text{Size: 11, Style: fontstyle.Bold, Color: white, Top: 5, Right: 3, Align: align.Right}),
	).WithStyle(&props.Cell{BackgroundColor: brand})

	date := q.CreatedAt
	if date.IsZero() {
		date = time.Now()
	}
	m.AddRow(7,
		text.NewCol(6, fmt.Sprintf("%s: %s", lbl("folio"), q.Folio), props.Text{Size: 10, Style: fontstyle.Bold, Top: 2}),
		text.NewCol(6, fmt.Sprintf("%s: %s", lbl("date"), date.Format("02/01/2006")), props.Text{Size: 10, Top: 2, Align: align.Right}),
	)
	if profile != nil {
		contact := profile.Telefono
		if profile.Email != "" {
			if contact != "" {
				contact += "  ·  "
			}
			contact += profile.Email
		}
		if contact != "" {
			m.AddRow(5, text.NewCol(12, contact, props.Text{Size: 8}))
		}
		if profile.Direccion != "" {
			m.AddRow(5, text.NewCol(12, profile.Direccion, props.Text{Size: 8}))
		}
	}
	m.AddRow(3, line.NewCol(12))

	// client block
	m.AddRow(6, text.NewCol(12, lbl("client"), props.Text{Size: 10, Style: fontstyle.Bold, Top: 1}))
	if q.Cliente != nil {
		m.AddRow(5, text.NewCol(12, q.Cliente.Nombre, props.Text{Size: 9}))
		if q.Cliente.Telefono != "" {
			m.AddRow(5, text.NewCol(12, fmt.Sprintf("%s: %s", lbl("phone"), q.Cliente.Telefono), props.Text{Size: 9}))
		}
		if q.Cliente.Direccion != "" {
			m.AddRow(5, text.NewCol(12, fmt.Sprintf("%s: %s", lbl("address"), q.Cliente.Direccion), props.Text{Size: 9}))
		}
	}
	m.AddRow(3, line.NewCol(12))

	// item table
	m.AddRow(7,
		text.NewCol(4, lbl("item"), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5, Left: 1}),
		text.NewCol(3, lbl("dimensions"), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5}),
		text.NewCol(1, lbl("quantity"), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5, Align: align.Center}),
		text.NewCol(2, lbl("unit_price"), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5, Align: align.Right}),
		text.NewCol(2, lbl("line_subtotal"), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5, Align: align.Right, Right: 1}),
	).WithStyle(&props.Cell{BackgroundColor: gray})

	for _, it := range q.Items {
		detail := names.MaterialName(it.MaterialID)
		if it.ColorID != "" {
			detail += " · " + names.ColorName(it.ColorID)
		}
		if it.AcabadoID != "" {
			detail += " · " + names.FinishName(it.AcabadoID)
		}
		m.AddRow(6,
			text.NewCol(4, it.Nombre, props.Text{Size: 9, Top: 1, Left: 1}),
			text.NewCol(3, dimensions(it), props.Text{Size: 8, Top: 1}),
			text.NewCol(1, fmt.Sprintf("%d", it.Cantidad), props.Text{Size: 9, Top: 1, Align: align.Center}),
			text.NewCol(2, money(it.PrecioUnitario), props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.NewCol(2, money(it.Subtotal()), props.Text{Size: 9, Top: 1, Align: align.Right, Right: 1}),
		)
		m.AddRow(5, text.NewCol(12, detail, props.Text{Size: 7, Left: 2, Color: &props.Color{Red: 110, Green: 110, Blue: 110}}))
	}
	m.AddRow(3, line.NewCol(12))

	// totals
	m.AddRow(6,
		text.NewCol(9, lbl("subtotal"), props.Text{Size: 9, Top: 1, Align: align.Right}),
		text.NewCol(3, money(q.Subtotal), props.Text{Size: 9, Top: 1, Align: align.Right, Right: 1}),
	)
	if q.Descuento > 0 {
		m.AddRow(6,
			text.NewCol(9, lbl("discount"), props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.NewCol(3, "-"+money(q.Descuento), props.Text{Size: 9, Top: 1, Align: align.Right, Right: 1}),
		)
	}
	m.AddRow(7,
		text.NewCol(9, lbl("total"), props.Text{Size: 11, Style: fontstyle.Bold, Top: 1, Align: align.Right}),
		text.NewCol(3, money(q.Total), props.Text{Size: 11, Style: fontstyle.Bold, Top: 1, Align: align.Right, Right: 1}),
	)

	// terms
	if q.Entrega != "" {
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("%s: %s", lbl("delivery"), q.Entrega), props.Text{Size: 9, Top: 1}))
	}
	if q.MetodoPagoID != "" {
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("%s: %s", lbl("payment_method"), names.PaymentMethodName(q.MetodoPagoID)), props.Text{Size: 9, Top: 1}))
	}
	if q.Anticipo > 0 {
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("%s: %s", lbl("advance"), money(q.Anticipo)), props.Text{Size: 9, Top: 1}))
	}
	if q.Observaciones != "" {
		m.AddRow(6, text.NewCol(12, lbl("observations"), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1}))
		m.AddRow(8, text.NewCol(12, q.Observaciones, props.Text{Size: 8}))
	}

	m.AddRow(10, text.NewCol(12, lbl("footer_thanks"), props.Text{Size: 9, Style: fontstyle.Italic, Top: 4, Align: align.Center, Color: brandColor(profile)}))

	return m.Generate()
}

func brandColor(profile *models.BusinessProfile) *props.Color {
	r, g, b := uint8(0x8B), uint8(0x5A), uint8(0x2B)
	if profile != nil {
		r, g, b = profile.PrimaryRGB()
	}
	return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
}

func money(v float64) string { return models.Money(v) }

func dimensions(it models.FurnitureItem) string {
	if it.Ancho == 0 && it.Alto == 0 && it.Profundidad == 0 {
		return ""
	}
	return fmt.Sprintf("%.0f x %.0f x %.0f cm", it.Ancho, it.Alto, it.Profundidad)
}
