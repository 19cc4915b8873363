package models

import (
	"strconv"
	"strings"
	"time"
)

// Quotation status labels. There is no enforced transition graph: any status
// can be set from any other via a direct update call.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// The server expects a fixed numeric code per status label.
var statusCodes = map[Status]int{
	StatusDraft:    1,
	StatusSent:     2,
	StatusAccepted: 3,
	StatusRejected: 4,
}

func (s Status) Valid() bool { _, ok := statusCodes[s]; return ok }

// Code maps the label to the server's numeric code; 0 for unknown labels.
func (s Status) Code() int { return statusCodes[s] }

// StatusFromCode is the inverse mapping; unknown codes resolve to draft.
func StatusFromCode(code int) Status {
	for s, c := range statusCodes {
		if c == code {
			return s
		}
	}
	return StatusDraft
}

// FurnitureItem is a line item owned exclusively by its parent quotation.
// Item ids carry a sequential numeric suffix ("<quotation id>-<n>") assigned
// at creation time.
type FurnitureItem struct {
	ID             string  `json:"id"`
	CotizacionID   string  `json:"cotizacion_id"`
	Nombre         string  `json:"nombre"`
	CategoriaID    string  `json:"categoria_id,omitempty"`
	Ancho          float64 `json:"ancho,omitempty"` // cm
	Alto           float64 `json:"alto,omitempty"`
	Profundidad    float64 `json:"profundidad,omitempty"`
	MaterialID     string  `json:"material_id,omitempty"`
	ColorID        string  `json:"color_id,omitempty"`
	AcabadoID      string  `json:"acabado_id,omitempty"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Cantidad       int     `json:"cantidad"`
	// Imagen holds a base64 data URI before upload and the hosted URL after.
	Imagen string `json:"imagen,omitempty"`
}

// Subtotal is the computed line amount.
func (it FurnitureItem) Subtotal() float64 {
	return it.PrecioUnitario * float64(it.Cantidad)
}

// Quotation aggregates a client reference, an ordered item list, pricing and
// terms. Cliente is resolved locally from the client mirror and never sent
// over the wire.
type Quotation struct {
	ID            string          `json:"id"`
	Folio         string          `json:"folio"`
	ClienteID     string          `json:"cliente_id"`
	Cliente       *Client         `json:"-"`
	Items         []FurnitureItem `json:"items,omitempty"`
	Subtotal      float64         `json:"subtotal"`
	Descuento     float64         `json:"descuento,omitempty"`
	Total         float64         `json:"total"`
	Entrega       string          `json:"entrega,omitempty"`      // delivery terms
	MetodoPagoID  string          `json:"metodo_pago,omitempty"`  // payment method ref
	Anticipo      float64         `json:"anticipo,omitempty"`     // required advance payment
	Observaciones string          `json:"observaciones,omitempty"`
	Estatus       Status          `json:"estatus"`
	CreatedAt     time.Time       `json:"created_at,omitempty"`
}

// Money formats an amount the way the exports and the CLI print it:
// $12,345.00.
func Money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(frac)
	return b.String()
}

// ComputeTotals recomputes Subtotal and Total from the item list. A discount
// is applied only when positive and smaller than the subtotal, mirroring how
// the forms cap it.
func (q *Quotation) ComputeTotals() {
	var sub float64
	for _, it := range q.Items {
		sub += it.Subtotal()
	}
	q.Subtotal = sub
	total := sub
	if q.Descuento > 0 && q.Descuento < sub {
		total = sub - q.Descuento
	}
	q.Total = total
}
