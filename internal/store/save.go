package store

import (
	"context"
	"fmt"

	"github.com/dmoralesmx/cotizador/internal/api"
	"github.com/dmoralesmx/cotizador/internal/logging"
	"github.com/dmoralesmx/cotizador/internal/models"
	"github.com/dmoralesmx/cotizador/internal/validation"
)

// ItemFailure records one line item that could not be written.
type ItemFailure struct {
	Nombre string
	Err    error
}

// SaveReport surfaces partial-batch outcomes explicitly. A save whose header
// succeeded but lost items is NOT rolled back; the caller decides what to
// tell the user per failed item.
type SaveReport struct {
	Folio  string
	Failed []ItemFailure
}

func (r SaveReport) Partial() bool { return len(r.Failed) > 0 }

type folioPayload struct {
	Folio string `json:"folio"`
}

// NextFolio asks the API for the next sequential human-readable folio. If
// that call fails, a locally computed fallback keeps the save moving:
// COT-<year>-<3-digit sequence from the local mirror>.
func (s *Store) NextFolio(ctx context.Context) string {
	p, err := api.Get[folioPayload](ctx, s.api, "/api/cotizaciones/siguiente-folio").Unwrap()
	if err == nil && p.Folio != "" {
		return p.Folio
	}
	if err != nil {
		logging.LogKV("warn", "next-folio unavailable, using local fallback", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return s.fallbackFolio()
}

func (s *Store) fallbackFolio() string {
	s.mu.RLock()
	n := len(s.quotations) + 1
	s.mu.RUnlock()
	return fmt.Sprintf("COT-%d-%03d", s.now().Year(), n)
}

func validateQuotation(q models.Quotation) validation.Violations {
	v := validation.Violations{}
	validation.Required("cliente_id", q.ClienteID, v)
	if len(q.Items) == 0 {
		v["items"] = "required"
	}
	for _, it := range q.Items {
		validation.Required("item.nombre", it.Nombre, v)
		validation.PositiveFloat("item.precio_unitario", it.PrecioUnitario, v)
		validation.PositiveInt("item.cantidad", it.Cantidad, v)
	}
	return v
}

// SaveQuotation persists a new quotation. Sequenced sub-steps: folio
// reservation, then the header record, then each item — images first moved
// to the asset host, item records created one at a time so the numeric
// suffix ids stay sequential. Item failures land in the report; the header
// stays persisted either way.
func (s *Store) SaveQuotation(ctx context.Context, q models.Quotation) (models.Quotation, SaveReport, error) {
	if v := validateQuotation(q); !v.Empty() {
		return models.Quotation{}, SaveReport{}, fmt.Errorf("cotizacion invalida: %v", v)
	}
	client, ok := s.ClientByID(q.ClienteID)
	if !ok {
		return models.Quotation{}, SaveReport{}, fmt.Errorf("cliente %s no existe localmente", q.ClienteID)
	}

	q.Folio = s.NextFolio(ctx)
	if q.Estatus == "" {
		q.Estatus = models.StatusDraft
	}
	q.ComputeTotals()
	items := q.Items
	header := q
	header.Items = nil

	created, err := api.Post[models.Quotation](ctx, s.api, "/api/cotizaciones", header).Unwrap()
	if err != nil {
		return models.Quotation{}, SaveReport{Folio: q.Folio}, err
	}
	if created.Folio == "" {
		created.Folio = q.Folio
	}

	report := SaveReport{Folio: created.Folio}
	saved := make([]models.FurnitureItem, 0, len(items))
	for i, it := range items {
		it.CotizacionID = created.ID
		it.ID = fmt.Sprintf("%s-%d", created.ID, i+1)
		s.uploadItemImage(ctx, &it)
		if _, err := api.Post[models.FurnitureItem](ctx, s.api, "/api/items", it).Unwrap(); err != nil {
			report.Failed = append(report.Failed, ItemFailure{Nombre: it.Nombre, Err: err})
			continue
		}
		saved = append(saved, it)
	}

	created.Items = saved
	created.Cliente = &client
	s.mu.Lock()
	s.quotations = append(s.quotations, created)
	s.mu.Unlock()
	return created, report, nil
}

// ReplaceItems rewrites a quotation's item set: one bulk delete, then the
// new items created sequentially (order preserves the numeric suffix ids).
// Full replace, never a diff — simpler than patching at the cost of
// bandwidth, and non-atomic like the save path.
func (s *Store) ReplaceItems(ctx context.Context, quotationID string, items []models.FurnitureItem) (SaveReport, error) {
	if _, err := api.Delete[struct{}](ctx, s.api, "/api/cotizaciones/"+quotationID+"/items").Unwrap(); err != nil {
		return SaveReport{}, err
	}
	var report SaveReport
	saved := make([]models.FurnitureItem, 0, len(items))
	for i, it := range items {
		it.CotizacionID = quotationID
		it.ID = fmt.Sprintf("%s-%d", quotationID, i+1)
		s.uploadItemImage(ctx, &it)
		if _, err := api.Post[models.FurnitureItem](ctx, s.api, "/api/items", it).Unwrap(); err != nil {
			report.Failed = append(report.Failed, ItemFailure{Nombre: it.Nombre, Err: err})
			continue
		}
		saved = append(saved, it)
	}

	s.mu.Lock()
	for i := range s.quotations {
		if s.quotations[i].ID == quotationID {
			s.quotations[i].Items = saved
			s.quotations[i].ComputeTotals()
			break
		}
	}
	s.mu.Unlock()
	return report, nil
}
