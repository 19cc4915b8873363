// Package store mirrors remote business entities (profile, clients,
// quotations and their line items) in memory for the presentation layer.
// Reads are batched behind a staleness window; writes go straight through
// the gateway and update the mirror on success.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmoralesmx/cotizador/internal/api"
	"github.com/dmoralesmx/cotizador/internal/assets"
	"github.com/dmoralesmx/cotizador/internal/logging"
	"github.com/dmoralesmx/cotizador/internal/models"
	"github.com/dmoralesmx/cotizador/internal/validation"
)

// syncWindow gates non-forced quotation refreshes: a second refresh within
// the window of a successful one issues zero network calls.
const syncWindow = 30 * time.Second

type Store struct {
	api      *api.Client
	uploader assets.Uploader // optional; nil drops images with a data URI

	mu         sync.RWMutex
	profile    *models.BusinessProfile
	clients    []models.Client
	quotations []models.Quotation
	lastSync   time.Time

	now func() time.Time
}

func New(apiClient *api.Client, uploader assets.Uploader) *Store {
	return &Store{api: apiClient, uploader: uploader, now: time.Now}
}

// ---- business profile ----

// LoadProfile fetches the singleton shop record. Always hits the network.
func (s *Store) LoadProfile(ctx context.Context) error {
	p, err := api.Get[models.BusinessProfile](ctx, s.api, "/api/negocio").Unwrap()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()
	return nil
}

func (s *Store) Profile() *models.BusinessProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) UpdateProfile(ctx context.Context, p models.BusinessProfile) error {
	v := validation.Violations{}
	validation.Required("nombre", p.Nombre, v)
	if !v.Empty() {
		return fmt.Errorf("perfil invalido: %v", v)
	}
	if _, err := api.Put[models.BusinessProfile](ctx, s.api, "/api/negocio", p).Unwrap(); err != nil {
		return err
	}
	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()
	return nil
}

// ---- clients ----

// LoadClients fetches the full client list. Always hits the network; the
// list is small and quotation joins depend on it being current.
func (s *Store) LoadClients(ctx context.Context) error {
	list, err := api.Get[[]models.Client](ctx, s.api, "/api/clientes").Unwrap()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.clients = list
	s.mu.Unlock()
	return nil
}

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) ClientByID(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

func validateClient(c models.Client) validation.Violations {
	v := validation.Violations{}
	validation.Required("nombre", c.Nombre, v)
	validation.Required("telefono", c.Telefono, v)
	validation.DigitString("whatsapp", c.WhatsApp, 10, v)
	return v
}

func (s *Store) CreateClient(ctx context.Context, c models.Client) (models.Client, error) {
	if v := validateClient(c); !v.Empty() {
		return models.Client{}, fmt.Errorf("cliente invalido: %v", v)
	}
	created, err := api.Post[models.Client](ctx, s.api, "/api/clientes", c).Unwrap()
	if err != nil {
		return models.Client{}, err
	}
	s.mu.Lock()
	s.clients = append(s.clients, created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateClient(ctx context.Context, c models.Client) error {
	if v := validateClient(c); !v.Empty() {
		return fmt.Errorf("cliente invalido: %v", v)
	}
	if _, err := api.Put[models.Client](ctx, s.api, "/api/clientes/"+c.ID, c).Unwrap(); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == c.ID {
			s.clients[i] = c
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	if _, err := api.Delete[struct{}](ctx, s.api, "/api/clientes/"+id).Unwrap(); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.clients[:0]
	for _, c := range s.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.clients = kept
	s.mu.Unlock()
	return nil
}

// ---- quotations ----

func (s *Store) Quotations() []models.Quotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quotation, len(s.quotations))
	copy(out, s.quotations)
	return out
}

func (s *Store) QuotationByID(id string) (models.Quotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quotations {
		if q.ID == id || q.Folio == id {
			return q, true
		}
	}
	return models.Quotation{}, false
}

// RefreshQuotations reloads the quotation mirror. Unless forced, a refresh
// within the staleness window of the last successful one is a no-op with
// zero network calls. Headers are joined against the locally held clients —
// a quotation whose client id has no local match is dropped, not an error —
// and item details for the survivors are fetched concurrently so total
// latency stays at one round trip instead of N.
func (s *Store) RefreshQuotations(ctx context.Context, force bool) error {
	s.mu.RLock()
	last := s.lastSync
	s.mu.RUnlock()
	if !force && !last.IsZero() && s.now().Sub(last) < syncWindow {
		return nil
	}

	headers, err := api.Get[[]models.Quotation](ctx, s.api, "/api/cotizaciones").Unwrap()
	if err != nil {
		return err
	}

	s.mu.RLock()
	byID := make(map[string]models.Client, len(s.clients))
	for _, c := range s.clients {
		byID[c.ID] = c
	}
	s.mu.RUnlock()

	kept := make([]models.Quotation, 0, len(headers))
	for _, q := range headers {
		c, ok := byID[q.ClienteID]
		if !ok {
			continue
		}
		cc := c
		q.Cliente = &cc
		kept = append(kept, q)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range kept {
		i := i
		g.Go(func() error {
			items, err := api.Get[[]models.FurnitureItem](gctx, s.api, "/api/cotizaciones/"+kept[i].ID+"/items").Unwrap()
			if err != nil {
				return err
			}
			kept[i].Items = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.quotations = kept
	s.lastSync = s.now()
	s.mu.Unlock()
	return nil
}

// Invalidate forgets the last successful refresh so the next non-forced
// RefreshQuotations hits the network again.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.lastSync = time.Time{}
	s.mu.Unlock()
}

func (s *Store) DeleteQuotation(ctx context.Context, id string) error {
	if _, err := api.Delete[struct{}](ctx, s.api, "/api/cotizaciones/"+id).Unwrap(); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.quotations[:0]
	for _, q := range s.quotations {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.quotations = kept
	s.mu.Unlock()
	return nil
}

// UpdateStatus maps the status label to the server's numeric code, issues a
// single remote call, then optimistically updates the mirror.
func (s *Store) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("estatus desconocido: %q", status)
	}
	body := map[string]int{"codigo": status.Code()}
	if _, err := api.Put[struct{}](ctx, s.api, "/api/cotizaciones/"+id+"/estatus", body).Unwrap(); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.quotations {
		if s.quotations[i].ID == id {
			s.quotations[i].Estatus = status
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// uploadItemImage converts a local base64 encoding into a hosted URL. Any
// failure drops the image rather than blocking the item save.
func (s *Store) uploadItemImage(ctx context.Context, it *models.FurnitureItem) {
	if it.Imagen == "" || !assets.IsDataURI(it.Imagen) {
		return
	}
	if s.uploader == nil {
		it.Imagen = ""
		return
	}
	name := strings.TrimSpace(it.Nombre)
	if name == "" {
		name = it.ID
	}
	url, err := s.uploader.Upload(ctx, name, it.Imagen)
	if err != nil {
		logging.LogKV("warn", "image upload failed, dropping image", map[string]interface{}{
			"item": it.ID, "error": err.Error(),
		})
		it.Imagen = ""
		return
	}
	it.Imagen = url
}
