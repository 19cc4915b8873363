// Package catalog serves the shop-wide reference data (categories,
// materials, colors, finishes, units, payment methods). Data is fetched from
// the API at most once per freshness window and persisted to the durable
// local store so a cold start with no network still has something to show.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmoralesmx/cotizador/internal/api"
	"github.com/dmoralesmx/cotizador/internal/localstore"
	"github.com/dmoralesmx/cotizador/internal/models"
)

const (
	// Freshness window for the durable record. Catalog data is mostly
	// static; a day-old copy is fine.
	cacheTTL = 24 * time.Hour

	// Bumped whenever the cached shape changes; a mismatched version reads
	// as a cache miss instead of a decode surprise.
	cacheVersion = 1
)

type cacheRecord struct {
	Version   int            `json:"version"`
	Data      models.Catalog `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

type Service struct {
	api   *api.Client
	store *localstore.Store
	now   func() time.Time

	mu   sync.RWMutex
	data models.Catalog
}

func New(apiClient *api.Client, store *localstore.Store) *Service {
	return &Service{api: apiClient, store: store, now: time.Now}
}

// Load populates the in-memory catalog. Unless forced, a durable record
// younger than the freshness window is used directly and no network call is
// made. On a fetch failure any durable record — regardless of age — is
// served instead, and the returned error is non-nil so the caller can tell
// the user the data may be stale (stale-while-error).
func (s *Service) Load(ctx context.Context, force bool) error {
	if !force {
		if rec, ok := s.readRecord(); ok && s.now().Sub(rec.Timestamp) < cacheTTL {
			s.setData(rec.Data)
			return nil
		}
	}
	data, err := api.Get[models.Catalog](ctx, s.api, "/api/catalogos").Unwrap()
	if err == nil {
		s.setData(data)
		rec := cacheRecord{Version: cacheVersion, Data: data, Timestamp: s.now()}
		if werr := s.store.PutJSON(localstore.KeyCatalog, rec); werr != nil {
			return fmt.Errorf("catalogo: guardar cache local: %w", werr)
		}
		return nil
	}
	if rec, ok := s.readRecord(); ok {
		s.setData(rec.Data)
		return fmt.Errorf("catalogo: sin conexion, usando copia local: %w", err)
	}
	return fmt.Errorf("catalogo: %w", err)
}

func (s *Service) readRecord() (cacheRecord, bool) {
	var rec cacheRecord
	ok, err := s.store.GetJSON(localstore.KeyCatalog, &rec)
	if err != nil || !ok || rec.Version != cacheVersion {
		return cacheRecord{}, false
	}
	return rec, true
}

func (s *Service) setData(data models.Catalog) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

// Data returns the current in-memory catalog.
func (s *Service) Data() models.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Name lookups resolve an id to its display name by linear scan. They never
// fail: an unresolved id is returned verbatim so the UI always has something
// to print.

func (s *Service) CategoryName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.Categorias {
		if c.ID == id {
			return c.Nombre
		}
	}
	return id
}

func (s *Service) ProductName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Productos {
		if p.ID == id {
			return p.Nombre
		}
	}
	return id
}

func (s *Service) MaterialName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.data.Materiales {
		if m.ID == id {
			return m.Nombre
		}
	}
	return id
}

func (s *Service) ColorName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.Colores {
		if c.ID == id {
			return c.Nombre
		}
	}
	return id
}

func (s *Service) FinishName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.data.Acabados {
		if f.ID == id {
			return f.Nombre
		}
	}
	return id
}

func (s *Service) UnitName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Unidades {
		if u.ID == id {
			return u.Nombre
		}
	}
	return id
}

func (s *Service) PaymentMethodName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.MetodosPago {
		if p.ID == id {
			return p.Nombre
		}
	}
	return id
}

// Active filters: an entry is excluded only when its flag is explicitly the
// inactive sentinel; entries with no flag count as active.

func (s *Service) ActiveCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.data.Categorias))
	for _, c := range s.data.Categorias {
		if c.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

func (s *Service) ActiveMaterials() []models.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Material, 0, len(s.data.Materiales))
	for _, m := range s.data.Materiales {
		if m.IsActive() {
			out = append(out, m)
		}
	}
	return out
}

func (s *Service) ActiveColors() []models.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeColorsLocked()
}

func (s *Service) activeColorsLocked() []models.Color {
	out := make([]models.Color, 0, len(s.data.Colores))
	for _, c := range s.data.Colores {
		if c.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

func (s *Service) ActiveFinishes() []models.Finish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Finish, 0, len(s.data.Acabados))
	for _, f := range s.data.Acabados {
		if f.IsActive() {
			out = append(out, f)
		}
	}
	return out
}

func (s *Service) ActiveUnits() []models.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Unit, 0, len(s.data.Unidades))
	for _, u := range s.data.Unidades {
		if u.IsActive() {
			out = append(out, u)
		}
	}
	return out
}

func (s *Service) ActivePaymentMethods() []models.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PaymentMethod, 0, len(s.data.MetodosPago))
	for _, p := range s.data.MetodosPago {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

// ColorsForMaterial returns the active colors scoped to the given material.
// When the filter yields nothing (miscatalogued data), it falls back to the
// full active color list instead of dead-ending the picker — the filtered
// contract is soft, not strict.
func (s *Service) ColorsForMaterial(materialID string) []models.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Color
	for _, c := range s.data.Colores {
		if c.IsActive() && c.MaterialID == materialID {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return s.activeColorsLocked()
	}
	return out
}
