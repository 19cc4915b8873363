package models

// Catalog reference entities. Each list is flat id/name/active-flag data
// shared across every quotation. The active flag is a string because the
// remote API stores it that way; only the sentinel "0" marks an entry
// inactive, anything else (including absent) counts as active.

const inactiveFlag = "0"

func flagActive(v string) bool { return v != inactiveFlag }

type Category struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo string `json:"activo,omitempty"`
}

func (c Category) IsActive() bool { return flagActive(c.Activo) }

type Product struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	CategoriaID string `json:"categoria_id,omitempty"`
	Activo      string `json:"activo,omitempty"`
}

func (p Product) IsActive() bool { return flagActive(p.Activo) }

type Material struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo string `json:"activo,omitempty"`
}

func (m Material) IsActive() bool { return flagActive(m.Activo) }

// Color may optionally be scoped to a material; an empty MaterialID means
// the color applies to any material.
type Color struct {
	ID         string `json:"id"`
	Nombre     string `json:"nombre"`
	MaterialID string `json:"material_id,omitempty"`
	Activo     string `json:"activo,omitempty"`
}

func (c Color) IsActive() bool { return flagActive(c.Activo) }

type Finish struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo string `json:"activo,omitempty"`
}

func (f Finish) IsActive() bool { return flagActive(f.Activo) }

type Unit struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo string `json:"activo,omitempty"`
}

func (u Unit) IsActive() bool { return flagActive(u.Activo) }

type PaymentMethod struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo string `json:"activo,omitempty"`
}

func (p PaymentMethod) IsActive() bool { return flagActive(p.Activo) }

// Catalog bundles every reference list fetched from GET /api/catalogos.
type Catalog struct {
	Categorias  []Category      `json:"categorias"`
	Productos   []Product       `json:"productos"`
	Materiales  []Material      `json:"materiales"`
	Colores     []Color         `json:"colores"`
	Acabados    []Finish        `json:"acabados"`
	Unidades    []Unit          `json:"unidades"`
	MetodosPago []PaymentMethod `json:"metodos_pago"`
}
