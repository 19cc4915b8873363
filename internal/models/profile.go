package models

import "fmt"

// BusinessProfile is the singleton record describing the shop. Fetched once
// at startup, updated via PUT /api/negocio.
type BusinessProfile struct {
	Nombre          string `json:"nombre"`
	Telefono        string `json:"telefono,omitempty"`
	WhatsApp        string `json:"whatsapp,omitempty"`
	Email           string `json:"email,omitempty"`
	Direccion       string `json:"direccion,omitempty"`
	ColorPrimario   string `json:"color_primario,omitempty"`   // hex, e.g. #8B5A2B
	ColorSecundario string `json:"color_secundario,omitempty"` // hex
	LogoURL         string `json:"logo_url,omitempty"`
}

// PrimaryRGB parses ColorPrimario as #RRGGBB. Missing or malformed values
// fall back to the shop's walnut brown.
func (p BusinessProfile) PrimaryRGB() (r, g, b uint8) {
	return parseHexColor(p.ColorPrimario, 0x8B, 0x5A, 0x2B)
}

// SecondaryRGB parses ColorSecundario with a neutral dark fallback.
func (p BusinessProfile) SecondaryRGB() (r, g, b uint8) {
	return parseHexColor(p.ColorSecundario, 0x33, 0x33, 0x33)
}

func parseHexColor(s string, dr, dg, db uint8) (r, g, b uint8) {
	if len(s) != 7 || s[0] != '#' {
		return dr, dg, db
	}
	var rv, gv, bv uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return dr, dg, db
	}
	return rv, gv, bv
}
