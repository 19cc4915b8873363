package models

import "time"

// Client entity
type Client struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Telefono  string    `json:"telefono"`
	WhatsApp  string    `json:"whatsapp,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notas     string    `json:"notas,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
