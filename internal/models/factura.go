package models

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	EstadoPendiente = "pendiente"
	EstadoVencida   = "vencida"
)

// ErrNoExiste is returned by stores when the requested factura id is absent.
var ErrNoExiste = errors.New("No existe")

type Factura struct {
	ID        uint      `gorm:"primaryKey"`
	Cliente   string    `gorm:"not null;index"`
	Monto     float64   `gorm:"not null"`
	Vence     time.Time `gorm:"type:date;not null;index"`
	Estado    string    `gorm:"not null;default:pendiente;index"`
	Telefono  string
	CreatedAt time.Time
}

type facturaJSON struct {
	ID        uint      `json:"id"`
	Cliente   string    `json:"cliente"`
	Monto     float64   `json:"monto"`
	Vence     string    `json:"vence"`
	Estado    string    `json:"estado"`
	Telefono  string    `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON keeps the wire contract of the API: Spanish keys and vence as a
// plain ISO calendar date.
func (f Factura) MarshalJSON() ([]byte, error) {
	return json.Marshal(facturaJSON{
		ID:        f.ID,
		Cliente:   f.Cliente,
		Monto:     f.Monto,
		Vence:     f.Vence.Format("2006-01-02"),
		Estado:    f.Estado,
		Telefono:  f.Telefono,
		CreatedAt: f.CreatedAt,
	})
}
