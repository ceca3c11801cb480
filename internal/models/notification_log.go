package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationLog records one reminder attempt per candidate per trigger.
// Detalle keeps the raw dispatch outcome for diagnostics.
type NotificationLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacturaID uint      `gorm:"index"`
	Telefono  string
	Mensaje   string
	Enviado   bool
	DryRun    bool
	Detalle   datatypes.JSON
	CreatedAt time.Time
}
