package models

import (
	"time"

	"github.com/google/uuid"
)

// ImportBatch is the audit row written for every accepted upload.
type ImportBatch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Filename  string    `json:"filename"`
	TotalRows int       `json:"total_rows"`
	Inserted  int       `json:"inserted"`
	CreatedAt time.Time `json:"created_at"`
}
