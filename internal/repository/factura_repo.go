package repository

import (
	"errors"
	"strings"

	"cobros-backend/internal/models"

	"gorm.io/gorm"
)

type FacturaRepository struct {
	db *gorm.DB
}

func NewFacturaRepository(db *gorm.DB) *FacturaRepository {
	return &FacturaRepository{db: db}
}

// List returns every factura ordered by due date then id. q filters by
// cliente, case-insensitively.
func (r *FacturaRepository) List(q string) ([]models.Factura, error) {
	var facturas []models.Factura
	query := r.db.Order("vence ASC, id ASC")
	if q != "" {
		query = query.Where("LOWER(cliente) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	err := query.Find(&facturas).Error
	return facturas, err
}

func (r *FacturaRepository) GetByID(id uint) (*models.Factura, error) {
	var factura models.Factura
	err := r.db.First(&factura, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNoExiste
	}
	if err != nil {
		return nil, err
	}
	return &factura, nil
}

func (r *FacturaRepository) Create(f *models.Factura) error {
	return r.db.Create(f).Error
}

// Update applies only the supplied columns and returns the fresh record.
func (r *FacturaRepository) Update(id uint, fields map[string]any) (*models.Factura, error) {
	factura, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(factura).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *FacturaRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Factura{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNoExiste
	}
	return nil
}

// BulkInsert writes a whole upload batch plus its audit row in one
// transaction, so a mid-batch failure leaves nothing behind.
func (r *FacturaRepository) BulkInsert(facturas []models.Factura, batch *models.ImportBatch) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range facturas {
			if err := tx.Create(&facturas[i]).Error; err != nil {
				return err
			}
		}
		return tx.Create(batch).Error
	})
}
