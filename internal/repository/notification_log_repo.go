package repository

import (
	"cobros-backend/internal/models"

	"gorm.io/gorm"
)

type NotificationLogRepository struct {
	db *gorm.DB
}

func NewNotificationLogRepository(db *gorm.DB) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

func (r *NotificationLogRepository) Create(log *models.NotificationLog) error {
	return r.db.Create(log).Error
}
