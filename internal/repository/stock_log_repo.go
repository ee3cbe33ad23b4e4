package repository

import (
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockLogRepository interface {
	Create(log *model.StockLog) error
	// FindRecent returns logs newest first, optionally scoped to one product.
	FindRecent(productID *uuid.UUID, limit int) ([]model.StockLog, error)
}

type stockLogRepo struct {
	db *gorm.DB
}

func NewStockLogRepo(db *gorm.DB) StockLogRepository {
	return &stockLogRepo{db}
}

func (r *stockLogRepo) Create(log *model.StockLog) error {
	return r.db.Create(log).Error
}

func (r *stockLogRepo) FindRecent(productID *uuid.UUID, limit int) ([]model.StockLog, error) {
	var logs []model.StockLog
	q := r.db.Order("created_at DESC").Limit(limit)
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	err := q.Find(&logs).Error
	return logs, err
}
