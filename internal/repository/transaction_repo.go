package repository

import (
	"time"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *model.Transaction) error
	CountByProduct(productID uuid.UUID) (int64, error)
	// FindFiltered returns transactions newest first, optionally bounded by
	// a created_at window, capped at limit rows.
	FindFiltered(start, end *time.Time, limit int) ([]model.Transaction, error)
	// SummarizeBetween returns the row count and summed total_price of
	// transactions created in [start, end).
	SummarizeBetween(start, end time.Time) (count int64, revenue int64, err error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepo) CountByProduct(productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *transactionRepo) FindFiltered(start, end *time.Time, limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	q := r.db.Order("created_at DESC").Limit(limit)
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at <= ?", *end)
	}
	err := q.Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) SummarizeBetween(start, end time.Time) (int64, int64, error) {
	var count int64
	if err := r.db.Model(&model.Transaction{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var revenue int64
	if err := r.db.Model(&model.Transaction{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error; err != nil {
		return 0, 0, err
	}

	return count, revenue, nil
}
