package repository

import (
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAllActive() ([]model.Product, error)
	FindActiveByID(id uuid.UUID) (*model.Product, error)
	// FindActiveByIDForUpdate locks the product row until the surrounding
	// transaction commits. Only meaningful inside a TxManager block.
	FindActiveByIDForUpdate(id uuid.UUID) (*model.Product, error)
	FindActiveOrderedByStock() ([]model.Product, error)
	Update(product *model.Product) error
	UpdateStock(id uuid.UUID, newStock int) error
	Deactivate(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAllActive() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindActiveByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindActiveByIDForUpdate(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindActiveOrderedByStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("is_active = ?", true).Order("stock ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) UpdateStock(id uuid.UUID, newStock int) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", newStock).Error
}

func (r *productRepo) Deactivate(id uuid.UUID) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
