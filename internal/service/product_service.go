package service

import (
	"errors"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/repository"
	"github.com/artsemyn/toko-agung-computer-inventory-management/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	GetProducts(s *Session) ([]model.Product, error)
	GetProductByID(s *Session, id uuid.UUID) (*model.Product, error)
	CreateProduct(s *Session, req *ProductRequest) (*model.Product, error)
	UpdateProduct(s *Session, id uuid.UUID, req *ProductRequest) (*model.Product, error)
	DeleteProduct(s *Session, id uuid.UUID) error
}

type ProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Brand    string `json:"brand" validate:"required"`
	Price    int64  `json:"price" validate:"min=0"`
	Stock    int    `json:"stock" validate:"min=0"`
	MinStock int    `json:"min_stock" validate:"min=0"`
	Location string `json:"location" validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type productService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
}

func NewProductService(productRepo repository.ProductRepository, transactionRepo repository.TransactionRepository) ProductService {
	return &productService{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *productService) GetProducts(sess *Session) ([]model.Product, error) {
	if err := requireAuthenticated(sess); err != nil {
		return nil, err
	}
	return s.productRepo.FindAllActive()
}

func (s *productService) GetProductByID(sess *Session, id uuid.UUID) (*model.Product, error) {
	if err := requireAuthenticated(sess); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(sess *Session, req *ProductRequest) (*model.Product, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:     req.Name,
		Category: req.Category,
		Brand:    req.Brand,
		Price:    req.Price,
		Stock:    req.Stock,
		MinStock: req.MinStock,
		Location: req.Location,
		ImageURL: req.ImageURL,
		IsActive: true,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(sess *Session, id uuid.UUID, req *ProductRequest) (*model.Product, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Brand = req.Brand
	product.Price = req.Price
	product.Stock = req.Stock
	product.MinStock = req.MinStock
	product.Location = req.Location
	product.ImageURL = req.ImageURL

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes. Products referenced by any Transaction are
// protected so the sale history keeps pointing at a real record.
func (s *productService) DeleteProduct(sess *Session, id uuid.UUID) error {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return err
	}

	if _, err := s.productRepo.FindActiveByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	count, err := s.transactionRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasTransactions
	}

	return s.productRepo.Deactivate(id)
}
