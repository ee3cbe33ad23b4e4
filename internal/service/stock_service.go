package service

import (
	"encoding/json"
	"errors"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/repository"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockService interface {
	GetLowStockProducts(s *Session) ([]model.Product, error)
	GetStockLogs(s *Session, productID *uuid.UUID, limit int) ([]model.StockLog, error)
	AddStock(s *Session, productID uuid.UUID, qty int, notes string) (*StockMutationResult, error)
	ReduceStock(s *Session, productID uuid.UUID, qty int, notes string) (*StockMutationResult, error)
	AdjustStock(s *Session, productID uuid.UUID, newStock int, notes string) (*StockMutationResult, error)
}

// StockMutationResult returns the product as committed plus the audit log
// row written alongside it.
type StockMutationResult struct {
	Product model.Product  `json:"product"`
	Log     model.StockLog `json:"log"`
}

const defaultStockLogLimit = 50

type stockService struct {
	productRepo  repository.ProductRepository
	stockLogRepo repository.StockLogRepository
	tx           repository.TxManager
	wsHub        *ws.Hub
}

func NewStockService(productRepo repository.ProductRepository, stockLogRepo repository.StockLogRepository, tx repository.TxManager, hub *ws.Hub) StockService {
	return &stockService{
		productRepo:  productRepo,
		stockLogRepo: stockLogRepo,
		tx:           tx,
		wsHub:        hub,
	}
}

// GetLowStockProducts returns active products at or below their minimum
// stock, lowest stock first. The threshold comparison is per row, so it is
// filtered here rather than in SQL; fine at this catalog size.
func (s *stockService) GetLowStockProducts(sess *Session) ([]model.Product, error) {
	if err := requireRole(sess, model.RoleOwner, model.RoleWarehouse); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindActiveOrderedByStock()
	if err != nil {
		return nil, err
	}

	lowStock := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.IsLowStock() {
			lowStock = append(lowStock, p)
		}
	}
	return lowStock, nil
}

func (s *stockService) GetStockLogs(sess *Session, productID *uuid.UUID, limit int) ([]model.StockLog, error) {
	if err := requireRole(sess, model.RoleOwner, model.RoleWarehouse); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultStockLogLimit
	}
	return s.stockLogRepo.FindRecent(productID, limit)
}

func (s *stockService) AddStock(sess *Session, productID uuid.UUID, qty int, notes string) (*StockMutationResult, error) {
	if err := requireRole(sess, model.RoleOwner, model.RoleWarehouse); err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	var result StockMutationResult
	err := s.tx.WithinTx(func(r repository.TxRepos) error {
		product, err := r.Products().FindActiveByIDForUpdate(productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		newStock := product.Stock + qty

		// Log first with the accurate prev/new pair, then update the stock.
		log := &model.StockLog{
			ProductID:   product.ID,
			ProductName: product.Name,
			ChangeType:  model.StockIn,
			ChangeQty:   qty,
			PrevStock:   product.Stock,
			NewStock:    newStock,
			Notes:       notes,
			UserID:      sess.UserID,
			UserName:    sess.Name,
		}
		if err := r.StockLogs().Create(log); err != nil {
			return err
		}
		if err := r.Products().UpdateStock(product.ID, newStock); err != nil {
			return err
		}

		product.Stock = newStock
		result = StockMutationResult{Product: *product, Log: *log}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastStockUpdate("stock_added", sess, &result)
	return &result, nil
}

func (s *stockService) ReduceStock(sess *Session, productID uuid.UUID, qty int, notes string) (*StockMutationResult, error) {
	if err := requireRole(sess, model.RoleOwner, model.RoleWarehouse); err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	var result StockMutationResult
	err := s.tx.WithinTx(func(r repository.TxRepos) error {
		product, err := r.Products().FindActiveByIDForUpdate(productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if qty > product.Stock {
			return &InsufficientStockError{
				ProductName: product.Name,
				Requested:   qty,
				Available:   product.Stock,
			}
		}

		newStock := product.Stock - qty

		log := &model.StockLog{
			ProductID:   product.ID,
			ProductName: product.Name,
			ChangeType:  model.StockOut,
			ChangeQty:   -qty,
			PrevStock:   product.Stock,
			NewStock:    newStock,
			Notes:       notes,
			UserID:      sess.UserID,
			UserName:    sess.Name,
		}
		if err := r.StockLogs().Create(log); err != nil {
			return err
		}
		if err := r.Products().UpdateStock(product.ID, newStock); err != nil {
			return err
		}

		product.Stock = newStock
		result = StockMutationResult{Product: *product, Log: *log}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastStockUpdate("stock_reduced", sess, &result)
	return &result, nil
}

// AdjustStock sets the stock to an absolute value; the logged delta may be
// positive, negative, or zero.
func (s *stockService) AdjustStock(sess *Session, productID uuid.UUID, newStock int, notes string) (*StockMutationResult, error) {
	if err := requireRole(sess, model.RoleOwner, model.RoleWarehouse); err != nil {
		return nil, err
	}
	if newStock < 0 {
		return nil, ErrNegativeStock
	}

	var result StockMutationResult
	err := s.tx.WithinTx(func(r repository.TxRepos) error {
		product, err := r.Products().FindActiveByIDForUpdate(productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		log := &model.StockLog{
			ProductID:   product.ID,
			ProductName: product.Name,
			ChangeType:  model.StockAdjustment,
			ChangeQty:   newStock - product.Stock,
			PrevStock:   product.Stock,
			NewStock:    newStock,
			Notes:       notes,
			UserID:      sess.UserID,
			UserName:    sess.Name,
		}
		if err := r.StockLogs().Create(log); err != nil {
			return err
		}
		if err := r.Products().UpdateStock(product.ID, newStock); err != nil {
			return err
		}

		product.Stock = newStock
		result = StockMutationResult{Product: *product, Log: *log}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastStockUpdate("stock_adjusted", sess, &result)
	return &result, nil
}

// broadcastStockUpdate tells connected dashboards to re-fetch product and
// stock-log views after a committed mutation.
func (s *stockService) broadcastStockUpdate(action string, sess *Session, res *StockMutationResult) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": action,
			"product": map[string]interface{}{
				"id":         res.Product.ID,
				"name":       res.Product.Name,
				"prev_stock": res.Log.PrevStock,
				"new_stock":  res.Log.NewStock,
			},
			"user": map[string]interface{}{
				"id":   sess.UserID,
				"name": sess.Name,
			},
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
