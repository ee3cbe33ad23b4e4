package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/repository"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/ws"
	"github.com/artsemyn/toko-agung-computer-inventory-management/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionService interface {
	Checkout(s *Session, items []CartItem) (*CheckoutResult, error)
	GetTransactions(s *Session, filter TransactionFilter) ([]model.Transaction, error)
	GetTodayStats(s *Session) (*TodayStats, error)
	ValidateProductStock(s *Session, productID uuid.UUID, qty int) (*model.Product, error)
}

// CartItem is one requested sale line. The qty here is only a request; the
// authoritative stock check happens against a fresh read inside Checkout's
// transaction.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Qty       int       `json:"qty" validate:"required,min=1"`
}

type CheckoutResult struct {
	Transactions    []model.Transaction `json:"transactions"`
	GrandTotal      int64               `json:"grand_total"`
	TotalItems      int                 `json:"total_items"`
	TransactionDate time.Time           `json:"transaction_date"`
}

type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

type TodayStats struct {
	TodayCount   int64 `json:"today_count"`
	TodayRevenue int64 `json:"today_revenue"`
}

const defaultTransactionLimit = 100

type transactionService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	tx              repository.TxManager
	wsHub           *ws.Hub
}

func NewTransactionService(transactionRepo repository.TransactionRepository, productRepo repository.ProductRepository, tx repository.TxManager, hub *ws.Hub) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		tx:              tx,
		wsHub:           hub,
	}
}

// Checkout processes the cart lines in order inside one database
// transaction. Any invalid line aborts the whole call: no stock decrement,
// Transaction row, or StockLog row from earlier lines survives.
func (s *transactionService) Checkout(sess *Session, items []CartItem) (*CheckoutResult, error) {
	if err := requireRole(sess, model.RoleOwner, model.RoleCashier); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range items {
		if errs := validator.ValidateStruct(&item); len(errs) > 0 {
			return nil, ErrInvalidCartItem
		}
	}

	var created []model.Transaction
	err := s.tx.WithinTx(func(r repository.TxRepos) error {
		created = created[:0]
		for _, item := range items {
			product, err := r.Products().FindActiveByIDForUpdate(item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("produk dengan id %s: %w", item.ProductID, ErrProductNotFound)
				}
				return err
			}

			if item.Qty > product.Stock {
				return &InsufficientStockError{
					ProductName: product.Name,
					Requested:   item.Qty,
					Available:   product.Stock,
				}
			}

			trx := &model.Transaction{
				ProductID:   product.ID,
				ProductName: product.Name,
				Qty:         item.Qty,
				UnitPrice:   product.Price,
				TotalPrice:  product.Price * int64(item.Qty),
				CashierID:   sess.UserID,
				CashierName: sess.Name,
			}
			if err := r.Transactions().Create(trx); err != nil {
				return err
			}

			newStock := product.Stock - item.Qty
			log := &model.StockLog{
				ProductID:   product.ID,
				ProductName: product.Name,
				ChangeType:  model.StockSale,
				ChangeQty:   -item.Qty,
				PrevStock:   product.Stock,
				NewStock:    newStock,
				Notes:       fmt.Sprintf("Penjualan oleh %s", sess.Name),
				UserID:      sess.UserID,
				UserName:    sess.Name,
			}
			if err := r.StockLogs().Create(log); err != nil {
				return err
			}
			if err := r.Products().UpdateStock(product.ID, newStock); err != nil {
				return err
			}

			created = append(created, *trx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{
		Transactions:    created,
		TransactionDate: time.Now(),
	}
	for _, t := range created {
		result.GrandTotal += t.TotalPrice
		result.TotalItems += t.Qty
	}

	s.broadcastCheckout(sess, result)
	return result, nil
}

// GetTransactions returns the sale history, newest first. The date range is
// inclusive: the start day from 00:00:00, the end day through 23:59:59.
func (s *transactionService) GetTransactions(sess *Session, filter TransactionFilter) ([]model.Transaction, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	var start, end *time.Time
	if filter.StartDate != nil {
		t := startOfDay(*filter.StartDate)
		start = &t
	}
	if filter.EndDate != nil {
		t := endOfDay(*filter.EndDate)
		end = &t
	}

	return s.transactionRepo.FindFiltered(start, end, limit)
}

func (s *transactionService) GetTodayStats(sess *Session) (*TodayStats, error) {
	if err := requireRole(sess, model.RoleOwner); err != nil {
		return nil, err
	}

	today := startOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	count, revenue, err := s.transactionRepo.SummarizeBetween(today, tomorrow)
	if err != nil {
		return nil, err
	}
	return &TodayStats{TodayCount: count, TodayRevenue: revenue}, nil
}

// ValidateProductStock is the cart UI pre-check. It is advisory only:
// Checkout re-reads the live stock inside its own transaction, so a pass
// here never guarantees the later sale.
func (s *transactionService) ValidateProductStock(sess *Session, productID uuid.UUID, qty int) (*model.Product, error) {
	if err := requireRole(sess, model.RoleOwner, model.RoleCashier); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindActiveByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if qty > product.Stock {
		return nil, &InsufficientStockError{
			ProductName: product.Name,
			Requested:   qty,
			Available:   product.Stock,
		}
	}
	return product, nil
}

func (s *transactionService) broadcastCheckout(sess *Session, result *CheckoutResult) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":        "stock_update",
			"action":      "checkout",
			"total_items": result.TotalItems,
			"grand_total": result.GrandTotal,
			"user": map[string]interface{}{
				"id":   sess.UserID,
				"name": sess.Name,
			},
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
