package service_test

import (
	"time"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/repository"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepoMock) FindAllActive() ([]model.Product, error) {
	args := m.Called()
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindActiveByID(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *ProductRepoMock) FindActiveByIDForUpdate(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *ProductRepoMock) FindActiveOrderedByStock() ([]model.Product, error) {
	args := m.Called()
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) Update(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepoMock) UpdateStock(id uuid.UUID, newStock int) error {
	args := m.Called(id, newStock)
	return args.Error(0)
}

func (m *ProductRepoMock) Deactivate(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type StockLogRepoMock struct{ mock.Mock }

func (m *StockLogRepoMock) Create(log *model.StockLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *StockLogRepoMock) FindRecent(productID *uuid.UUID, limit int) ([]model.StockLog, error) {
	args := m.Called(productID, limit)
	logs, _ := args.Get(0).([]model.StockLog)
	return logs, args.Error(1)
}

type TransactionRepoMock struct{ mock.Mock }

func (m *TransactionRepoMock) Create(tx *model.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *TransactionRepoMock) CountByProduct(productID uuid.UUID) (int64, error) {
	args := m.Called(productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TransactionRepoMock) FindFiltered(start, end *time.Time, limit int) ([]model.Transaction, error) {
	args := m.Called(start, end, limit)
	transactions, _ := args.Get(0).([]model.Transaction)
	return transactions, args.Error(1)
}

func (m *TransactionRepoMock) SummarizeBetween(start, end time.Time) (int64, int64, error) {
	args := m.Called(start, end)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) FindByID(id uuid.UUID) (*model.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) FindAll() ([]model.User, error) {
	args := m.Called()
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepoMock) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepoMock) SetActive(id uuid.UUID, active bool) error {
	args := m.Called(id, active)
	return args.Error(0)
}

// =====================
// Fake transaction manager
// =====================

// fakeTxRepos hands the mocks to the function under test; rollback itself is
// the database's job, so the tests assert only that errors propagate and no
// result is returned.
type fakeTxRepos struct {
	products     *ProductRepoMock
	stockLogs    *StockLogRepoMock
	transactions *TransactionRepoMock
}

func (f *fakeTxRepos) Products() repository.ProductRepository         { return f.products }
func (f *fakeTxRepos) StockLogs() repository.StockLogRepository       { return f.stockLogs }
func (f *fakeTxRepos) Transactions() repository.TransactionRepository { return f.transactions }

type fakeTxManager struct {
	repos *fakeTxRepos
}

func (f *fakeTxManager) WithinTx(fn func(r repository.TxRepos) error) error {
	return fn(f.repos)
}

// =====================
// Session helpers
// =====================

func ownerSession() *service.Session {
	return &service.Session{UserID: uuid.New(), Name: "Admin Owner", Email: "owner@techstore.com", Role: model.RoleOwner}
}

func warehouseSession() *service.Session {
	return &service.Session{UserID: uuid.New(), Name: "Staff Gudang", Email: "gudang@techstore.com", Role: model.RoleWarehouse}
}

func cashierSession() *service.Session {
	return &service.Session{UserID: uuid.New(), Name: "Staff Kasir", Email: "kasir@techstore.com", Role: model.RoleCashier}
}
