package service_test

import (
	"testing"
	"time"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTransactionService() (service.TransactionService, *TransactionRepoMock, *ProductRepoMock, *fakeTxRepos) {
	transactionRepo := new(TransactionRepoMock)
	productRepo := new(ProductRepoMock)
	txRepos := &fakeTxRepos{
		products:     new(ProductRepoMock),
		stockLogs:    new(StockLogRepoMock),
		transactions: new(TransactionRepoMock),
	}
	svc := service.NewTransactionService(transactionRepo, productRepo, &fakeTxManager{repos: txRepos}, nil)
	return svc, transactionRepo, productRepo, txRepos
}

func TestCheckout_TwoLines(t *testing.T) {
	svc, _, _, txRepos := newTransactionService()
	sess := cashierSession()

	ryzen := &model.Product{Name: "AMD Ryzen 5 5600X", Price: 2500000, Stock: 15}
	ryzen.ID = uuid.New()
	rtx := &model.Product{Name: "NVIDIA RTX 4060", Price: 5500000, Stock: 6}
	rtx.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", ryzen.ID).Return(ryzen, nil)
	txRepos.products.On("FindActiveByIDForUpdate", rtx.ID).Return(rtx, nil)
	txRepos.transactions.On("Create", mock.AnythingOfType("*model.Transaction")).Return(nil)
	txRepos.stockLogs.On("Create", mock.MatchedBy(func(log *model.StockLog) bool {
		return log.ChangeType == model.StockSale && log.ChangeQty < 0
	})).Return(nil)
	txRepos.products.On("UpdateStock", ryzen.ID, 13).Return(nil)
	txRepos.products.On("UpdateStock", rtx.ID, 5).Return(nil)

	result, err := svc.Checkout(sess, []service.CartItem{
		{ProductID: ryzen.ID, Qty: 2},
		{ProductID: rtx.ID, Qty: 1},
	})
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, int64(5000000), result.Transactions[0].TotalPrice)
	assert.Equal(t, int64(5500000), result.Transactions[1].TotalPrice)
	assert.Equal(t, int64(2500000), result.Transactions[0].UnitPrice)
	assert.Equal(t, int64(10500000), result.GrandTotal)
	assert.Equal(t, 3, result.TotalItems)
	assert.Equal(t, sess.Name, result.Transactions[0].CashierName)
	assert.WithinDuration(t, time.Now(), result.TransactionDate, time.Second)

	txRepos.products.AssertExpectations(t)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _, _, _ := newTransactionService()

	_, err := svc.Checkout(cashierSession(), nil)
	assert.ErrorIs(t, err, service.ErrEmptyCart)

	_, err = svc.Checkout(cashierSession(), []service.CartItem{})
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestCheckout_InvalidItem(t *testing.T) {
	svc, _, _, txRepos := newTransactionService()

	// Missing product id
	_, err := svc.Checkout(cashierSession(), []service.CartItem{{Qty: 1}})
	assert.ErrorIs(t, err, service.ErrInvalidCartItem)

	// Zero qty
	_, err = svc.Checkout(cashierSession(), []service.CartItem{{ProductID: uuid.New(), Qty: 0}})
	assert.ErrorIs(t, err, service.ErrInvalidCartItem)

	// Storage untouched on shape validation failures.
	txRepos.products.AssertNotCalled(t, "FindActiveByIDForUpdate", mock.Anything)
}

func TestCheckout_SecondLineInsufficient_AbortsAll(t *testing.T) {
	svc, _, _, txRepos := newTransactionService()

	first := &model.Product{Name: "Kingston DDR4 16GB 3200MHz", Price: 650000, Stock: 25}
	first.ID = uuid.New()
	second := &model.Product{Name: "Keychron K8 Pro", Price: 1800000, Stock: 4}
	second.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", first.ID).Return(first, nil)
	txRepos.products.On("FindActiveByIDForUpdate", second.ID).Return(second, nil)
	txRepos.transactions.On("Create", mock.Anything).Return(nil)
	txRepos.stockLogs.On("Create", mock.Anything).Return(nil)
	txRepos.products.On("UpdateStock", first.ID, 23).Return(nil)

	result, err := svc.Checkout(cashierSession(), []service.CartItem{
		{ProductID: first.ID, Qty: 2},
		{ProductID: second.ID, Qty: 10},
	})

	require.Error(t, err)
	assert.Nil(t, result)

	var insufficient *service.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Keychron K8 Pro", insufficient.ProductName)
	assert.Equal(t, 10, insufficient.Requested)
	assert.Equal(t, 4, insufficient.Available)

	// The second product was never written.
	txRepos.products.AssertNotCalled(t, "UpdateStock", second.ID, mock.Anything)
}

func TestCheckout_InactiveProduct_AbortsAll(t *testing.T) {
	svc, _, _, txRepos := newTransactionService()

	missing := uuid.New()
	txRepos.products.On("FindActiveByIDForUpdate", missing).Return(nil, gorm.ErrRecordNotFound)

	result, err := svc.Checkout(cashierSession(), []service.CartItem{{ProductID: missing, Qty: 1}})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestCheckout_WarehouseForbidden(t *testing.T) {
	svc, _, _, _ := newTransactionService()

	_, err := svc.Checkout(warehouseSession(), []service.CartItem{{ProductID: uuid.New(), Qty: 1}})
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCheckout_OwnerAllowed(t *testing.T) {
	svc, _, _, txRepos := newTransactionService()

	product := &model.Product{Name: "Seagate Barracuda 2TB HDD", Price: 850000, Stock: 12}
	product.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", product.ID).Return(product, nil)
	txRepos.transactions.On("Create", mock.Anything).Return(nil)
	txRepos.stockLogs.On("Create", mock.Anything).Return(nil)
	txRepos.products.On("UpdateStock", product.ID, 11).Return(nil)

	result, err := svc.Checkout(ownerSession(), []service.CartItem{{ProductID: product.ID, Qty: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(850000), result.GrandTotal)
}

func TestCheckout_SaleLogNamesCashier(t *testing.T) {
	svc, _, _, txRepos := newTransactionService()
	sess := cashierSession()

	product := &model.Product{Name: "Samsung 970 EVO Plus 1TB", Price: 1500000, Stock: 15}
	product.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", product.ID).Return(product, nil)
	txRepos.transactions.On("Create", mock.Anything).Return(nil)
	txRepos.stockLogs.On("Create", mock.MatchedBy(func(log *model.StockLog) bool {
		return log.Notes == "Penjualan oleh Staff Kasir" &&
			log.PrevStock == 15 && log.NewStock == 13
	})).Return(nil)
	txRepos.products.On("UpdateStock", product.ID, 13).Return(nil)

	_, err := svc.Checkout(sess, []service.CartItem{{ProductID: product.ID, Qty: 2}})
	require.NoError(t, err)
	txRepos.stockLogs.AssertExpectations(t)
}

func TestGetTransactions_NormalizesDateRange(t *testing.T) {
	svc, transactionRepo, _, _ := newTransactionService()

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)

	transactionRepo.On("FindFiltered",
		mock.MatchedBy(func(start *time.Time) bool {
			return start != nil && start.Hour() == 0 && start.Minute() == 0 && start.Second() == 0
		}),
		mock.MatchedBy(func(end *time.Time) bool {
			return end != nil && end.Hour() == 23 && end.Minute() == 59 && end.Second() == 59
		}),
		100,
	).Return([]model.Transaction{}, nil)

	_, err := svc.GetTransactions(ownerSession(), service.TransactionFilter{
		StartDate: &day,
		EndDate:   &day,
	})
	require.NoError(t, err)
	transactionRepo.AssertExpectations(t)
}

func TestGetTransactions_CashierForbidden(t *testing.T) {
	svc, _, _, _ := newTransactionService()

	_, err := svc.GetTransactions(cashierSession(), service.TransactionFilter{})
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestGetTodayStats(t *testing.T) {
	svc, transactionRepo, _, _ := newTransactionService()

	transactionRepo.On("SummarizeBetween",
		mock.MatchedBy(func(start time.Time) bool {
			now := time.Now()
			return start.Year() == now.Year() && start.YearDay() == now.YearDay() && start.Hour() == 0
		}),
		mock.MatchedBy(func(end time.Time) bool {
			return end.Sub(time.Now()) > 0
		}),
	).Return(int64(4), int64(12300000), nil)

	stats, err := svc.GetTodayStats(ownerSession())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TodayCount)
	assert.Equal(t, int64(12300000), stats.TodayRevenue)
}

func TestValidateProductStock(t *testing.T) {
	svc, _, productRepo, _ := newTransactionService()

	product := &model.Product{Name: "Intel Core i5-12400F", Price: 2300000, Stock: 12}
	product.ID = uuid.New()

	productRepo.On("FindActiveByID", product.ID).Return(product, nil)

	got, err := svc.ValidateProductStock(cashierSession(), product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)

	_, err = svc.ValidateProductStock(cashierSession(), product.ID, 13)
	var insufficient *service.InsufficientStockError
	assert.ErrorAs(t, err, &insufficient)
}
