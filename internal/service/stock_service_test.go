package service_test

import (
	"testing"

	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStockService() (service.StockService, *ProductRepoMock, *StockLogRepoMock, *fakeTxRepos) {
	productRepo := new(ProductRepoMock)
	stockLogRepo := new(StockLogRepoMock)
	txRepos := &fakeTxRepos{
		products:     new(ProductRepoMock),
		stockLogs:    new(StockLogRepoMock),
		transactions: new(TransactionRepoMock),
	}
	svc := service.NewStockService(productRepo, stockLogRepo, &fakeTxManager{repos: txRepos}, nil)
	return svc, productRepo, stockLogRepo, txRepos
}

func TestAddStock_Success(t *testing.T) {
	svc, _, _, txRepos := newStockService()
	sess := warehouseSession()

	product := &model.Product{Name: "AMD Ryzen 5 5600X", Stock: 15}
	product.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", product.ID).Return(product, nil)
	txRepos.stockLogs.On("Create", mock.MatchedBy(func(log *model.StockLog) bool {
		return log.ChangeType == model.StockIn &&
			log.ChangeQty == 5 &&
			log.PrevStock == 15 &&
			log.NewStock == 20 &&
			log.ProductName == "AMD Ryzen 5 5600X" &&
			log.UserID == sess.UserID &&
			log.UserName == sess.Name
	})).Return(nil)
	txRepos.products.On("UpdateStock", product.ID, 20).Return(nil)

	result, err := svc.AddStock(sess, product.ID, 5, "restock")
	require.NoError(t, err)
	assert.Equal(t, 20, result.Product.Stock)
	assert.Equal(t, 15, result.Log.PrevStock)
	assert.Equal(t, 20, result.Log.NewStock)
	txRepos.products.AssertExpectations(t)
	txRepos.stockLogs.AssertExpectations(t)
}

func TestAddStock_InvalidQuantity(t *testing.T) {
	svc, _, _, _ := newStockService()

	_, err := svc.AddStock(warehouseSession(), uuid.New(), 0, "")
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)

	_, err = svc.AddStock(warehouseSession(), uuid.New(), -3, "")
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)
}

func TestAddStock_ProductNotFound(t *testing.T) {
	svc, _, _, txRepos := newStockService()
	id := uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddStock(warehouseSession(), id, 5, "")
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestAddStock_CashierForbidden(t *testing.T) {
	svc, _, _, _ := newStockService()

	_, err := svc.AddStock(cashierSession(), uuid.New(), 5, "")
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestAddStock_Unauthenticated(t *testing.T) {
	svc, _, _, _ := newStockService()

	_, err := svc.AddStock(nil, uuid.New(), 5, "")
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestReduceStock_Success(t *testing.T) {
	svc, _, _, txRepos := newStockService()
	sess := warehouseSession()

	product := &model.Product{Name: "NVIDIA RTX 4060", Stock: 6}
	product.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", product.ID).Return(product, nil)
	txRepos.stockLogs.On("Create", mock.MatchedBy(func(log *model.StockLog) bool {
		return log.ChangeType == model.StockOut &&
			log.ChangeQty == -4 &&
			log.PrevStock == 6 &&
			log.NewStock == 2
	})).Return(nil)
	txRepos.products.On("UpdateStock", product.ID, 2).Return(nil)

	result, err := svc.ReduceStock(sess, product.ID, 4, "damaged units")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Product.Stock)
}

func TestReduceStock_InsufficientStock(t *testing.T) {
	svc, _, _, txRepos := newStockService()

	product := &model.Product{Name: "Keychron K8 Pro", Stock: 4}
	product.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", product.ID).Return(product, nil)

	_, err := svc.ReduceStock(warehouseSession(), product.ID, 5, "")
	require.Error(t, err)

	var insufficient *service.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Keychron K8 Pro", insufficient.ProductName)
	assert.Equal(t, 5, insufficient.Requested)
	assert.Equal(t, 4, insufficient.Available)

	// Nothing written when the check fails.
	txRepos.stockLogs.AssertNotCalled(t, "Create", mock.Anything)
	txRepos.products.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything)
}

func TestReduceStock_ExactStockAllowed(t *testing.T) {
	svc, _, _, txRepos := newStockService()

	product := &model.Product{Name: "Razer DeathAdder V3", Stock: 7}
	product.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", product.ID).Return(product, nil)
	txRepos.stockLogs.On("Create", mock.Anything).Return(nil)
	txRepos.products.On("UpdateStock", product.ID, 0).Return(nil)

	result, err := svc.ReduceStock(warehouseSession(), product.ID, 7, "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Product.Stock)
}

func TestAdjustStock_SetsAbsoluteValue(t *testing.T) {
	svc, _, _, txRepos := newStockService()

	product := &model.Product{Name: "WD Blue SN580 1TB", Stock: 20}
	product.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", product.ID).Return(product, nil)
	txRepos.stockLogs.On("Create", mock.MatchedBy(func(log *model.StockLog) bool {
		return log.ChangeType == model.StockAdjustment &&
			log.ChangeQty == -8 &&
			log.PrevStock == 20 &&
			log.NewStock == 12
	})).Return(nil)
	txRepos.products.On("UpdateStock", product.ID, 12).Return(nil)

	result, err := svc.AdjustStock(warehouseSession(), product.ID, 12, "stock opname")
	require.NoError(t, err)
	assert.Equal(t, 12, result.Product.Stock)
}

func TestAdjustStock_SameValueIsZeroDelta(t *testing.T) {
	svc, _, _, txRepos := newStockService()

	product := &model.Product{Name: "Corsair DDR4 32GB 3600MHz", Stock: 10}
	product.ID = uuid.New()

	txRepos.products.On("FindActiveByIDForUpdate", product.ID).Return(product, nil)
	txRepos.stockLogs.On("Create", mock.MatchedBy(func(log *model.StockLog) bool {
		return log.ChangeQty == 0 && log.PrevStock == 10 && log.NewStock == 10
	})).Return(nil)
	txRepos.products.On("UpdateStock", product.ID, 10).Return(nil)

	result, err := svc.AdjustStock(warehouseSession(), product.ID, 10, "")
	require.NoError(t, err)
	assert.Equal(t, 10, result.Product.Stock)
}

func TestAdjustStock_NegativeRejected(t *testing.T) {
	svc, _, _, _ := newStockService()

	_, err := svc.AdjustStock(warehouseSession(), uuid.New(), -1, "")
	assert.ErrorIs(t, err, service.ErrNegativeStock)
}

func TestGetLowStockProducts_FiltersByMinStock(t *testing.T) {
	svc, productRepo, _, _ := newStockService()

	empty := model.Product{Name: "Logitech G502 Hero", Stock: 0, MinStock: 5}
	healthy := model.Product{Name: "Razer DeathAdder V3", Stock: 7, MinStock: 5}
	atThreshold := model.Product{Name: "G.Skill DDR5 32GB 6000MHz", Stock: 5, MinStock: 5}

	productRepo.On("FindActiveOrderedByStock").Return([]model.Product{empty, atThreshold, healthy}, nil)

	products, err := svc.GetLowStockProducts(ownerSession())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Logitech G502 Hero", products[0].Name)
	assert.Equal(t, "G.Skill DDR5 32GB 6000MHz", products[1].Name)
}

func TestGetStockLogs_DefaultLimit(t *testing.T) {
	svc, _, stockLogRepo, _ := newStockService()

	stockLogRepo.On("FindRecent", (*uuid.UUID)(nil), 50).Return([]model.StockLog{}, nil)

	_, err := svc.GetStockLogs(warehouseSession(), nil, 0)
	require.NoError(t, err)
	stockLogRepo.AssertExpectations(t)
}

func TestGetStockLogs_CashierForbidden(t *testing.T) {
	svc, _, _, _ := newStockService()

	_, err := svc.GetStockLogs(cashierSession(), nil, 10)
	assert.ErrorIs(t, err, service.ErrForbidden)
}
