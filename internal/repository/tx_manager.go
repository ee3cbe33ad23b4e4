package repository

import "gorm.io/gorm"

// TxRepos is the set of repositories bound to one database transaction.
type TxRepos interface {
	Products() ProductRepository
	StockLogs() StockLogRepository
	Transactions() TransactionRepository
}

// TxManager hides transaction begin/commit/rollback from the service layer.
// Any error returned from fn rolls the whole transaction back, so a stock
// update and the StockLog/Transaction rows describing it either all commit
// or none do.
type TxManager interface {
	WithinTx(fn func(r TxRepos) error) error
}

type txRepos struct {
	products     ProductRepository
	stockLogs    StockLogRepository
	transactions TransactionRepository
}

func (r *txRepos) Products() ProductRepository         { return r.products }
func (r *txRepos) StockLogs() StockLogRepository       { return r.stockLogs }
func (r *txRepos) Transactions() TransactionRepository { return r.transactions }

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db}
}

func (tm *txManager) WithinTx(fn func(r TxRepos) error) error {
	return tm.db.Transaction(func(tx *gorm.DB) error {
		// Repos are rebuilt on the transaction handle so every statement
		// inside fn runs in the same transaction.
		return fn(&txRepos{
			products:     NewProductRepo(tx),
			stockLogs:    NewStockLogRepo(tx),
			transactions: NewTransactionRepo(tx),
		})
	})
}
