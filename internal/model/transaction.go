package model

import "github.com/google/uuid"

// Transaction records one sold cart line. UnitPrice is a snapshot of
// Product.Price at sale time, not a live reference; ProductName and
// CashierName are likewise snapshots. Immutable once created.
type Transaction struct {
	BaseModel
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Qty         int       `gorm:"not null" json:"qty"`
	UnitPrice   int64     `gorm:"not null" json:"unit_price"`
	TotalPrice  int64     `gorm:"not null" json:"total_price"` // qty * unit_price
	CashierID   uuid.UUID `gorm:"type:uuid;not null" json:"cashier_id"`
	CashierName string    `gorm:"type:varchar(255);not null" json:"cashier_name"`
}
