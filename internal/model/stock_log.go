package model

import "github.com/google/uuid"

type StockChangeType string

const (
	StockIn         StockChangeType = "in"
	StockOut        StockChangeType = "out"
	StockAdjustment StockChangeType = "adjustment"
	StockSale       StockChangeType = "sale"
)

// StockLog is the append-only audit trail of every stock change. A row is
// written in the same database transaction as the Product stock update it
// records; rows are never updated or deleted afterwards.
//
// ProductName and UserName are denormalized snapshots taken at write time so
// the history stays accurate if the product or user is later renamed or
// deactivated.
type StockLog struct {
	BaseModel
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	ChangeType  StockChangeType `gorm:"type:varchar(20);not null" json:"change_type"`
	ChangeQty   int             `gorm:"not null" json:"change_qty"` // signed delta
	PrevStock   int             `gorm:"not null" json:"prev_stock"`
	NewStock    int             `gorm:"not null" json:"new_stock"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	UserName    string          `gorm:"type:varchar(255);not null" json:"user_name"`
}
