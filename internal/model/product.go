package model

type Product struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category string `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Brand    string `gorm:"type:varchar(100);not null" json:"brand" validate:"required"`
	Price    int64  `gorm:"not null;default:0" json:"price" validate:"min=0"`
	Stock    int    `gorm:"not null;default:0" json:"stock" validate:"min=0"`
	MinStock int    `gorm:"not null;default:0" json:"min_stock" validate:"min=0"`
	Location string `gorm:"type:varchar(20);not null" json:"location" validate:"required"`
	ImageURL string `gorm:"type:text" json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// IsLowStock reports whether the product is at or below its restock threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
