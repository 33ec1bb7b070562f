package models

import "time"

// Sale is the order aggregate. Total is always derived from the non-cancelled
// items and is never set directly by callers.
type Sale struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Number       string     `gorm:"uniqueIndex;size:64;not null" json:"number"`
	Date         time.Time  `gorm:"not null" json:"date"`
	CustomerID   uint       `gorm:"not null" json:"customer_id"`
	CustomerName string     `gorm:"size:180;not null" json:"customer_name"`
	BranchID     uint       `gorm:"not null" json:"branch_id"`
	BranchName   string     `gorm:"size:180;not null" json:"branch_name"`
	Total        float64    `gorm:"not null" json:"total"`
	Cancelled    bool       `gorm:"not null;default:false" json:"cancelled"`
	Items        []SaleItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SaleItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	SaleID          uint    `gorm:"index;not null" json:"sale_id"`
	ProductID       uint    `gorm:"not null" json:"product_id"`
	ProductName     string  `gorm:"size:200;not null" json:"product_name"`
	Quantity        int     `gorm:"not null" json:"quantity"`
	UnitPrice       float64 `gorm:"not null" json:"unit_price"`
	DiscountPercent float64 `gorm:"not null" json:"discount_percent"`
	LineTotal       float64 `gorm:"not null" json:"line_total"`
	Cancelled       bool    `gorm:"not null;default:false" json:"cancelled"`
}
