package models

import "time"

type ProductRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Product struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"size:200;not null" json:"title"`
	Price       float64       `gorm:"not null" json:"price"`
	Description string        `gorm:"size:1000" json:"description"`
	Category    string        `gorm:"size:100;index" json:"category"`
	Image       string        `gorm:"size:255" json:"image"`
	Rating      ProductRating `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
