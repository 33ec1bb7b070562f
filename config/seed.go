package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/felipebarrososa/DeveloperStore/models"
	"github.com/felipebarrososa/DeveloperStore/utils"
)

// Seed creates a default admin account and a small demo catalog on first
// boot. It is idempotent: existing rows are left alone.
func Seed(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := utils.HashPassword("Pass@123")
		if err != nil {
			log.Printf("seed: hash admin password: %v", err)
			return
		}
		admin := models.User{
			Email:        "admin@devstore.com",
			Username:     "admin",
			PasswordHash: hash,
			Name:         models.Name{Firstname: "System", Lastname: "Admin"},
			Address: models.Address{
				City:    "SP",
				Street:  "Central",
				Number:  "100",
				Zipcode: "00000-000",
			},
			Status: models.StatusActive,
			Role:   models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("seed: create admin: %v", err)
		}
	}

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount == 0 {
		products := []models.Product{
			{Title: "Wireless Headphones", Price: 129.90, Description: "Over-ear, 30h battery", Category: "electronics", Rating: models.ProductRating{Rate: 4.4, Count: 212}},
			{Title: "Mechanical Keyboard", Price: 89.00, Description: "Tenkeyless, brown switches", Category: "electronics", Rating: models.ProductRating{Rate: 4.6, Count: 98}},
			{Title: "Gold Plated Ring", Price: 49.50, Description: "18k gold plated", Category: "jewelery", Rating: models.ProductRating{Rate: 3.9, Count: 41}},
			{Title: "Cotton T-Shirt", Price: 19.99, Description: "Slim fit", Category: "men's clothing", Rating: models.ProductRating{Rate: 4.1, Count: 305}},
			{Title: "Rain Jacket", Price: 59.90, Description: "Windbreaker, waterproof", Category: "women's clothing", Rating: models.ProductRating{Rate: 4.3, Count: 77}},
		}
		if err := db.Create(&products).Error; err != nil {
			log.Printf("seed: create products: %v", err)
		}
	}
}
