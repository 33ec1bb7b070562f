package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/felipebarrososa/DeveloperStore/config"
	"github.com/felipebarrososa/DeveloperStore/models"
	"github.com/felipebarrososa/DeveloperStore/routes"
	"github.com/felipebarrososa/DeveloperStore/service"
)

func main() {
	cfg := config.Load()

	db := config.ConnectDB(cfg)
	if err := db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Cart{},
		&models.CartItem{},
		&models.Sale{},
		&models.SaleItem{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	config.Seed(db)

	mongoDB, err := config.ConnectMongo(cfg)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	readModel := service.NewSalesReadModel(mongoDB)
	salesService := service.NewSalesService(db, readModel)

	r := gin.Default()
	routes.Setup(r, routes.Deps{
		DB:        db,
		Cfg:       cfg,
		Sales:     salesService,
		ReadModel: readModel,
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
