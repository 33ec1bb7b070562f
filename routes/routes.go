package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felipebarrososa/DeveloperStore/config"
	"github.com/felipebarrososa/DeveloperStore/controllers"
	"github.com/felipebarrososa/DeveloperStore/middlewares"
	"github.com/felipebarrososa/DeveloperStore/service"
)

type Deps struct {
	DB        *gorm.DB
	Cfg       config.Config
	Sales     *service.SalesService
	ReadModel *service.SalesReadModel
}

func Setup(r *gin.Engine, d Deps) {
	auth := controllers.NewAuthController(d.DB, d.Cfg)
	products := controllers.NewProductController(d.DB)
	users := controllers.NewUserController(d.DB)
	carts := controllers.NewCartController(d.DB)
	sales := controllers.NewSaleController(d.Sales, d.ReadModel)

	secret := []byte(d.Cfg.JWTSecret)
	authn := middlewares.AuthRequired(secret)
	staff := middlewares.RequireRoles("Admin", "Manager")
	admin := middlewares.RequireRoles("Admin")

	r.POST("/auth/login", auth.Login)

	pg := r.Group("/products")
	{
		pg.GET("", products.List)
		pg.GET("/categories", products.Categories)
		pg.GET("/category/:category", products.ByCategory)
		pg.GET("/:id", products.GetByID)
		pg.POST("", authn, staff, products.Create)
		pg.PUT("/:id", authn, staff, products.Update)
		pg.DELETE("/:id", authn, staff, products.Delete)
	}

	ug := r.Group("/users")
	{
		ug.GET("", users.List)
		ug.GET("/:id", users.GetByID)
		ug.POST("", authn, staff, users.Create)
		ug.PUT("/:id", authn, staff, users.Update)
		ug.DELETE("/:id", authn, admin, users.Delete)
	}

	cg := r.Group("/carts")
	{
		cg.GET("", carts.List)
		cg.GET("/:id", carts.GetByID)
		cg.POST("", authn, carts.Create)
		cg.PUT("/:id", authn, carts.Update)
		cg.DELETE("/:id", authn, staff, carts.Delete)
	}

	sg := r.Group("/sales")
	{
		sg.GET("", sales.List)
		sg.GET("/summary", sales.Summary)
		sg.GET("/:id", sales.GetByID)
		sg.POST("", authn, sales.Create)
		sg.PUT("/:id", authn, sales.Update)
		sg.POST("/:id/cancel", authn, sales.Cancel)
		sg.POST("/:id/items/:itemId/cancel", authn, sales.CancelItem)
	}
}
