package controllers

import (
	"cmp"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felipebarrososa/DeveloperStore/models"
	"github.com/felipebarrososa/DeveloperStore/service"
	"github.com/felipebarrososa/DeveloperStore/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

type ProductInput struct {
	Title       string               `json:"title" binding:"required"`
	Price       float64              `json:"price" binding:"required,gt=0"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Image       string               `json:"image"`
	Rating      models.ProductRating `json:"rating"`
}

var productSortFields = map[string]func(a, b models.Product) int{
	"id":       func(a, b models.Product) int { return cmp.Compare(a.ID, b.ID) },
	"title":    func(a, b models.Product) int { return strings.Compare(a.Title, b.Title) },
	"price":    func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) },
	"category": func(a, b models.Product) int { return strings.Compare(a.Category, b.Category) },
	"rate":     func(a, b models.Product) int { return cmp.Compare(a.Rating.Rate, b.Rating.Rate) },
	"count":    func(a, b models.Product) int { return cmp.Compare(a.Rating.Count, b.Rating.Count) },
}

func (p *ProductController) List(c *gin.Context) {
	page, size := pageParams(c)

	q := p.DB.WithContext(c.Request.Context()).Model(&models.Product{})
	q = service.WhereWildcard(q, "title", c.Query("title"))
	q = service.WhereWildcard(q, "category", c.Query("category"))
	if v := queryFloat(c, "_minPrice"); v != nil {
		q = q.Where("price >= ?", *v)
	}
	if v := queryFloat(c, "_maxPrice"); v != nil {
		q = q.Where("price <= ?", *v)
	}
	if v := queryFloat(c, "_minRate"); v != nil {
		q = q.Where("rating_rate >= ?", *v)
	}
	if v := queryFloat(c, "_maxRate"); v != nil {
		q = q.Where("rating_rate <= ?", *v)
	}

	var products []models.Product
	if err := q.Order("id").Find(&products).Error; err != nil {
		respondError(c, err)
		return
	}

	products = service.ApplyOrder(products, productSortFields, c.Query("_order"))
	utils.Success(c, http.StatusOK, service.Paginate(products, page, size))
}

func (p *ProductController) GetByID(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var product models.Product
	if err := p.DB.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "Product not found", fmt.Sprintf("id=%d", id))
		return
	}
	utils.Success(c, http.StatusOK, product)
}

func (p *ProductController) Create(c *gin.Context) {
	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid product payload", err.Error())
		return
	}

	product := models.Product{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Rating:      in.Rating,
	}
	if err := p.DB.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, product)
}

func (p *ProductController) Update(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}

	var product models.Product
	if err := p.DB.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "Product not found", fmt.Sprintf("id=%d", id))
		return
	}

	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid product payload", err.Error())
		return
	}

	product.Title = in.Title
	product.Price = in.Price
	product.Description = in.Description
	product.Category = in.Category
	product.Image = in.Image
	product.Rating = in.Rating
	if err := p.DB.WithContext(c.Request.Context()).Save(&product).Error; err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (p *ProductController) Delete(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var product models.Product
	if err := p.DB.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "Product not found", fmt.Sprintf("id=%d", id))
		return
	}
	if err := p.DB.WithContext(c.Request.Context()).Delete(&product).Error; err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (p *ProductController) Categories(c *gin.Context) {
	var categories []string
	if err := p.DB.WithContext(c.Request.Context()).
		Model(&models.Product{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, categories)
}

func (p *ProductController) ByCategory(c *gin.Context) {
	page, size := pageParams(c)
	category := c.Param("category")

	var products []models.Product
	if err := p.DB.WithContext(c.Request.Context()).
		Where("LOWER(category) = ?", strings.ToLower(category)).
		Order("id").
		Find(&products).Error; err != nil {
		respondError(c, err)
		return
	}

	products = service.ApplyOrder(products, productSortFields, c.Query("_order"))
	utils.Success(c, http.StatusOK, service.Paginate(products, page, size))
}
