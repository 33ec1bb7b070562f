package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felipebarrososa/DeveloperStore/models"
	"github.com/felipebarrososa/DeveloperStore/service"
	"github.com/felipebarrososa/DeveloperStore/utils"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

type CartProductInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type CartInput struct {
	UserID   uint               `json:"user_id" binding:"required"`
	Date     time.Time          `json:"date" binding:"required"`
	Products []CartProductInput `json:"products" binding:"required,min=1,dive"`
}

func (ct *CartController) List(c *gin.Context) {
	page, size := pageParams(c)

	var carts []models.Cart
	if err := ct.DB.WithContext(c.Request.Context()).
		Preload("Items").
		Order("id").
		Find(&carts).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, service.Paginate(carts, page, size))
}

func (ct *CartController) GetByID(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var cart models.Cart
	if err := ct.DB.WithContext(c.Request.Context()).Preload("Items").First(&cart, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "Cart not found", fmt.Sprintf("id=%d", id))
		return
	}
	utils.Success(c, http.StatusOK, cart)
}

// validateCartRefs checks the referenced user and products exist before a
// cart is written.
func (ct *CartController) validateCartRefs(c *gin.Context, in CartInput) bool {
	var userCount int64
	if err := ct.DB.WithContext(c.Request.Context()).Model(&models.User{}).
		Where("id = ?", in.UserID).Count(&userCount).Error; err != nil {
		respondError(c, err)
		return false
	}
	if userCount == 0 {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "Invalid userId", fmt.Sprintf("userId=%d", in.UserID))
		return false
	}

	ids := make([]uint, 0, len(in.Products))
	seen := make(map[uint]bool, len(in.Products))
	for _, p := range in.Products {
		if !seen[p.ProductID] {
			seen[p.ProductID] = true
			ids = append(ids, p.ProductID)
		}
	}
	var found []uint
	if err := ct.DB.WithContext(c.Request.Context()).Model(&models.Product{}).
		Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		respondError(c, err)
		return false
	}
	if len(found) != len(ids) {
		have := make(map[uint]bool, len(found))
		for _, id := range found {
			have[id] = true
		}
		var missing []string
		for _, id := range ids {
			if !have[id] {
				missing = append(missing, fmt.Sprintf("%d", id))
			}
		}
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "Invalid productId", "missing="+strings.Join(missing, ","))
		return false
	}
	return true
}

func cartItems(in CartInput) []models.CartItem {
	items := make([]models.CartItem, 0, len(in.Products))
	for _, p := range in.Products {
		items = append(items, models.CartItem{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	return items
}

func (ct *CartController) Create(c *gin.Context) {
	var in CartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid cart payload", err.Error())
		return
	}
	if !ct.validateCartRefs(c, in) {
		return
	}

	cart := models.Cart{
		UserID: in.UserID,
		Date:   in.Date,
		Items:  cartItems(in),
	}
	if err := ct.DB.WithContext(c.Request.Context()).Create(&cart).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, cart)
}

func (ct *CartController) Update(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}

	var cart models.Cart
	if err := ct.DB.WithContext(c.Request.Context()).Preload("Items").First(&cart, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "Cart not found", fmt.Sprintf("id=%d", id))
		return
	}

	var in CartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid cart payload", err.Error())
		return
	}
	if !ct.validateCartRefs(c, in) {
		return
	}

	err := ct.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		cart.UserID = in.UserID
		cart.Date = in.Date
		cart.Items = cartItems(in)
		return tx.Save(&cart).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ct *CartController) Delete(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var cart models.Cart
	if err := ct.DB.WithContext(c.Request.Context()).First(&cart, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "Cart not found", fmt.Sprintf("id=%d", id))
		return
	}
	if err := ct.DB.WithContext(c.Request.Context()).Select("Items").Delete(&cart).Error; err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
