package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felipebarrososa/DeveloperStore/config"
	"github.com/felipebarrososa/DeveloperStore/models"
	"github.com/felipebarrososa/DeveloperStore/utils"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewAuthController(db *gorm.DB, cfg config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

func (a *AuthController) Login(c *gin.Context) {
	var in struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "username and password are required", "")
		return
	}

	var user models.User
	if err := a.DB.WithContext(c.Request.Context()).Where("username = ?", in.Username).First(&user).Error; err != nil {
		utils.Fail(c, http.StatusUnauthorized, "Unauthorized", "invalid credentials", "")
		return
	}
	if !utils.CheckPassword(user.PasswordHash, in.Password) {
		utils.Fail(c, http.StatusUnauthorized, "Unauthorized", "invalid credentials", "")
		return
	}

	expires := time.Duration(a.Cfg.JWTExpiresMinutes) * time.Minute
	token, err := utils.GenerateToken([]byte(a.Cfg.JWTSecret), expires, user.ID, user.Username, string(user.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{"token": token})
}
