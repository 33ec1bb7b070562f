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

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type UserInput struct {
	Email     string            `json:"email" binding:"required,email"`
	Username  string            `json:"username" binding:"required"`
	Password  string            `json:"password"`
	Firstname string            `json:"firstname"`
	Lastname  string            `json:"lastname"`
	City      string            `json:"city"`
	Street    string            `json:"street"`
	Number    string            `json:"number"`
	Zipcode   string            `json:"zipcode"`
	Lat       string            `json:"lat"`
	Long      string            `json:"long"`
	Phone     string            `json:"phone"`
	Status    models.UserStatus `json:"status"`
	Role      models.UserRole   `json:"role"`
}

var userSortFields = map[string]func(a, b models.User) int{
	"id":        func(a, b models.User) int { return cmp.Compare(a.ID, b.ID) },
	"username":  func(a, b models.User) int { return strings.Compare(a.Username, b.Username) },
	"email":     func(a, b models.User) int { return strings.Compare(a.Email, b.Email) },
	"firstname": func(a, b models.User) int { return strings.Compare(a.Name.Firstname, b.Name.Firstname) },
	"lastname":  func(a, b models.User) int { return strings.Compare(a.Name.Lastname, b.Name.Lastname) },
	"city":      func(a, b models.User) int { return strings.Compare(a.Address.City, b.Address.City) },
	"status":    func(a, b models.User) int { return strings.Compare(string(a.Status), string(b.Status)) },
	"role":      func(a, b models.User) int { return strings.Compare(string(a.Role), string(b.Role)) },
}

func (u *UserController) List(c *gin.Context) {
	page, size := pageParams(c)

	q := u.DB.WithContext(c.Request.Context()).Model(&models.User{})
	q = service.WhereWildcard(q, "username", c.Query("username"))
	q = service.WhereWildcard(q, "email", c.Query("email"))
	q = service.WhereWildcard(q, "name_firstname", c.Query("firstname"))
	q = service.WhereWildcard(q, "name_lastname", c.Query("lastname"))
	q = service.WhereWildcard(q, "address_city", c.Query("city"))
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}
	if v := c.Query("role"); v != "" {
		q = q.Where("role = ?", v)
	}

	var users []models.User
	if err := q.Order("id").Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}

	users = service.ApplyOrder(users, userSortFields, c.Query("_order"))
	utils.Success(c, http.StatusOK, service.Paginate(users, page, size))
}

func (u *UserController) GetByID(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var user models.User
	if err := u.DB.WithContext(c.Request.Context()).First(&user, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "User not found", fmt.Sprintf("id=%d", id))
		return
	}
	utils.Success(c, http.StatusOK, user)
}

func (u *UserController) Create(c *gin.Context) {
	var in UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid user payload", err.Error())
		return
	}
	if in.Password == "" {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "password is required", "")
		return
	}

	var count int64
	if err := u.DB.WithContext(c.Request.Context()).Model(&models.User{}).
		Where("username = ? OR email = ?", in.Username, in.Email).
		Count(&count).Error; err != nil {
		respondError(c, err)
		return
	}
	if count > 0 {
		utils.Fail(c, http.StatusConflict, "Conflict", "User exists", "email or username already used")
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		Name:         models.Name{Firstname: in.Firstname, Lastname: in.Lastname},
		Address: models.Address{
			City:    in.City,
			Street:  in.Street,
			Number:  in.Number,
			Zipcode: in.Zipcode,
			Geo:     models.Geo{Lat: in.Lat, Long: in.Long},
		},
		Phone:  in.Phone,
		Status: in.Status,
		Role:   in.Role,
	}
	if user.Status == "" {
		user.Status = models.StatusActive
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	if err := u.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, user)
}

func (u *UserController) Update(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := u.DB.WithContext(c.Request.Context()).First(&user, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "User not found", fmt.Sprintf("id=%d", id))
		return
	}

	var in UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid user payload", err.Error())
		return
	}

	var count int64
	if err := u.DB.WithContext(c.Request.Context()).Model(&models.User{}).
		Where("(username = ? OR email = ?) AND id <> ?", in.Username, in.Email, id).
		Count(&count).Error; err != nil {
		respondError(c, err)
		return
	}
	if count > 0 {
		utils.Fail(c, http.StatusConflict, "Conflict", "User exists", "email or username already used")
		return
	}

	user.Email = in.Email
	user.Username = in.Username
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		user.PasswordHash = hash
	}
	user.Name = models.Name{Firstname: in.Firstname, Lastname: in.Lastname}
	user.Address = models.Address{
		City:    in.City,
		Street:  in.Street,
		Number:  in.Number,
		Zipcode: in.Zipcode,
		Geo:     models.Geo{Lat: in.Lat, Long: in.Long},
	}
	user.Phone = in.Phone
	if in.Status != "" {
		user.Status = in.Status
	}
	if in.Role != "" {
		user.Role = in.Role
	}

	if err := u.DB.WithContext(c.Request.Context()).Save(&user).Error; err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (u *UserController) Delete(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var user models.User
	if err := u.DB.WithContext(c.Request.Context()).First(&user, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "User not found", fmt.Sprintf("id=%d", id))
		return
	}
	if err := u.DB.WithContext(c.Request.Context()).Delete(&user).Error; err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
