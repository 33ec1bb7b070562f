package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/felipebarrososa/DeveloperStore/service"
	"github.com/felipebarrososa/DeveloperStore/utils"
)

type SaleController struct {
	Sales     *service.SalesService
	ReadModel *service.SalesReadModel
}

func NewSaleController(sales *service.SalesService, rm *service.SalesReadModel) *SaleController {
	return &SaleController{Sales: sales, ReadModel: rm}
}

func (s *SaleController) List(c *gin.Context) {
	page, size := pageParams(c)
	filter := service.SaleListFilter{
		From:      queryDate(c, "from"),
		To:        queryDate(c, "to"),
		Customer:  c.Query("customer"),
		Branch:    c.Query("branch"),
		MinTotal:  queryFloat(c, "_minTotal"),
		MaxTotal:  queryFloat(c, "_maxTotal"),
		Cancelled: queryBool(c, "cancelled"),
		Order:     c.Query("_order"),
		Page:      page,
		Size:      size,
	}

	result, err := s.Sales.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, result)
}

func (s *SaleController) GetByID(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	sale, err := s.Sales.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if sale == nil {
		utils.Fail(c, http.StatusNotFound, "NotFound", "Sale not found", fmt.Sprintf("id=%d", id))
		return
	}
	utils.Success(c, http.StatusOK, sale)
}

func (s *SaleController) Create(c *gin.Context) {
	var in service.SaleCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid sale payload", err.Error())
		return
	}
	sale, err := s.Sales.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, sale)
}

func (s *SaleController) Update(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var in service.SaleUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid sale payload", err.Error())
		return
	}
	if _, err := s.Sales.Update(c.Request.Context(), id, in); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *SaleController) Cancel(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	if _, err := s.Sales.CancelSale(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *SaleController) CancelItem(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUint(c, "itemId")
	if !ok {
		return
	}
	if _, err := s.Sales.CancelItem(c.Request.Context(), id, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary serves the branch/day aggregation from the read model only.
func (s *SaleController) Summary(c *gin.Context) {
	if s.ReadModel == nil {
		utils.Fail(c, http.StatusInternalServerError, "ServerError", "read model unavailable", "")
		return
	}
	from := queryDate(c, "from")
	to := queryDate(c, "to")

	list, err := s.ReadModel.DailySummary(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []service.BranchDailySummary{}
	}
	utils.Success(c, http.StatusOK, list)
}
