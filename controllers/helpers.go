package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/felipebarrososa/DeveloperStore/service"
	"github.com/felipebarrososa/DeveloperStore/utils"
)

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("_page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("_size", "10"))
	return service.ClampPage(page, size)
}

func pathUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, "ValidationError", "invalid "+name, name+"="+c.Param(name))
		return 0, false
	}
	return uint(id), true
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryDate(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &v
}

func statusOf(kind service.ErrorKind) int {
	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindValidation:
		return http.StatusUnprocessableEntity
	case service.KindConflict:
		return http.StatusConflict
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps service errors onto the uniform error payload; anything
// unrecognized becomes a ServerError.
func respondError(c *gin.Context, err error) {
	var appErr *service.Error
	if errors.As(err, &appErr) {
		utils.Fail(c, statusOf(appErr.Kind), string(appErr.Kind), appErr.Message, appErr.Detail)
		return
	}
	utils.Fail(c, http.StatusInternalServerError, "ServerError", err.Error(), "")
}
