package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/felipebarrososa/DeveloperStore/config"
	"github.com/felipebarrososa/DeveloperStore/models"
	"github.com/felipebarrososa/DeveloperStore/routes"
	"github.com/felipebarrososa/DeveloperStore/service"
	"github.com/felipebarrososa/DeveloperStore/utils"
)

const testSecret = "test-secret"

type recordingProjector struct {
	docs []service.SaleDocument
}

func (r *recordingProjector) UpsertSale(_ context.Context, doc service.SaleDocument) error {
	r.docs = append(r.docs, doc)
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{}, &models.User{},
		&models.Cart{}, &models.CartItem{},
		&models.Sale{}, &models.SaleItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Config{JWTSecret: testSecret, JWTExpiresMinutes: 60}
	sales := service.NewSalesService(db, &recordingProjector{})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.Setup(r, routes.Deps{DB: db, Cfg: cfg, Sales: sales})
	return r, db
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken([]byte(testSecret), time.Hour, 1, "admin", "Admin")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v body=%s", err, w.Body.String())
	}
	return out
}
