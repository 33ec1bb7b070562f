package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/felipebarrososa/DeveloperStore/models"
)

func cartBody(userID uint, products string) string {
	return fmt.Sprintf(`{
		"user_id": %d,
		"date": "2026-08-30T10:00:00Z",
		"products": %s
	}`, userID, products)
}

func TestCartCreateValidatesReferences(t *testing.T) {
	r, db := setupRouter(t)
	token := adminToken(t)

	user := models.User{Email: "c@example.com", Username: "carter", PasswordHash: "x",
		Status: models.StatusActive, Role: models.RoleCustomer}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	product := models.Product{Title: "Mug", Price: 9.90, Category: "kitchen"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	// Unknown user.
	w := doJSON(t, r, http.MethodPost, "/carts", token,
		strings.NewReader(cartBody(999, fmt.Sprintf(`[{"product_id": %d, "quantity": 1}]`, product.ID))))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown user: status %d body=%s", w.Code, w.Body.String())
	}
	if body := decode(t, w); body["error"] != "Invalid userId" {
		t.Fatalf("error = %v", body["error"])
	}

	// Unknown product.
	w = doJSON(t, r, http.MethodPost, "/carts", token,
		strings.NewReader(cartBody(user.ID, `[{"product_id": 777, "quantity": 1}]`)))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown product: status %d body=%s", w.Code, w.Body.String())
	}
	if body := decode(t, w); body["error"] != "Invalid productId" {
		t.Fatalf("error = %v", body["error"])
	}

	// Valid cart.
	w = doJSON(t, r, http.MethodPost, "/carts", token,
		strings.NewReader(cartBody(user.ID, fmt.Sprintf(`[{"product_id": %d, "quantity": 3}]`, product.ID))))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body=%s", w.Code, w.Body.String())
	}
}

func TestCartUpdateReplacesItems(t *testing.T) {
	r, db := setupRouter(t)
	token := adminToken(t)

	user := models.User{Email: "d@example.com", Username: "dean", PasswordHash: "x",
		Status: models.StatusActive, Role: models.RoleCustomer}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	var ids []uint
	for _, title := range []string{"Pen", "Pad"} {
		p := models.Product{Title: title, Price: 2, Category: "office"}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
		ids = append(ids, p.ID)
	}

	w := doJSON(t, r, http.MethodPost, "/carts", token,
		strings.NewReader(cartBody(user.ID, fmt.Sprintf(
			`[{"product_id": %d, "quantity": 1}, {"product_id": %d, "quantity": 2}]`, ids[0], ids[1]))))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body=%s", w.Code, w.Body.String())
	}
	cartID := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/carts/%d", cartID), token,
		strings.NewReader(cartBody(user.ID, fmt.Sprintf(`[{"product_id": %d, "quantity": 5}]`, ids[1]))))
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: status %d body=%s", w.Code, w.Body.String())
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 1 {
		t.Fatalf("items after update = %d, want 1", count)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/carts/%d", cartID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", w.Code)
	}
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Fatalf("items after delete = %d, want 0", count)
	}
}
