package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func saleBody(number string) string {
	return fmt.Sprintf(`{
		"number": %q,
		"date": "2024-06-01T00:00:00Z",
		"customer_id": 1,
		"customer_name": "John Doe",
		"branch_id": 1,
		"branch_name": "Downtown",
		"items": [
			{"product_id": 1, "product_name": "Headphones", "quantity": 4, "unit_price": 100},
			{"product_id": 2, "product_name": "Keyboard", "quantity": 10, "unit_price": 50}
		]
	}`, number)
}

func TestSaleCreateAndGet(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/sales", token, strings.NewReader(saleBody("S-100")))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if total := body["total"].(float64); total != 760 {
		t.Fatalf("expected total 760 got %v", total)
	}
	id := int(body["id"].(float64))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/sales/%d", id), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	body = decode(t, w)
	if body["number"] != "S-100" {
		t.Fatalf("expected number S-100 got %v", body["number"])
	}
	items := body["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items got %d", len(items))
	}
}

func TestSaleCreateRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/sales", "", strings.NewReader(saleBody("S-101")))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestSaleCreateDuplicateNumber(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/sales", token, strings.NewReader(saleBody("S-102")))
	if w.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/sales", token, strings.NewReader(saleBody("S-102")))
	if w.Code != http.StatusConflict {
		t.Fatalf("second create: expected 409 got %d body=%s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["type"] != "Conflict" {
		t.Fatalf("expected Conflict payload got %v", body)
	}
}

func TestSaleCreateQuantityAbove20(t *testing.T) {
	r, db := setupRouter(t)
	token := adminToken(t)

	payload := `{
		"number": "S-103",
		"date": "2024-06-01T00:00:00Z",
		"customer_id": 1,
		"customer_name": "John Doe",
		"branch_id": 1,
		"branch_name": "Downtown",
		"items": [{"product_id": 1, "product_name": "Headphones", "quantity": 21, "unit_price": 10}]
	}`
	w := doJSON(t, r, http.MethodPost, "/sales", token, strings.NewReader(payload))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d body=%s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["type"] != "ValidationError" {
		t.Fatalf("expected ValidationError payload got %v", body)
	}

	var count int64
	db.Table("sales").Where("number = ?", "S-103").Count(&count)
	if count != 0 {
		t.Fatalf("nothing should have been persisted, found %d rows", count)
	}
}

func TestSaleCancelEndpoints(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/sales", token, strings.NewReader(saleBody("S-104")))
	body := decode(t, w)
	id := int(body["id"].(float64))
	items := body["items"].([]any)
	secondItemID := int(items[1].(map[string]any)["id"].(float64))

	// cancel one item, total drops to the remaining line
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/sales/%d/items/%d/cancel", id, secondItemID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("cancel item: expected 204 got %d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/sales/%d", id), "", nil)
	body = decode(t, w)
	if total := body["total"].(float64); total != 360 {
		t.Fatalf("expected total 360 after item cancel, got %v", total)
	}
	if body["cancelled"].(bool) {
		t.Fatalf("sale-level flag must stay false after item cancel")
	}

	// cancel the sale itself
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/sales/%d/cancel", id), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("cancel sale: expected 204 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/sales/%d", id), "", nil)
	body = decode(t, w)
	if !body["cancelled"].(bool) {
		t.Fatalf("expected cancelled sale")
	}

	// unknown ids
	w = doJSON(t, r, http.MethodPost, "/sales/999/cancel", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown sale got %d", w.Code)
	}
}

func TestSaleUpdateReplacesItems(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/sales", token, strings.NewReader(saleBody("S-105")))
	body := decode(t, w)
	id := int(body["id"].(float64))

	update := `{
		"number": "S-105",
		"date": "2024-06-02T00:00:00Z",
		"customer_id": 1,
		"customer_name": "John Doe",
		"branch_id": 1,
		"branch_name": "Downtown",
		"items": [{"product_id": 3, "product_name": "Mouse", "quantity": 10, "unit_price": 50}],
		"cancelled": false
	}`
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/sales/%d", id), token, strings.NewReader(update))
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: expected 204 got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/sales/%d", id), "", nil)
	body = decode(t, w)
	items := body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item after replacement got %d", len(items))
	}
	if total := body["total"].(float64); total != 400 {
		t.Fatalf("expected recomputed total 400 got %v", total)
	}
}

func TestSaleListEnvelope(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/sales", token, strings.NewReader(saleBody(fmt.Sprintf("S-20%d", i))))
		if w.Code != http.StatusCreated {
			t.Fatalf("seed sale %d: got %d", i, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/sales?_page=1&_size=2&customer=john", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	body := decode(t, w)
	if got := int(body["totalItems"].(float64)); got != 3 {
		t.Fatalf("expected totalItems 3 got %d", got)
	}
	if got := int(body["totalPages"].(float64)); got != 2 {
		t.Fatalf("expected totalPages 2 got %d", got)
	}
	if got := len(body["data"].([]any)); got != 2 {
		t.Fatalf("expected 2 rows got %d", got)
	}
}
