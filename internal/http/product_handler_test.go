package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DarlanCavalcante/tech10/internal/catalog"
	"github.com/DarlanCavalcante/tech10/internal/domain"
	"github.com/DarlanCavalcante/tech10/internal/orders"
)

// --- helpers ---

func newTestRouter() *chi.Mux {
	cat := catalog.NewStore(
		domain.Product{ID: 1, Name: "Smartphone XYZ", Price: 1999.99, Stock: 10},
		domain.Product{ID: 2, Name: "Notebook ABC", Price: 3499.99, Stock: 5},
	)
	orderStore := orders.NewStore()
	service := orders.NewService(cat, orderStore)
	return NewRouter(NewProductHandler(cat), NewOrderHandler(service, orderStore), 30*time.Second)
}

func doRequest(router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var msg MessageResponse
	if err := json.NewDecoder(recorder.Body).Decode(&msg); err != nil {
		t.Fatalf("failed to decode message response: %v", err)
	}
	return msg.Message
}

// --- products ---

func TestListProducts(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(router, "GET", "/api/products", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	var products []domain.Product
	if err := json.NewDecoder(recorder.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != 1 || products[1].ID != 2 {
		t.Errorf("expected products ordered by id, got %d,%d", products[0].ID, products[1].ID)
	}
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(router, "GET", "/api/products/2", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	var p domain.Product
	if err := json.NewDecoder(recorder.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if p.Name != "Notebook ABC" {
		t.Errorf("expected 'Notebook ABC', got '%s'", p.Name)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/api/products/999", "/api/products/abc"} {
		recorder := doRequest(router, "GET", path, "")
		if recorder.Code != http.StatusNotFound {
			t.Errorf("%s: expected %d, got %d", path, http.StatusNotFound, recorder.Code)
		}
		if msg := decodeMessage(t, recorder); msg != "Produto não encontrado" {
			t.Errorf("%s: unexpected message '%s'", path, msg)
		}
	}
}

func TestCreateProduct(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(router, "POST", "/api/products",
		`{"name":"Mouse Gamer","price":149.99}`)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, recorder.Code)
	}
	var p domain.Product
	if err := json.NewDecoder(recorder.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if p.ID != 3 {
		t.Errorf("expected id 3, got %d", p.ID)
	}
	if p.Image == "" {
		t.Error("expected default image to be applied")
	}
	if p.Stock != 0 {
		t.Errorf("expected default stock 0, got %d", p.Stock)
	}
}

func TestCreateProduct_MissingFields(t *testing.T) {
	router := newTestRouter()

	for _, body := range []string{
		`{"price":149.99}`,
		`{"name":"Mouse Gamer"}`,
		`{"name":"Mouse Gamer","price":0}`,
	} {
		recorder := doRequest(router, "POST", "/api/products", body)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected %d, got %d", body, http.StatusBadRequest, recorder.Code)
		}
		if msg := decodeMessage(t, recorder); msg != "Nome e preço são obrigatórios" {
			t.Errorf("body %s: unexpected message '%s'", body, msg)
		}
	}
}

func TestUpdateProduct_Partial(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(router, "PUT", "/api/products/1", `{"stock":4}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	var p domain.Product
	if err := json.NewDecoder(recorder.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if p.Stock != 4 {
		t.Errorf("expected stock 4, got %d", p.Stock)
	}
	if p.Name != "Smartphone XYZ" {
		t.Errorf("name should be untouched, got '%s'", p.Name)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(router, "PUT", "/api/products/999", `{"stock":4}`)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(router, "DELETE", "/api/products/1", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	if msg := decodeMessage(t, recorder); msg != "Produto removido com sucesso" {
		t.Errorf("unexpected message '%s'", msg)
	}

	recorder = doRequest(router, "GET", "/api/products/1", "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected %d after delete, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(router, "GET", "/api/health", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	var health HealthResponse
	if err := json.NewDecoder(recorder.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("expected status 'ok', got '%s'", health.Status)
	}
}
