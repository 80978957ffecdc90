// Package http exposes the storefront's HTTP/JSON API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DarlanCavalcante/tech10/internal/catalog"
	"github.com/DarlanCavalcante/tech10/internal/domain"
)

const defaultProductImage = "https://via.placeholder.com/300x200?text=Produto"

type ProductHandler struct {
	catalog *catalog.Store
}

func NewProductHandler(catalog *catalog.Store) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type CreateProductDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

type UpdateProductDTO struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
}

// GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.List())
}

// GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Produto não encontrado")
		return
	}
	p, err := h.catalog.Get(id)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Produto não encontrado")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Name == "" || req.Price <= 0 {
		respondMessage(w, http.StatusBadRequest, "Nome e preço são obrigatórios")
		return
	}
	if req.Image == "" {
		req.Image = defaultProductImage
	}
	if req.Stock < 0 {
		req.Stock = 0
	}

	p := h.catalog.Create(domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	respondJSON(w, http.StatusCreated, p)
}

// PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Produto não encontrado")
		return
	}
	var req UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	p, err := h.catalog.Update(id, catalog.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondMessage(w, http.StatusNotFound, "Produto não encontrado")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Produto não encontrado")
		return
	}
	if err := h.catalog.Delete(id); err != nil {
		respondMessage(w, http.StatusNotFound, "Produto não encontrado")
		return
	}
	respondMessage(w, http.StatusOK, "Produto removido com sucesso")
}

// productID parses the id path parameter. Non-numeric ids behave like
// ids that are not in the catalog.
func productID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
