package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/DarlanCavalcante/tech10/internal/catalog"
	"github.com/DarlanCavalcante/tech10/internal/domain"
	"github.com/DarlanCavalcante/tech10/internal/logger"
	"github.com/DarlanCavalcante/tech10/internal/orders"
)

type OrderHandler struct {
	service *orders.Service
	store   *orders.Store
}

func NewOrderHandler(service *orders.Service, store *orders.Store) *OrderHandler {
	return &OrderHandler{service: service, store: store}
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

// GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.List())
}

// GET /api/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Pedido não encontrado")
		return
	}
	o, err := h.store.Get(id)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Pedido não encontrado")
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Dados incompletos para criar pedido")
		return
	}

	o, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		h.respondCreateError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, o)
}

// respondCreateError maps committer errors onto the API's status codes
// and messages.
func (h *OrderHandler) respondCreateError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *catalog.ProductNotFoundError
	var noStock *catalog.InsufficientStockError

	switch {
	case errors.Is(err, orders.ErrIncompleteData):
		respondMessage(w, http.StatusBadRequest, "Dados incompletos para criar pedido")
	case errors.As(err, &notFound):
		respondMessage(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &noStock):
		respondMessage(w, http.StatusBadRequest, noStock.Error())
	default:
		logger.Log.Error("create order",
			zap.Error(err),
			zap.String("request_id", RequestIDFromContext(r.Context())))
		respondMessage(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

// PATCH /api/orders/{id}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Pedido não encontrado")
		return
	}
	var req UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	// An empty status leaves the order as is, mirroring a PATCH with no
	// effective change.
	var o domain.Order
	if req.Status == "" {
		o, err = h.store.Get(id)
	} else {
		o, err = h.store.UpdateStatus(id, domain.OrderStatus(req.Status))
	}
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Pedido não encontrado")
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func orderID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
