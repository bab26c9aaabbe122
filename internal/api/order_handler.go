package api

import (
	"net/http"

	"github.com/pepshop/pepshop-api/internal/api/shared"
	"github.com/pepshop/pepshop-api/internal/service"
)

// OrderHandler handles the /orders endpoints.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates an OrderHandler with the given service.
func NewOrderHandler(service *service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, orders)
}

// GetByID handles GET /orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "order not found")
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, order)
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	order, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, order)
}

// Update handles PUT /orders/{id}.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "order not found")
		return
	}

	var req UpdateOrderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.service.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, order)
}

// Delete handles DELETE /orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "order not found")
		return
	}

	count, err := h.service.Delete(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if count == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "order not found")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK)
}
