package api

import (
	"net/http"

	"github.com/pepshop/pepshop-api/internal/api/shared"
	"github.com/pepshop/pepshop-api/internal/service"
)

// ProductHandler handles the /products endpoints.
type ProductHandler struct {
	service *service.ProductService
}

// NewProductHandler creates a ProductHandler with the given service.
func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, products)
}

// GetByID handles GET /products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "product not found")
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, product)
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	product, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, product)
}

// Update handles PUT /products/{id}. Absent fields keep their stored value.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "product not found")
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.service.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "product not found")
		return
	}

	count, err := h.service.Delete(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if count == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "product not found")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK)
}
