package api

import (
	"net/http"

	"github.com/pepshop/pepshop-api/internal/api/shared"
	"github.com/pepshop/pepshop-api/internal/service"
)

// ClientHandler handles the /clients endpoints.
type ClientHandler struct {
	service *service.ClientService
}

// NewClientHandler creates a ClientHandler with the given service.
func NewClientHandler(service *service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, clients)
}

// GetByID handles GET /clients/{id}.
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "client not found")
		return
	}

	client, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, client)
}

// Create handles POST /clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	client, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, client)
}

// Update handles PUT /clients/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "client not found")
		return
	}

	var req UpdateClientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	client, err := h.service.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, client)
}

// Delete handles DELETE /clients/{id}. Pets, appointments or orders still
// referencing the client block the delete with a 409.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "client not found")
		return
	}

	count, err := h.service.Delete(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if count == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "client not found")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK)
}
