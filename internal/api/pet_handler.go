package api

import (
	"net/http"

	"github.com/pepshop/pepshop-api/internal/api/shared"
	"github.com/pepshop/pepshop-api/internal/service"
)

// PetHandler handles the /pets endpoints.
type PetHandler struct {
	service *service.PetService
}

// NewPetHandler creates a PetHandler with the given service.
func NewPetHandler(service *service.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// List handles GET /pets.
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	pets, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, pets)
}

// GetByID handles GET /pets/{id}.
func (h *PetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "pet not found")
		return
	}

	pet, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, pet)
}

// Create handles POST /pets.
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	pet, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, pet)
}

// Update handles PUT /pets/{id}.
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "pet not found")
		return
	}

	var req UpdatePetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pet, err := h.service.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, pet)
}

// Delete handles DELETE /pets/{id}.
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "pet not found")
		return
	}

	count, err := h.service.Delete(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if count == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "pet not found")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK)
}
