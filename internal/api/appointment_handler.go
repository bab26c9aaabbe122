package api

import (
	"net/http"

	"github.com/pepshop/pepshop-api/internal/api/shared"
	"github.com/pepshop/pepshop-api/internal/service"
)

// AppointmentHandler handles the /appointments endpoints.
type AppointmentHandler struct {
	service *service.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler with the given
// service.
func NewAppointmentHandler(service *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List handles GET /appointments.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, appointments)
}

// GetByID handles GET /appointments/{id}.
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "appointment not found")
		return
	}

	appointment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, appointment)
}

// Create handles POST /appointments.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	appointment, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, appointment)
}

// Update handles PUT /appointments/{id}.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "appointment not found")
		return
	}

	var req UpdateAppointmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	appointment, err := h.service.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, appointment)
}

// Delete handles DELETE /appointments/{id}.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "appointment not found")
		return
	}

	count, err := h.service.Delete(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	if count == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "appointment not found")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK)
}
