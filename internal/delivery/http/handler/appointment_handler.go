package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/6DaddyCoders9/Salon-App/internal/delivery/dto"
	"github.com/6DaddyCoders9/Salon-App/internal/usecase"
	"github.com/6DaddyCoders9/Salon-App/pkg/response"
	"github.com/6DaddyCoders9/Salon-App/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	authUsecase        usecase.AuthUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		authUsecase:        authUsecase,
		validator:          validator,
	}
}

// currentUserID resolves the profile document id of the signed-in account.
// It writes the error response itself and reports false on failure.
func (h *AppointmentHandler) currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	user, err := h.authUsecase.GetCurrentUser(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, usecase.ErrNotAuthenticated):
			response.Unauthorized(w, "Session has expired")
		default:
			platformError(w, err, "Failed to get user info")
		}
		return "", false
	}
	return user.ID, true
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	creator := req.Creator
	if creator == "" {
		userID, ok := h.currentUserID(w, r)
		if !ok {
			return
		}
		creator = userID
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), creator, req.ServiceCenterID, req.Date)
	if err != nil {
		platformError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// GetVisitedServiceCenters lists the service centers of a user's appointments.
// The user_id query parameter defaults to the signed-in user.
func (h *AppointmentHandler) GetVisitedServiceCenters(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		var ok bool
		if userID, ok = h.currentUserID(w, r); !ok {
			return
		}
	}

	visited, err := h.appointmentUsecase.GetUserVisitedServiceCenters(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrServiceCenterNotFound) {
			response.NotFound(w, "Service center of an appointment no longer exists")
			return
		}
		platformError(w, err, "Failed to get visited service centers")
		return
	}

	response.Success(w, http.StatusOK, "Visited service centers retrieved successfully", visited)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	err := h.appointmentUsecase.CancelAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		platformError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}
