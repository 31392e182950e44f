package handler

import (
	"errors"
	"net/http"

	"github.com/6DaddyCoders9/Salon-App/internal/usecase"
	"github.com/6DaddyCoders9/Salon-App/pkg/response"

	"github.com/gorilla/mux"
)

type ServiceCenterHandler struct {
	serviceCenterUsecase usecase.ServiceCenterUsecase
}

func NewServiceCenterHandler(serviceCenterUsecase usecase.ServiceCenterUsecase) *ServiceCenterHandler {
	return &ServiceCenterHandler{serviceCenterUsecase: serviceCenterUsecase}
}

// GetServiceCenters lists service centers, or searches their titles when q is set.
func (h *ServiceCenterHandler) GetServiceCenters(w http.ResponseWriter, r *http.Request) {
	result, err := h.serviceCenterUsecase.SearchServiceCenters(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		platformError(w, err, "Failed to get service centers")
		return
	}

	response.Success(w, http.StatusOK, "Service centers retrieved successfully", result)
}

func (h *ServiceCenterHandler) GetServiceCenter(w http.ResponseWriter, r *http.Request) {
	center, err := h.serviceCenterUsecase.GetServiceCenterByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrServiceCenterNotFound) {
			response.NotFound(w, "Service center not found")
			return
		}
		platformError(w, err, "Failed to get service center")
		return
	}

	response.Success(w, http.StatusOK, "Service center retrieved successfully", center)
}
