package handler

import (
	"errors"
	"net/http"

	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
	"github.com/6DaddyCoders9/Salon-App/pkg/response"
)

// platformError answers with the status and message of a platform error, or
// with a 500 carrying fallback for anything else.
func platformError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *appwrite.Error
	if !errors.As(err, &apiErr) {
		response.InternalServerError(w, fallback)
		return
	}

	switch apiErr.Code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusConflict, http.StatusTooManyRequests:
		response.Error(w, apiErr.Code, apiErr.Message, apiErr.Type)
	default:
		response.Error(w, http.StatusBadGateway, fallback, apiErr.Type)
	}
}
