package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	ServiceCenterID string    `json:"service_center_id" validate:"required,max=36"`
	Date            time.Time `json:"date" validate:"required"`
	// Creator defaults to the signed-in user's profile document.
	Creator string `json:"creator" validate:"omitempty,max=36"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
	Creator         string    `json:"creator"`
	ServiceCenterID string    `json:"service_center_id"`
	CreatedAt       time.Time `json:"created_at"`
}
