package converter

import (
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/dto"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		Date:            appointment.Date,
		Status:          string(appointment.Status),
		Creator:         appointment.Creator.ID,
		ServiceCenterID: appointment.Center.ID,
		CreatedAt:       appointment.CreatedAt,
	}
}
