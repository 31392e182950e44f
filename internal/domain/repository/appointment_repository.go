package repository

import (
	"context"

	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

type AppointmentRepository interface {
	Create(ctx context.Context, client *appwrite.Client, appointment *entity.Appointment) error
	FindByCreator(ctx context.Context, client *appwrite.Client, userID string) ([]entity.Appointment, error)
	Delete(ctx context.Context, client *appwrite.Client, id string) error
}
