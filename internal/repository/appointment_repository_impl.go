package repository

import (
	"context"
	"time"

	"github.com/6DaddyCoders9/Salon-App/config"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	domainRepo "github.com/6DaddyCoders9/Salon-App/internal/domain/repository"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

type appointmentRepository struct {
	databaseID   string
	collectionID string
}

// isoMillis matches JavaScript's toISOString, which the mobile app writes.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func NewAppointmentRepository(cfg config.AppwriteConfig) domainRepo.AppointmentRepository {
	return &appointmentRepository{
		databaseID:   cfg.DatabaseID,
		collectionID: cfg.AppointmentCollectionID,
	}
}

func (r *appointmentRepository) Create(ctx context.Context, client *appwrite.Client, appointment *entity.Appointment) error {
	doc, err := appwrite.NewDatabases(client).CreateDocument(ctx, r.databaseID, r.collectionID, appwrite.ID.Unique(), map[string]interface{}{
		"date":     appointment.Date.UTC().Format(isoMillis),
		"status":   appointment.Status,
		"creator":  appointment.Creator.ID,
		"centerId": appointment.Center.ID,
	})
	if err != nil {
		return err
	}
	return doc.Decode(appointment)
}

func (r *appointmentRepository) FindByCreator(ctx context.Context, client *appwrite.Client, userID string) ([]entity.Appointment, error) {
	list, err := appwrite.NewDatabases(client).ListDocuments(ctx, r.databaseID, r.collectionID,
		appwrite.Equal("creator", userID))
	if err != nil {
		return nil, err
	}

	appointments := make([]entity.Appointment, 0, len(list.Documents))
	for _, doc := range list.Documents {
		var appointment entity.Appointment
		if err := doc.Decode(&appointment); err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}
	return appointments, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, client *appwrite.Client, id string) error {
	return appwrite.NewDatabases(client).DeleteDocument(ctx, r.databaseID, r.collectionID, id)
}
