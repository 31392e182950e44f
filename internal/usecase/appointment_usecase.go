package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/6DaddyCoders9/Salon-App/internal/converter"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/dto"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/http/middleware"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/repository"
	"github.com/6DaddyCoders9/Salon-App/internal/service"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/iter"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, creator, serviceCenterID string, date time.Time) (*dto.AppointmentResponse, error)
	GetUserVisitedServiceCenters(ctx context.Context, userID string) ([]entity.VisitedServiceCenter, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
}

type appointmentUsecase struct {
	client            *appwrite.Client
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	serviceCenterRepo repository.ServiceCenterRepository
	auditService      service.AuditService
}

func NewAppointmentUsecase(
	client *appwrite.Client,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	serviceCenterRepo repository.ServiceCenterRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		client:            client,
		log:               log,
		appointmentRepo:   appointmentRepo,
		serviceCenterRepo: serviceCenterRepo,
		auditService:      auditService,
	}
}

// BookAppointment stores a new appointment in the Booked state.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, creator, serviceCenterID string, date time.Time) (*dto.AppointmentResponse, error) {
	appointment := &entity.Appointment{
		Date:    date,
		Status:  entity.AppointmentStatusBooked,
		Creator: entity.Relation{ID: creator},
		Center:  entity.Relation{ID: serviceCenterID},
	}

	if err := u.appointmentRepo.Create(ctx, sessionClient(ctx, u.client), appointment); err != nil {
		u.log.Errorf("Error booking appointment at %s: %+v", serviceCenterID, err)
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	accountID, _ := middleware.GetAccountIDFromContext(ctx)
	u.auditService.LogCreate(ctx, accountID, entity.AuditActionAppointmentBook, "appointment", appointment.ID, converter.AppointmentToResponse(appointment))
	u.log.Infof("Appointment booked: id=%s, center=%s, creator=%s", appointment.ID, serviceCenterID, creator)

	return converter.AppointmentToResponse(appointment), nil
}

// GetUserVisitedServiceCenters lists the user's appointments and fetches every
// appointment's service center concurrently. Results keep the appointment order;
// a single failed lookup fails the call.
func (u *appointmentUsecase) GetUserVisitedServiceCenters(ctx context.Context, userID string) ([]entity.VisitedServiceCenter, error) {
	client := sessionClient(ctx, u.client)

	appointments, err := u.appointmentRepo.FindByCreator(ctx, client, userID)
	if err != nil {
		u.log.Errorf("Error fetching appointments of user %s: %+v", userID, err)
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	visited, err := iter.MapErr(appointments, func(appointment *entity.Appointment) (entity.VisitedServiceCenter, error) {
		// The platform nulls the relation once the center is deleted
		if appointment.Center.ID == "" {
			return entity.VisitedServiceCenter{}, fmt.Errorf("%w: appointment %s", ErrServiceCenterNotFound, appointment.ID)
		}
		center, err := u.serviceCenterRepo.FindByID(ctx, client, appointment.Center.ID)
		if err != nil {
			return entity.VisitedServiceCenter{}, err
		}
		if center == nil {
			return entity.VisitedServiceCenter{}, fmt.Errorf("%w: %s", ErrServiceCenterNotFound, appointment.Center.ID)
		}
		return entity.VisitedServiceCenter{
			ServiceCenter:     *center,
			AppointmentDate:   appointment.Date,
			AppointmentStatus: appointment.Status,
			AppointmentID:     appointment.ID,
		}, nil
	})
	if err != nil {
		u.log.Errorf("Error fetching visited service centers of user %s: %+v", userID, err)
		return nil, fmt.Errorf("fetch visited service centers: %w", err)
	}

	return visited, nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) error {
	if err := u.appointmentRepo.Delete(ctx, sessionClient(ctx, u.client), appointmentID); err != nil {
		if appwrite.IsNotFound(err) {
			return ErrAppointmentNotFound
		}
		u.log.Errorf("Error canceling appointment %s: %+v", appointmentID, err)
		return fmt.Errorf("cancel appointment: %w", err)
	}

	accountID, _ := middleware.GetAccountIDFromContext(ctx)
	u.auditService.LogDelete(ctx, accountID, entity.AuditActionAppointmentCancel, "appointment", appointmentID)
	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}
