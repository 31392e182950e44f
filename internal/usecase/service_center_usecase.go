package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/6DaddyCoders9/Salon-App/internal/delivery/dto"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/http/middleware"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/repository"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"

	"github.com/sirupsen/logrus"
)

var (
	ErrServiceCenterNotFound = errors.New("service center not found")
)

type ServiceCenterUsecase interface {
	GetAllServiceCenters(ctx context.Context) (*dto.ServiceCenterListResponse, error)
	SearchServiceCenters(ctx context.Context, query string) (*dto.ServiceCenterListResponse, error)
	GetServiceCenterByID(ctx context.Context, id string) (*entity.ServiceCenter, error)
}

type serviceCenterUsecase struct {
	client            *appwrite.Client
	log               *logrus.Logger
	serviceCenterRepo repository.ServiceCenterRepository
}

func NewServiceCenterUsecase(
	client *appwrite.Client,
	log *logrus.Logger,
	serviceCenterRepo repository.ServiceCenterRepository,
) ServiceCenterUsecase {
	return &serviceCenterUsecase{
		client:            client,
		log:               log,
		serviceCenterRepo: serviceCenterRepo,
	}
}

// GetAllServiceCenters returns every service center, newest first.
func (u *serviceCenterUsecase) GetAllServiceCenters(ctx context.Context) (*dto.ServiceCenterListResponse, error) {
	centers, err := u.serviceCenterRepo.FindAll(ctx, sessionClient(ctx, u.client))
	if err != nil {
		u.log.Warnf("Failed to list service centers: %+v", err)
		return nil, fmt.Errorf("list service centers: %w", err)
	}

	return &dto.ServiceCenterListResponse{ServiceCenters: centers, Total: len(centers)}, nil
}

func (u *serviceCenterUsecase) SearchServiceCenters(ctx context.Context, query string) (*dto.ServiceCenterListResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return u.GetAllServiceCenters(ctx)
	}

	centers, err := u.serviceCenterRepo.Search(ctx, sessionClient(ctx, u.client), query)
	if err != nil {
		u.log.Warnf("Failed to search service centers for %q: %+v", query, err)
		return nil, fmt.Errorf("search service centers: %w", err)
	}

	return &dto.ServiceCenterListResponse{ServiceCenters: centers, Total: len(centers)}, nil
}

func (u *serviceCenterUsecase) GetServiceCenterByID(ctx context.Context, id string) (*entity.ServiceCenter, error) {
	center, err := u.serviceCenterRepo.FindByID(ctx, sessionClient(ctx, u.client), id)
	if err != nil {
		u.log.Errorf("Error fetching service center %s: %+v", id, err)
		return nil, fmt.Errorf("get service center: %w", err)
	}
	if center == nil {
		return nil, ErrServiceCenterNotFound
	}
	return center, nil
}

// sessionClient scopes the client to the request session when there is one.
func sessionClient(ctx context.Context, client *appwrite.Client) *appwrite.Client {
	if secret, ok := middleware.GetSessionSecretFromContext(ctx); ok {
		return client.WithSession(secret)
	}
	return client
}
