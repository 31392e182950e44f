package repository

import (
	"context"

	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

type ServiceCenterRepository interface {
	FindAll(ctx context.Context, client *appwrite.Client) ([]entity.ServiceCenter, error)
	Search(ctx context.Context, client *appwrite.Client, title string) ([]entity.ServiceCenter, error)
	FindByID(ctx context.Context, client *appwrite.Client, id string) (*entity.ServiceCenter, error)
}
