package repository

import (
	"context"

	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

type UserRepository interface {
	Create(ctx context.Context, client *appwrite.Client, user *entity.User) error
	FindByAccountID(ctx context.Context, client *appwrite.Client, accountID string) (*entity.User, error)
}
