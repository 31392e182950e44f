package repository

import (
	"context"

	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

type AccountRepository interface {
	Create(ctx context.Context, client *appwrite.Client, email, password, name string) (*entity.Account, error)
	CreateSession(ctx context.Context, client *appwrite.Client, email, password string) (*entity.Session, error)
	Get(ctx context.Context, client *appwrite.Client) (*entity.Account, error)
	DeleteCurrentSession(ctx context.Context, client *appwrite.Client) error
	DeleteAllSessions(ctx context.Context, client *appwrite.Client) error
	InitialsAvatar(client *appwrite.Client, name string) string
}
