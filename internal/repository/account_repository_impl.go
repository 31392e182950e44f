package repository

import (
	"context"

	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	domainRepo "github.com/6DaddyCoders9/Salon-App/internal/domain/repository"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(ctx context.Context, client *appwrite.Client, email, password, name string) (*entity.Account, error) {
	user, err := appwrite.NewAccount(client).Create(ctx, appwrite.ID.Unique(), email, password, name)
	if err != nil {
		return nil, err
	}
	return toAccount(user), nil
}

func (r *accountRepository) CreateSession(ctx context.Context, client *appwrite.Client, email, password string) (*entity.Session, error) {
	session, err := appwrite.NewAccount(client).CreateEmailPasswordSession(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &entity.Session{
		ID:        session.ID,
		AccountID: session.UserID,
		Secret:    session.Secret,
		ExpiresAt: session.Expire,
	}, nil
}

func (r *accountRepository) Get(ctx context.Context, client *appwrite.Client) (*entity.Account, error) {
	user, err := appwrite.NewAccount(client).Get(ctx)
	if err != nil {
		return nil, err
	}
	return toAccount(user), nil
}

func (r *accountRepository) DeleteCurrentSession(ctx context.Context, client *appwrite.Client) error {
	return appwrite.NewAccount(client).DeleteSession(ctx, "current")
}

func (r *accountRepository) DeleteAllSessions(ctx context.Context, client *appwrite.Client) error {
	return appwrite.NewAccount(client).DeleteSessions(ctx)
}

func (r *accountRepository) InitialsAvatar(client *appwrite.Client, name string) string {
	return appwrite.NewAvatars(client).GetInitials(name, 0, 0)
}

func toAccount(user *appwrite.User) *entity.Account {
	return &entity.Account{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
