package repository

import (
	"context"

	"github.com/6DaddyCoders9/Salon-App/config"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	domainRepo "github.com/6DaddyCoders9/Salon-App/internal/domain/repository"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

type userRepository struct {
	databaseID   string
	collectionID string
}

func NewUserRepository(cfg config.AppwriteConfig) domainRepo.UserRepository {
	return &userRepository{
		databaseID:   cfg.DatabaseID,
		collectionID: cfg.UserCollectionID,
	}
}

func (r *userRepository) Create(ctx context.Context, client *appwrite.Client, user *entity.User) error {
	doc, err := appwrite.NewDatabases(client).CreateDocument(ctx, r.databaseID, r.collectionID, appwrite.ID.Unique(), map[string]interface{}{
		"accountId": user.AccountID,
		"email":     user.Email,
		"username":  user.Username,
		"avatar":    user.Avatar,
	})
	if err != nil {
		return err
	}
	return doc.Decode(user)
}

// FindByAccountID returns the first profile document of the account, or nil when there is none.
func (r *userRepository) FindByAccountID(ctx context.Context, client *appwrite.Client, accountID string) (*entity.User, error) {
	list, err := appwrite.NewDatabases(client).ListDocuments(ctx, r.databaseID, r.collectionID,
		appwrite.Equal("accountId", accountID))
	if err != nil {
		return nil, err
	}
	if len(list.Documents) == 0 {
		return nil, nil
	}

	var user entity.User
	if err := list.Documents[0].Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
