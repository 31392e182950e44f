package repository

import (
	"context"

	"github.com/6DaddyCoders9/Salon-App/config"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	domainRepo "github.com/6DaddyCoders9/Salon-App/internal/domain/repository"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

type serviceCenterRepository struct {
	databaseID   string
	collectionID string
}

func NewServiceCenterRepository(cfg config.AppwriteConfig) domainRepo.ServiceCenterRepository {
	return &serviceCenterRepository{
		databaseID:   cfg.DatabaseID,
		collectionID: cfg.ServiceCentersCollectionID,
	}
}

// FindAll lists service centers, newest first.
func (r *serviceCenterRepository) FindAll(ctx context.Context, client *appwrite.Client) ([]entity.ServiceCenter, error) {
	return r.list(ctx, client, appwrite.OrderDesc("$createdAt"))
}

// Search runs a full-text search on the title attribute.
func (r *serviceCenterRepository) Search(ctx context.Context, client *appwrite.Client, title string) ([]entity.ServiceCenter, error) {
	return r.list(ctx, client, appwrite.Search("title", title))
}

func (r *serviceCenterRepository) FindByID(ctx context.Context, client *appwrite.Client, id string) (*entity.ServiceCenter, error) {
	if id == "" {
		return nil, nil
	}
	doc, err := appwrite.NewDatabases(client).GetDocument(ctx, r.databaseID, r.collectionID, id)
	if err != nil {
		if appwrite.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var center entity.ServiceCenter
	if err := doc.Decode(&center); err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *serviceCenterRepository) list(ctx context.Context, client *appwrite.Client, queries ...appwrite.Query) ([]entity.ServiceCenter, error) {
	list, err := appwrite.NewDatabases(client).ListDocuments(ctx, r.databaseID, r.collectionID, queries...)
	if err != nil {
		return nil, err
	}

	centers := make([]entity.ServiceCenter, 0, len(list.Documents))
	for _, doc := range list.Documents {
		var center entity.ServiceCenter
		if err := doc.Decode(&center); err != nil {
			return nil, err
		}
		centers = append(centers, center)
	}
	return centers, nil
}
