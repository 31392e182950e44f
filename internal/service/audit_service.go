package service

import (
	"context"

	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, accountID string, action string, entityName string, entityID string, newValue interface{}) error
	LogDelete(ctx context.Context, accountID string, action string, entityName string, entityID string) error
	LogEvent(ctx context.Context, accountID string, action string, metadata entity.JSON) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, accountID string, action string, entityName string, entityID string, newValue interface{}) error {
	return s.LogEvent(ctx, accountID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action
func (s *auditService) LogDelete(ctx context.Context, accountID string, action string, entityName string, entityID string) error {
	return s.LogEvent(ctx, accountID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	})
}

func (s *auditService) LogEvent(ctx context.Context, accountID string, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		AccountID: accountID,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
