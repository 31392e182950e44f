package usecase

import (
	"context"
	"errors"

	"github.com/6DaddyCoders9/Salon-App/internal/converter"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/dto"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/http/middleware"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxAuditLogs = 100

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetMyAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetMyAuditLogs returns the signed-in account's most recent audit entries.
func (u *auditLogUsecase) GetMyAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if limit < 1 || limit > maxAuditLogs {
		limit = maxAuditLogs
	}

	logs, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), accountID, limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs for %s: %+v", accountID, err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil || auditLog.AccountID != accountID {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
