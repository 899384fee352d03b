package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/types"
)

type AuditLogRepo interface {
	CreateAIActionLogs(ctx context.Context, tx *gorm.DB, logs []*types.AIActionLog) ([]*types.AIActionLog, error)
	CreateUserActionLogs(ctx context.Context, tx *gorm.DB, logs []*types.UserActionLog) ([]*types.UserActionLog, error)
	CreateSystemEventLogs(ctx context.Context, tx *gorm.DB, logs []*types.SystemEventLog) ([]*types.SystemEventLog, error)
}

type auditLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAuditLogRepo(db *gorm.DB, baseLog *logger.Logger) AuditLogRepo {
	repoLog := baseLog.With("repo", "AuditLogRepo")
	return &auditLogRepo{db: db, log: repoLog}
}

func (r *auditLogRepo) CreateAIActionLogs(ctx context.Context, tx *gorm.DB, logs []*types.AIActionLog) ([]*types.AIActionLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*types.AIActionLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepo) CreateUserActionLogs(ctx context.Context, tx *gorm.DB, logs []*types.UserActionLog) ([]*types.UserActionLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*types.UserActionLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepo) CreateSystemEventLogs(ctx context.Context, tx *gorm.DB, logs []*types.SystemEventLog) ([]*types.SystemEventLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*types.SystemEventLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
