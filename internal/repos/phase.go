package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/types"
)

type EventPhaseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, phases []*types.EventPhase) ([]*types.EventPhase, error)
	GetByEventIDs(ctx context.Context, tx *gorm.DB, eventIDs []uuid.UUID) ([]*types.EventPhase, error)
}

type eventPhaseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventPhaseRepo(db *gorm.DB, baseLog *logger.Logger) EventPhaseRepo {
	repoLog := baseLog.With("repo", "EventPhaseRepo")
	return &eventPhaseRepo{db: db, log: repoLog}
}

func (r *eventPhaseRepo) Create(ctx context.Context, tx *gorm.DB, phases []*types.EventPhase) ([]*types.EventPhase, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(phases) == 0 {
		return []*types.EventPhase{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&phases).Error; err != nil {
		return nil, err
	}
	return phases, nil
}

func (r *eventPhaseRepo) GetByEventIDs(ctx context.Context, tx *gorm.DB, eventIDs []uuid.UUID) ([]*types.EventPhase, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EventPhase
	if len(eventIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("event_id IN ?", eventIDs).
		Order("sort_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
