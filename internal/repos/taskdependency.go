package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/types"
)

type TaskDependencyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, edges []*types.TaskDependency) ([]*types.TaskDependency, error)
	GetByTaskIDs(ctx context.Context, tx *gorm.DB, taskIDs []uuid.UUID) ([]*types.TaskDependency, error)
}

type taskDependencyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskDependencyRepo(db *gorm.DB, baseLog *logger.Logger) TaskDependencyRepo {
	repoLog := baseLog.With("repo", "TaskDependencyRepo")
	return &taskDependencyRepo{db: db, log: repoLog}
}

func (r *taskDependencyRepo) Create(ctx context.Context, tx *gorm.DB, edges []*types.TaskDependency) ([]*types.TaskDependency, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(edges) == 0 {
		return []*types.TaskDependency{}, nil
	}
	if err := transaction.WithContext(ctx).CreateInBatches(&edges, 200).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

func (r *taskDependencyRepo) GetByTaskIDs(ctx context.Context, tx *gorm.DB, taskIDs []uuid.UUID) ([]*types.TaskDependency, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.TaskDependency
	if len(taskIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
