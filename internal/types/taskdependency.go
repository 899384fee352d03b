package types

import (
	"time"

	"github.com/google/uuid"
)

// TaskDependency is a directed edge task -> depends_on_task. Created in bulk
// after task insertion, never mutated, removed only by cascading task
// deletion.
type TaskDependency struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID          uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	DependsOnTaskID uuid.UUID `gorm:"type:uuid;not null;index" json:"depends_on_task_id"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

func (TaskDependency) TableName() string { return "task_dependency" }
