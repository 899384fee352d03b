package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	EventID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"event_id"`
	OrganizationID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	PhaseID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"phase_id"`
	Title              string         `gorm:"not null;column:title" json:"title"`
	Description        string         `gorm:"not null;column:description" json:"description"`
	Priority           string         `gorm:"not null;column:priority" json:"priority"`
	EstimatedHours     float64        `gorm:"not null;column:estimated_hours" json:"estimated_hours"`
	DeadlineDaysBefore int            `gorm:"not null;column:deadline_days_before" json:"deadline_days_before"`
	Deadline           time.Time      `gorm:"not null;column:deadline" json:"deadline"`
	Status             string         `gorm:"not null;default:'pending';column:status" json:"status"`
	AIGenerated        bool           `gorm:"not null;default:false;column:ai_generated" json:"ai_generated"`
	CreatedAt          time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Task) TableName() string { return "task" }
