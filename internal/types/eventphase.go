package types

import (
	"time"

	"github.com/google/uuid"
)

// EventPhase rows are seeded at event creation, one per canonical production
// phase. The planner maps AI phase names onto these rows and fails if they
// are absent.
type EventPhase struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID         uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	Name            string    `gorm:"not null;column:name" json:"name"`
	SortOrder       int       `gorm:"not null;column:sort_order" json:"sort_order"`
	LeadTimeMinDays int       `gorm:"not null;column:lead_time_min_days" json:"lead_time_min_days"`
	LeadTimeMaxDays int       `gorm:"not null;column:lead_time_max_days" json:"lead_time_max_days"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

func (EventPhase) TableName() string { return "event_phase" }
