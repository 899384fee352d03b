package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Event struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	CreatedBy          uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	Name               string         `gorm:"not null;column:name" json:"name"`
	EventType          string         `gorm:"not null;column:event_type" json:"event_type"`
	Description        string         `gorm:"not null;column:description" json:"description"`
	EventDate          time.Time      `gorm:"not null;column:event_date" json:"event_date"`
	Venue              *string        `gorm:"column:venue" json:"venue,omitempty"`
	ExpectedAttendance int            `gorm:"not null;column:expected_attendance" json:"expected_attendance"`
	Budget             float64        `gorm:"not null;column:budget" json:"budget"`
	NumberOfModels     int            `gorm:"not null;default:0;column:number_of_models" json:"number_of_models"`
	ModelTypes         datatypes.JSON `gorm:"type:jsonb;column:model_types" json:"model_types"`
	CastingDirectorID  *uuid.UUID     `gorm:"type:uuid;column:casting_director_id" json:"casting_director_id,omitempty"`
	SponsorIDs         datatypes.JSON `gorm:"type:jsonb;column:sponsor_ids" json:"sponsor_ids"`
	NeedsRunwayShow    bool           `gorm:"not null;default:false;column:needs_runway_show" json:"needs_runway_show"`
	NeedsLookbook      bool           `gorm:"not null;default:false;column:needs_lookbook" json:"needs_lookbook"`
	NeedsPressKit      bool           `gorm:"not null;default:false;column:needs_press_kit" json:"needs_press_kit"`
	NeedsSocialContent bool           `gorm:"not null;default:false;column:needs_social_content" json:"needs_social_content"`
	GenerateTasksAI    bool           `gorm:"not null;default:false;column:generate_tasks_with_ai" json:"generate_tasks_with_ai"`
	Status             string         `gorm:"not null;default:'planning';column:status" json:"status"`
	CreatedAt          time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Event) TableName() string { return "event" }
