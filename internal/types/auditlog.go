package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AIActionLog records one generative-model invocation, including its
// estimated spend. Append-only.
type AIActionLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	EventID      *uuid.UUID     `gorm:"type:uuid;index" json:"event_id,omitempty"`
	ActionType   string         `gorm:"not null;column:action_type" json:"action_type"`
	Model        string         `gorm:"not null;column:model" json:"model"`
	Success      bool           `gorm:"not null;column:success" json:"success"`
	Error        string         `gorm:"column:error" json:"error,omitempty"`
	LatencyMS    int64          `gorm:"not null;column:latency_ms" json:"latency_ms"`
	InputTokens  int            `gorm:"not null;default:0;column:input_tokens" json:"input_tokens"`
	OutputTokens int            `gorm:"not null;default:0;column:output_tokens" json:"output_tokens"`
	CostUSD      float64        `gorm:"not null;default:0;column:cost_usd" json:"cost_usd"`
	Details      datatypes.JSON `gorm:"type:jsonb;column:details" json:"details"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
}

func (AIActionLog) TableName() string { return "ai_action_log" }

// UserActionLog records a user-initiated domain action. Append-only.
type UserActionLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ActionType   string         `gorm:"not null;column:action_type" json:"action_type"`
	ResourceType string         `gorm:"column:resource_type" json:"resource_type,omitempty"`
	ResourceID   *uuid.UUID     `gorm:"type:uuid;index" json:"resource_id,omitempty"`
	Details      datatypes.JSON `gorm:"type:jsonb;column:details" json:"details"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
}

func (UserActionLog) TableName() string { return "user_action_log" }

// SystemEventLog records infrastructure-level events. Critical severity
// additionally fans out to the configured alert sink. Append-only.
type SystemEventLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	EventType string         `gorm:"not null;column:event_type" json:"event_type"`
	Severity  string         `gorm:"not null;column:severity" json:"severity"`
	Message   string         `gorm:"not null;column:message" json:"message"`
	Details   datatypes.JSON `gorm:"type:jsonb;column:details" json:"details"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (SystemEventLog) TableName() string { return "system_event_log" }
