package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/repos"
	"github.com/runwayhq/runway-backend/internal/types"
)

// AlertSink receives critical system events. Real destinations (chat-ops
// webhooks, paging) are integration points behind this interface.
type AlertSink interface {
	Alert(ctx context.Context, severity, message string, details map[string]any)
}

type logAlertSink struct {
	log *logger.Logger
}

// NewLogAlertSink fans critical alerts out to the process log only.
func NewLogAlertSink(log *logger.Logger) AlertSink {
	return &logAlertSink{log: log.With("service", "AlertSink")}
}

func (s *logAlertSink) Alert(ctx context.Context, severity, message string, details map[string]any) {
	s.log.Error("ALERT", "severity", severity, "message", message, "details", details)
}

type AIActionEntry struct {
	UserID       *uuid.UUID
	EventID      *uuid.UUID
	ActionType   string
	Model        string
	Success      bool
	Error        string
	LatencyMS    int64
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Details      map[string]any
}

type UserActionEntry struct {
	UserID       uuid.UUID
	ActionType   string
	ResourceType string
	ResourceID   *uuid.UUID
	Details      map[string]any
}

type SystemEventEntry struct {
	EventType string
	Severity  string // info|warning|error|critical
	Message   string
	Details   map[string]any
}

// Service writes append-only audit records. Every payload passes through
// key-substring redaction before it is persisted or emitted. All Log*
// methods return the persistence error so callers decide how to consume it;
// use Fire for the standard ignore-and-continue path.
type Service interface {
	LogAIAction(ctx context.Context, entry AIActionEntry) error
	LogUserAction(ctx context.Context, entry UserActionEntry) error
	LogSystemEvent(ctx context.Context, entry SystemEventEntry) error
}

type service struct {
	log       *logger.Logger
	repo      repos.AuditLogRepo
	alertSink AlertSink
}

func NewService(log *logger.Logger, repo repos.AuditLogRepo, alertSink AlertSink) Service {
	return &service{
		log:       log.With("service", "AuditService"),
		repo:      repo,
		alertSink: alertSink,
	}
}

// Fire consumes a Log* error with intent: the failure is reported to the
// process log and dropped. Audit logging must never break the operation it
// observes.
func Fire(log *logger.Logger, operation string, err error) {
	if err == nil {
		return
	}
	log.Error("Audit write failed, continuing", "operation", operation, "error", err)
}

func (s *service) LogAIAction(ctx context.Context, entry AIActionEntry) error {
	row := &types.AIActionLog{
		ID:           uuid.New(),
		UserID:       entry.UserID,
		EventID:      entry.EventID,
		ActionType:   entry.ActionType,
		Model:        entry.Model,
		Success:      entry.Success,
		Error:        entry.Error,
		LatencyMS:    entry.LatencyMS,
		InputTokens:  entry.InputTokens,
		OutputTokens: entry.OutputTokens,
		CostUSD:      entry.CostUSD,
		Details:      marshalDetails(entry.Details),
		CreatedAt:    time.Now(),
	}
	_, err := s.repo.CreateAIActionLogs(ctx, nil, []*types.AIActionLog{row})
	return err
}

func (s *service) LogUserAction(ctx context.Context, entry UserActionEntry) error {
	row := &types.UserActionLog{
		ID:           uuid.New(),
		UserID:       entry.UserID,
		ActionType:   entry.ActionType,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Details:      marshalDetails(entry.Details),
		CreatedAt:    time.Now(),
	}
	_, err := s.repo.CreateUserActionLogs(ctx, nil, []*types.UserActionLog{row})
	return err
}

func (s *service) LogSystemEvent(ctx context.Context, entry SystemEventEntry) error {
	redacted := logger.RedactMap(entry.Details)
	if entry.Severity == "critical" && s.alertSink != nil {
		s.alertSink.Alert(ctx, entry.Severity, entry.Message, redacted)
	}
	row := &types.SystemEventLog{
		ID:        uuid.New(),
		EventType: entry.EventType,
		Severity:  entry.Severity,
		Message:   entry.Message,
		Details:   marshalJSON(redacted),
		CreatedAt: time.Now(),
	}
	_, err := s.repo.CreateSystemEventLogs(ctx, nil, []*types.SystemEventLog{row})
	return err
}

func marshalDetails(details map[string]any) datatypes.JSON {
	return marshalJSON(logger.RedactMap(details))
}

func marshalJSON(v map[string]any) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
