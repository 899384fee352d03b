package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/runwayhq/runway-backend/internal/audit"
	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/repos"
	"github.com/runwayhq/runway-backend/internal/requestdata"
	"github.com/runwayhq/runway-backend/internal/schemas"
	"github.com/runwayhq/runway-backend/internal/types"
	"github.com/runwayhq/runway-backend/internal/validation"
)

// ValidationError carries field-scoped messages back to the handler so the
// client can surface them inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

type EventService interface {
	CreateEvent(ctx context.Context, req schemas.CreateEventRequest) (*types.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*types.Event, error)
	ListEvents(ctx context.Context) ([]*types.Event, error)
}

type eventService struct {
	db        *gorm.DB
	log       *logger.Logger
	eventRepo repos.EventRepo
	phaseRepo repos.EventPhaseRepo
	auditSvc  audit.Service
}

func NewEventService(
	db *gorm.DB,
	log *logger.Logger,
	eventRepo repos.EventRepo,
	phaseRepo repos.EventPhaseRepo,
	auditSvc audit.Service,
) EventService {
	serviceLog := log.With("service", "EventService")
	return &eventService{
		db:        db,
		log:       serviceLog,
		eventRepo: eventRepo,
		phaseRepo: phaseRepo,
		auditSvc:  auditSvc,
	}
}

// CreateEvent validates the merged wizard request, attaches organization_id
// and created_by from the session, and seeds the 14 production phases the
// planner later depends on.
func (s *eventService) CreateEvent(ctx context.Context, req schemas.CreateEventRequest) (*types.Event, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("no session in context")
	}

	if res := schemas.ValidateCreateEventRequest(req, time.Now()); !res.OK {
		return nil, &ValidationError{Fields: res.Errors}
	}

	eventDate, _ := schemas.ParseDate(req.EventDate)

	event := &types.Event{
		ID:                 uuid.New(),
		OrganizationID:     rd.OrganizationID,
		CreatedBy:          rd.UserID,
		Name:               validation.SanitizeText(req.Name),
		EventType:          req.EventType,
		Description:        validation.SanitizeText(req.Description),
		EventDate:          eventDate,
		ExpectedAttendance: req.ExpectedAttendance,
		Budget:             req.Budget,
		NumberOfModels:     req.NumberOfModels,
		ModelTypes:         marshalStrings(req.ModelTypes),
		SponsorIDs:         marshalStrings(req.SponsorIDs),
		NeedsRunwayShow:    req.NeedsRunwayShow,
		NeedsLookbook:      req.NeedsLookbook,
		NeedsPressKit:      req.NeedsPressKit,
		NeedsSocialContent: req.NeedsSocialContent,
		GenerateTasksAI:    req.GenerateTasksWithAI,
		Status:             "planning",
	}
	if req.Venue != nil {
		venue := validation.SanitizeText(*req.Venue)
		event.Venue = &venue
	}
	if req.CastingDirectorID != nil {
		id, err := uuid.Parse(*req.CastingDirectorID)
		if err == nil {
			event.CastingDirectorID = &id
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, cErr := s.eventRepo.Create(ctx, tx, []*types.Event{event}); cErr != nil {
			return fmt.Errorf("failed to create event: %w", cErr)
		}
		phases := make([]*types.EventPhase, 0, len(validation.CanonicalPhases))
		for i, p := range validation.CanonicalPhases {
			phases = append(phases, &types.EventPhase{
				ID:              uuid.New(),
				EventID:         event.ID,
				Name:            p.Name,
				SortOrder:       i,
				LeadTimeMinDays: p.MinDays,
				LeadTimeMaxDays: p.MaxDays,
			})
		}
		if _, pErr := s.phaseRepo.Create(ctx, tx, phases); pErr != nil {
			return fmt.Errorf("failed to create event phases: %w", pErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	audit.Fire(s.log, "LogUserAction", s.auditSvc.LogUserAction(ctx, audit.UserActionEntry{
		UserID:       rd.UserID,
		ActionType:   "event_created",
		ResourceType: "event",
		ResourceID:   &event.ID,
		Details:      map[string]any{"name": event.Name, "event_type": event.EventType},
	}))

	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*types.Event, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("no session in context")
	}
	events, err := s.eventRepo.GetByIDs(ctx, nil, []uuid.UUID{eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if len(events) == 0 || events[0].OrganizationID != rd.OrganizationID {
		return nil, nil
	}
	return events[0], nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*types.Event, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("no session in context")
	}
	return s.eventRepo.ListByOrganization(ctx, nil, rd.OrganizationID)
}

func marshalStrings(vals []string) datatypes.JSON {
	if vals == nil {
		vals = []string{}
	}
	raw, err := json.Marshal(vals)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
