package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runwayhq/runway-backend/internal/types"
	"github.com/runwayhq/runway-backend/internal/validation"
)

func TestBuildTaskPlanPrompt_IncludesBriefAndAllPhases(t *testing.T) {
	venue := "Grand Palais"
	event := &types.Event{
		EventType:          "runway_show",
		EventDate:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Budget:             250000,
		ExpectedAttendance: 400,
		Venue:              &venue,
	}
	now := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)

	system, user := BuildTaskPlanPrompt(event, now)
	require.NotEmpty(t, system)
	require.Contains(t, user, "runway_show")
	require.Contains(t, user, "2026-09-15")
	require.Contains(t, user, "(92 days from today)")
	require.Contains(t, user, "$250000.00")
	require.Contains(t, user, "Grand Palais")
	for _, p := range validation.CanonicalPhases {
		require.Contains(t, user, p.Name)
	}
}

func TestBuildTaskPlanPrompt_DaysUntilStableAcrossServerZones(t *testing.T) {
	event := &types.Event{
		EventType:          "runway_show",
		EventDate:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Budget:             250000,
		ExpectedAttendance: 400,
	}
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.FixedZone("UTC-7", -7*3600))
	_, user := BuildTaskPlanPrompt(event, now)
	require.Contains(t, user, "(92 days from today)")
}

func TestBuildTaskPlanPrompt_MissingVenueNoted(t *testing.T) {
	event := &types.Event{
		EventType:          "pop_up_shop",
		EventDate:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Budget:             40000,
		ExpectedAttendance: 120,
	}
	_, user := BuildTaskPlanPrompt(event, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, strings.Contains(user, "not yet booked"))
}
