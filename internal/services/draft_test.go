package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/schemas"
)

func newDraftService(t *testing.T) (DraftService, DraftStore) {
	t.Helper()
	log, err := logger.New("development")
	require.NoError(t, err)
	store := NewMemoryDraftStore()
	return NewDraftService(log, store), store
}

func sampleDraft() schemas.EventDraft {
	name := "Resort Pop-Up"
	eventType := "pop_up_shop"
	budget := 42000.0
	return schemas.EventDraft{
		Name:      &name,
		EventType: &eventType,
		Budget:    &budget,
	}
}

func TestDraftService_SaveThenLoadRoundTrip(t *testing.T) {
	svc, _ := newDraftService(t)
	ctx := context.Background()
	userID := uuid.New()

	saved, err := svc.SaveDraft(ctx, userID, sampleDraft(), 3)
	require.NoError(t, err)
	require.Equal(t, 3, saved.CurrentStep)
	require.False(t, saved.SavedAt.IsZero())

	loaded, err := svc.LoadDraft(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "Resort Pop-Up", *loaded.Name)
	require.Equal(t, "pop_up_shop", *loaded.EventType)
	require.Equal(t, 42000.0, *loaded.Budget)
	require.Equal(t, 3, loaded.CurrentStep)
}

func TestDraftService_SaveOverwritesExistingDraft(t *testing.T) {
	svc, _ := newDraftService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.SaveDraft(ctx, userID, sampleDraft(), 2)
	require.NoError(t, err)

	second := schemas.EventDraft{}
	name := "Renamed Show"
	second.Name = &name
	_, err = svc.SaveDraft(ctx, userID, second, 4)
	require.NoError(t, err)

	loaded, err := svc.LoadDraft(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "Renamed Show", *loaded.Name)
	require.Equal(t, 4, loaded.CurrentStep)
	// Overwrite, not merge: fields from the first save are gone.
	require.Nil(t, loaded.EventType)
	require.Nil(t, loaded.Budget)
}

func TestDraftService_SaveRejectsInvalidStep(t *testing.T) {
	svc, _ := newDraftService(t)
	_, err := svc.SaveDraft(context.Background(), uuid.New(), sampleDraft(), 0)
	require.Error(t, err)
	_, err = svc.SaveDraft(context.Background(), uuid.New(), sampleDraft(), 7)
	require.Error(t, err)
}

func TestDraftService_SaveRejectsInvalidFields(t *testing.T) {
	svc, _ := newDraftService(t)
	d := sampleDraft()
	badBudget := 0.0
	d.Budget = &badBudget
	_, err := svc.SaveDraft(context.Background(), uuid.New(), d, 3)
	require.Error(t, err)
}

func TestDraftService_LoadMissingReturnsNil(t *testing.T) {
	svc, _ := newDraftService(t)
	loaded, err := svc.LoadDraft(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestDraftService_LoadDiscardsCorruptDraft(t *testing.T) {
	svc, store := newDraftService(t)
	userID := uuid.New()
	require.NoError(t, store.Set(context.Background(), draftKey(userID), []byte("{not json"), DraftTTL))

	loaded, err := svc.LoadDraft(context.Background(), userID)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestDraftService_LoadDiscardsDraftThatNoLongerValidates(t *testing.T) {
	svc, store := newDraftService(t)
	userID := uuid.New()
	// Valid JSON, invalid content: step out of range.
	require.NoError(t, store.Set(context.Background(), draftKey(userID), []byte(`{"current_step":9,"saved_at":"2026-05-01T10:00:00Z"}`), DraftTTL))

	loaded, err := svc.LoadDraft(context.Background(), userID)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestDraftService_ClearRemovesDraft(t *testing.T) {
	svc, _ := newDraftService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.SaveDraft(ctx, userID, sampleDraft(), 2)
	require.NoError(t, err)
	require.NoError(t, svc.ClearDraft(ctx, userID))

	loaded, err := svc.LoadDraft(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestDraftService_ClearIsIdempotent(t *testing.T) {
	svc, _ := newDraftService(t)
	require.NoError(t, svc.ClearDraft(context.Background(), uuid.New()))
}

func TestMemoryDraftStore_ExpiredEntryNotReturned(t *testing.T) {
	store := &memoryDraftStore{entries: map[string]memoryDraftEntry{
		"k": {val: []byte("v"), expiresAt: time.Now().Add(-time.Second)},
	}}
	_, found, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	require.False(t, found)
}
