package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/schemas"
)

// DraftTTL bounds how long an untouched draft survives. The wizard docs
// promise 24 hours; the store's expiry is what actually enforces it.
const DraftTTL = 24 * time.Hour

// DraftStore is the single-key persistence behind the wizard draft.
// Pluggable so single-process deployments and tests can run in memory while
// production uses redis.
type DraftStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type redisDraftStore struct {
	rdb *goredis.Client
}

func NewRedisDraftStore(log *logger.Logger) (DraftStore, error) {
	addr := strings.TrimSpace(getenvDefault("REDIS_ADDR", "localhost:6379"))

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisDraftStore{rdb: rdb}, nil
}

func (s *redisDraftStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *redisDraftStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, val, ttl).Err()
}

func (s *redisDraftStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

type memoryDraftEntry struct {
	val       []byte
	expiresAt time.Time
}

type memoryDraftStore struct {
	mu      sync.Mutex
	entries map[string]memoryDraftEntry
}

func NewMemoryDraftStore() DraftStore {
	return &memoryDraftStore{entries: make(map[string]memoryDraftEntry)}
}

func (s *memoryDraftStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, false, nil
	}
	return e.val, true, nil
}

func (s *memoryDraftStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := memoryDraftEntry{val: val}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.entries[key] = entry
	return nil
}

func (s *memoryDraftStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

type DraftService interface {
	SaveDraft(ctx context.Context, userID uuid.UUID, draft schemas.EventDraft, step int) (*schemas.EventDraft, error)
	LoadDraft(ctx context.Context, userID uuid.UUID) (*schemas.EventDraft, error)
	ClearDraft(ctx context.Context, userID uuid.UUID) error
}

type draftService struct {
	log   *logger.Logger
	store DraftStore
}

func NewDraftService(log *logger.Logger, store DraftStore) DraftService {
	return &draftService{
		log:   log.With("service", "DraftService"),
		store: store,
	}
}

func draftKey(userID uuid.UUID) string {
	return "event_draft:" + userID.String()
}

// SaveDraft stamps step and saved_at, then unconditionally overwrites the
// stored draft. No merge with whatever was there before.
func (s *draftService) SaveDraft(ctx context.Context, userID uuid.UUID, draft schemas.EventDraft, step int) (*schemas.EventDraft, error) {
	draft.CurrentStep = step
	draft.SavedAt = time.Now().UTC()
	if res := schemas.ValidateEventDraft(draft); !res.OK {
		return nil, fmt.Errorf("draft failed validation: %v", res.Errors)
	}
	raw, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize draft: %w", err)
	}
	if err := s.store.Set(ctx, draftKey(userID), raw, DraftTTL); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return &draft, nil
}

// LoadDraft returns nil when no draft exists or the stored draft no longer
// validates; corrupt or incompatible drafts are discarded silently.
func (s *draftService) LoadDraft(ctx context.Context, userID uuid.UUID) (*schemas.EventDraft, error) {
	raw, found, err := s.store.Get(ctx, draftKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}
	if !found {
		return nil, nil
	}
	var draft schemas.EventDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		s.log.Warn("Discarding unparseable draft", "user_id", userID.String())
		return nil, nil
	}
	if res := schemas.ValidateEventDraft(draft); !res.OK {
		s.log.Warn("Discarding invalid draft", "user_id", userID.String(), "errors", res.Errors)
		return nil, nil
	}
	return &draft, nil
}

func (s *draftService) ClearDraft(ctx context.Context, userID uuid.UUID) error {
	return s.store.Delete(ctx, draftKey(userID))
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
