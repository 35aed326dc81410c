package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chelas-api/internal/domain"
)

type mockPresenceStore struct {
	keys      map[string]bool
	setErr    error
	existsErr error

	lastTTL time.Duration
}

func newMockPresenceStore() *mockPresenceStore {
	return &mockPresenceStore{keys: map[string]bool{}}
}

func (m *mockPresenceStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	m.keys[key] = true
	m.lastTTL = expiration
	cmd.SetVal("OK")
	return cmd
}

func (m *mockPresenceStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	for _, key := range keys {
		delete(m.keys, key)
	}
	cmd.SetVal(int64(len(keys)))
	return cmd
}

func (m *mockPresenceStore) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if m.existsErr != nil {
		cmd.SetErr(m.existsErr)
		return cmd
	}
	var n int64
	for _, key := range keys {
		if m.keys[key] {
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func presenceServiceWithStore(profiles *mockProfileRepo, store presenceStore, ttl time.Duration) *PresenceService {
	svc := NewPresenceService(zap.NewNop(), profiles, nil, ttl)
	svc.store = store
	return svc
}

func TestSetAvailableUpdatesFlagAndPresence(t *testing.T) {
	profiles := newMockProfileRepo()
	store := newMockPresenceStore()
	svc := presenceServiceWithStore(profiles, store, time.Minute)

	if err := svc.SetAvailable(context.Background(), "user-1", true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !profiles.availabilityCalls["user-1"] {
		t.Fatalf("expected is_available set in db")
	}
	if !store.keys[presenceKeyPrefix+"user-1"] {
		t.Fatalf("expected presence key set")
	}
	if store.lastTTL != time.Minute {
		t.Fatalf("expected ttl forwarded, got %v", store.lastTTL)
	}

	if err := svc.SetAvailable(context.Background(), "user-1", false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.keys[presenceKeyPrefix+"user-1"] {
		t.Fatalf("expected presence key removed")
	}
}

func TestSetAvailableDBFailure(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.setAvailabilityErr = errBoom
	svc := presenceServiceWithStore(profiles, newMockPresenceStore(), time.Minute)

	if err := svc.SetAvailable(context.Background(), "user-1", true); err == nil {
		t.Fatalf("expected error when db update fails")
	}
}

func TestListLobbyFiltersExpiredPresence(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.available = []domain.Profile{
		{ID: "user-2", Name: "Grace"},
		{ID: "user-3", Name: "Linus"},
	}

	store := newMockPresenceStore()
	store.keys[presenceKeyPrefix+"user-2"] = true

	svc := presenceServiceWithStore(profiles, store, time.Minute)

	lobby, err := svc.ListLobby(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lobby) != 1 || lobby[0].ID != "user-2" {
		t.Fatalf("expected only live profiles, got %+v", lobby)
	}
}

func TestListLobbyWithoutRedis(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.available = []domain.Profile{{ID: "user-2"}}

	svc := NewPresenceService(zap.NewNop(), profiles, nil, time.Minute)

	lobby, err := svc.ListLobby(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lobby) != 1 {
		t.Fatalf("expected db-only lobby, got %+v", lobby)
	}
}

func TestListLobbyRedisFailureDegradesToDB(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.available = []domain.Profile{{ID: "user-2"}, {ID: "user-3"}}

	store := newMockPresenceStore()
	store.existsErr = errBoom

	svc := presenceServiceWithStore(profiles, store, time.Minute)

	lobby, err := svc.ListLobby(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lobby) != 2 {
		t.Fatalf("expected full db list on redis failure, got %+v", lobby)
	}
}

func TestHeartbeatRefreshesKey(t *testing.T) {
	store := newMockPresenceStore()
	svc := presenceServiceWithStore(newMockProfileRepo(), store, time.Minute)

	if err := svc.Heartbeat(context.Background(), "user-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !store.keys[presenceKeyPrefix+"user-1"] {
		t.Fatalf("expected presence key refreshed")
	}
}
