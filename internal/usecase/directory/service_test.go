package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/teampulse/team-pulse/internal/adapter/repository/memory"
	"github.com/teampulse/team-pulse/internal/domain/entities"
	"github.com/teampulse/team-pulse/internal/domain/repositories"
	"github.com/teampulse/team-pulse/internal/infrastructure/cache"
	usecaseErrors "github.com/teampulse/team-pulse/internal/usecase/errors"
)

func newRedisStore(t *testing.T) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewRedisStore(client), mr
}

func seedEntry(repo *memory.DirectoryRepository, kind entities.EntityKind, id, name string) {
	repo.Put(&entities.DirectoryEntry{Kind: kind, ID: id, Name: name, Active: true})
}

func TestResolveName_HitAndCache(t *testing.T) {
	store, mr := newRedisStore(t)
	repo := memory.NewDirectoryRepository()
	seedEntry(repo, entities.EntityKindTeamMember, "bob", "Bob Chen")

	svc := NewService(repo, store, zap.NewNop(), time.Minute)
	ref := entities.EntityRef{Kind: entities.EntityKindTeamMember, ID: "bob"}

	if name := svc.ResolveName(context.Background(), ref); name != "Bob Chen" {
		t.Fatalf("expected Bob Chen, got %q", name)
	}

	// The name is now cached; a direct hit must not touch the repository.
	repo.Remove(ref)
	if name := svc.ResolveName(context.Background(), ref); name != "Bob Chen" {
		t.Fatalf("expected cached name, got %q", name)
	}

	// Once the cache entry expires, the missing entry resolves to "".
	mr.FastForward(2 * time.Minute)
	if name := svc.ResolveName(context.Background(), ref); name != "" {
		t.Fatalf("expected empty name after expiry, got %q", name)
	}
}

func TestResolveName_MissingAndMalformed(t *testing.T) {
	store, _ := newRedisStore(t)
	svc := NewService(memory.NewDirectoryRepository(), store, zap.NewNop(), time.Minute)

	if name := svc.ResolveName(context.Background(), entities.EntityRef{Kind: entities.EntityKindPeer, ID: "ghost"}); name != "" {
		t.Fatalf("missing entry must resolve to empty, got %q", name)
	}
	if name := svc.ResolveName(context.Background(), entities.EntityRef{Kind: "martian", ID: "zork"}); name != "" {
		t.Fatalf("malformed ref must resolve to empty, got %q", name)
	}
	if name := svc.ResolveName(context.Background(), entities.EntityRef{Kind: entities.EntityKindPeer}); name != "" {
		t.Fatalf("empty id must resolve to empty, got %q", name)
	}
}

type failingDirectory struct {
	repositories.DirectoryRepository
}

func (failingDirectory) List(context.Context, entities.EntityKind) ([]*entities.DirectoryEntry, error) {
	return nil, errors.New("directory down")
}

func (failingDirectory) FindByRef(context.Context, entities.EntityRef) (*entities.DirectoryEntry, error) {
	return nil, errors.New("directory down")
}

func TestDirectoryOutage_Degrades(t *testing.T) {
	store, _ := newRedisStore(t)
	svc := NewService(failingDirectory{}, store, zap.NewNop(), time.Minute)

	if name := svc.ResolveName(context.Background(), entities.EntityRef{Kind: entities.EntityKindTeamMember, ID: "bob"}); name != "" {
		t.Fatalf("outage must resolve to empty name, got %q", name)
	}

	entries, err := svc.List(context.Background(), entities.EntityKindTeamMember)
	if err != nil {
		t.Fatalf("List must degrade, not fail: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty roster, got %d entries", len(entries))
	}
}

func TestList_SortedByName(t *testing.T) {
	store, _ := newRedisStore(t)
	repo := memory.NewDirectoryRepository()
	seedEntry(repo, entities.EntityKindPeer, "c1", "Zoe")
	seedEntry(repo, entities.EntityKindPeer, "c2", "Amir")
	seedEntry(repo, entities.EntityKindProject, "apollo", "Apollo")

	svc := NewService(repo, store, zap.NewNop(), time.Minute)

	entries, err := svc.List(context.Background(), entities.EntityKindPeer)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 peers, got %d", len(entries))
	}
	if entries[0].Name != "Amir" || entries[1].Name != "Zoe" {
		t.Fatalf("entries must be sorted by name: %q, %q", entries[0].Name, entries[1].Name)
	}

	if _, err := svc.List(context.Background(), "martian"); !errors.Is(err, usecaseErrors.ErrUnknownEntityKind) {
		t.Fatalf("expected ErrUnknownEntityKind, got %v", err)
	}
}

func TestGet(t *testing.T) {
	store, _ := newRedisStore(t)
	repo := memory.NewDirectoryRepository()
	seedEntry(repo, entities.EntityKindStakeholder, "vp-eng", "VP Engineering")

	svc := NewService(repo, store, zap.NewNop(), time.Minute)

	entry, err := svc.Get(context.Background(), entities.EntityRef{Kind: entities.EntityKindStakeholder, ID: "vp-eng"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.Name != "VP Engineering" {
		t.Fatalf("unexpected name %q", entry.Name)
	}

	if _, err := svc.Get(context.Background(), entities.EntityRef{Kind: entities.EntityKindStakeholder, ID: "ghost"}); !errors.Is(err, usecaseErrors.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), entities.EntityRef{Kind: "martian", ID: "x"}); !errors.Is(err, usecaseErrors.ErrInvalidEntityRef) {
		t.Fatalf("expected ErrInvalidEntityRef, got %v", err)
	}
}
