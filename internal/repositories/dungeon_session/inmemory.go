package dungeonsession

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

// InMemoryRepository implements Repository with a map. Expired sessions are
// dropped when they are next read.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]entities.DungeonSession
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]entities.DungeonSession),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	session := *input.Session
	now := r.clock.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[session.ID] = session

	out := session
	return &CreateOutput{Session: &out}, nil
}

func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.live(input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: &session}, nil
}

func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.live(input.Session.ID)
	if err != nil {
		return nil, err
	}

	session := *input.Session
	session.CreatedAt = existing.CreatedAt
	session.ExpiresAt = existing.ExpiresAt
	session.UpdatedAt = r.clock.Now()
	r.store[session.ID] = session

	out := session
	return &UpdateOutput{Session: &out}, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.live(input.ID); err != nil {
		return nil, err
	}
	delete(r.store, input.ID)
	return &DeleteOutput{}, nil
}

// live returns a copy of an unexpired session. Callers hold the write lock.
func (r *InMemoryRepository) live(id string) (entities.DungeonSession, error) {
	session, ok := r.store[id]
	if !ok {
		return entities.DungeonSession{}, errors.NotFound(errSessionMissing).WithMeta("session_id", id)
	}
	if !r.clock.Now().Before(session.ExpiresAt) {
		delete(r.store, id)
		return entities.DungeonSession{}, errors.NotFound(errSessionExpired).WithMeta("session_id", id)
	}
	return session, nil
}
