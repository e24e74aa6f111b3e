// Package dungeonsession stores generated dungeon sessions until they
// expire.
package dungeonsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dungeonsessionmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeon_session Repository

// DefaultTTL applies when a create call does not set one
const DefaultTTL = 15 * time.Minute

// CreateInput contains parameters for storing a new session
type CreateInput struct {
	Session *entities.DungeonSession
	TTL     time.Duration // How long the session should live
}

// CreateOutput contains the stored session with its timestamps set
type CreateOutput struct {
	Session *entities.DungeonSession
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *entities.DungeonSession
}

// UpdateInput contains the session to replace
type UpdateInput struct {
	Session *entities.DungeonSession
}

// UpdateOutput contains the replaced session
type UpdateOutput struct {
	Session *entities.DungeonSession
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct{}

// Repository defines the interface for dungeon session storage
type Repository interface {
	// Create stores a new session. CreatedAt, UpdatedAt and ExpiresAt are
	// set by the repository.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session. Missing and expired sessions are NotFound.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session and keeps its remaining TTL
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
