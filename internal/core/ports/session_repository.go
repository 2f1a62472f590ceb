package ports

import (
	"context"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for session aggregates.
type SessionRepository interface {
	// Add persists a new session and assigns the store-generated id back onto
	// the aggregate via SetID.
	Add(ctx context.Context, aggregate *session.Session) error

	// Update persists changes to an existing session.
	Update(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session by its identifier.
	// Returns errs.ObjectNotFoundError when no such session exists.
	Get(ctx context.Context, id kernel.ID) (*session.Session, error)

	// GetAll retrieves all sessions, newest sale date first.
	GetAll(ctx context.Context) ([]*session.Session, error)

	// Delete removes a session row. The cascade over the session's orders and
	// units is orchestrated by the delete command, not the repository.
	Delete(ctx context.Context, id kernel.ID) error
}
