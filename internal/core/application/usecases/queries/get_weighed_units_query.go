package queries

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/unit"
	"farmsale/internal/pkg/guard"
)

var ErrGetWeighedUnitsQueryIsNotConstructed = errors.New(
	"GetWeighedUnitsQuery must be created via NewGetWeighedUnitsQuery constructor",
)

// GetWeighedUnitsQuery retrieves a session's weighed units, most recently
// weighed first, each with its derived commitment level.
type GetWeighedUnitsQuery struct {
	sessionID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetWeighedUnitsQuery creates a query to retrieve the units of a session.
func NewGetWeighedUnitsQuery(sessionID kernel.ID) (GetWeighedUnitsQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetWeighedUnitsQuery{}, err
	}
	return GetWeighedUnitsQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// SessionID returns the session whose units are requested.
func (q GetWeighedUnitsQuery) SessionID() kernel.ID {
	return q.sessionID
}

// Validate ensures the query was created through the constructor.
func (q GetWeighedUnitsQuery) Validate() error {
	return q.guard.Validate(ErrGetWeighedUnitsQueryIsNotConstructed)
}

// GetWeighedUnitsQueryResponse is one weighed unit row.
type GetWeighedUnitsQueryResponse struct {
	ID         kernel.ID
	Weight     float64
	Commitment unit.Commitment
}
