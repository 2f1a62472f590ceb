// Package queries contains read-only operations over the store.
// Implements the query side of the CQRS architecture: handlers read raw SQL
// projections and never mutate state, bypassing the aggregate constructors.
package queries

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/session"
	"farmsale/internal/pkg/guard"
)

var ErrGetSessionsQueryIsNotConstructed = errors.New(
	"GetSessionsQuery must be created via NewGetSessionsQuery constructor",
)

// GetSessionsQuery retrieves all sale sessions for the overview list,
// newest sale date first, each with its order count.
type GetSessionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSessionsQuery creates a query to retrieve all sessions.
func NewGetSessionsQuery() GetSessionsQuery {
	return GetSessionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionsQueryIsNotConstructed)
}

// GetSessionsQueryResponse is one session row of the overview list.
type GetSessionsQueryResponse struct {
	ID         kernel.ID
	Date       string
	PricePerKg float64
	Status     session.Status
	OrderCount int64
}
