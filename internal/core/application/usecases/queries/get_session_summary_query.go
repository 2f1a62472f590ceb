package queries

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrGetSessionSummaryQueryIsNotConstructed = errors.New(
	"GetSessionSummaryQuery must be created via NewGetSessionSummaryQuery constructor",
)

// GetSessionSummaryQuery computes the billing totals and fulfillment counts
// of one session.
type GetSessionSummaryQuery struct {
	sessionID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetSessionSummaryQuery creates a query to compute a session's summary.
func NewGetSessionSummaryQuery(sessionID kernel.ID) (GetSessionSummaryQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionSummaryQuery{}, err
	}
	return GetSessionSummaryQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// SessionID returns the session to summarize.
func (q GetSessionSummaryQuery) SessionID() kernel.ID {
	return q.sessionID
}

// Validate ensures the query was created through the constructor.
func (q GetSessionSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionSummaryQueryIsNotConstructed)
}

// GetSessionSummaryQueryResponse is the session aggregate. Orders without an
// assigned unit contribute nothing to the totals; a session with no orders
// at all yields the zero value, never an absent result.
type GetSessionSummaryQueryResponse struct {
	TotalWeight  float64
	TotalRevenue float64
	MatchedCount int64
	UnitCount    int64
	OrderCount   int64
}
