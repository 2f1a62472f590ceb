package queries

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/services"
	"farmsale/internal/pkg/guard"
)

var ErrGetMatchCandidatesQueryIsNotConstructed = errors.New(
	"GetMatchCandidatesQuery must be created via NewGetMatchCandidatesQuery constructor",
)

// GetMatchCandidatesQuery computes the selectable units for one order.
type GetMatchCandidatesQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetMatchCandidatesQuery creates a query to compute match candidates.
func NewGetMatchCandidatesQuery(orderID kernel.ID) (GetMatchCandidatesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetMatchCandidatesQuery{}, err
	}
	return GetMatchCandidatesQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the order for which candidates are requested.
func (q GetMatchCandidatesQuery) OrderID() kernel.ID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetMatchCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetMatchCandidatesQueryIsNotConstructed)
}

// MatchCandidateView is one selectable unit. PairedCustomerName is set when
// the unit is half-committed and names the customer holding the other half.
type MatchCandidateView struct {
	UnitID             kernel.ID
	Weight             float64
	PairedCustomerName string
}

// MatchCandidateGroupView is one labeled candidate group in display order.
type MatchCandidateGroupView struct {
	Kind       services.GroupKind
	Candidates []MatchCandidateView
}

// GetMatchCandidatesQueryResponse carries the allowed interaction and, for a
// pending order, the candidate groups. An empty Groups set for ActionSelect
// is the valid no-units-available state.
type GetMatchCandidatesQueryResponse struct {
	Action        services.Action
	Groups        []MatchCandidateGroupView
	HasCandidates bool
}
