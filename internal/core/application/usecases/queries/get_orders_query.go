package queries

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a session's orders with customer details and the
// assigned unit's weight where one is assigned.
type GetOrdersQuery struct {
	sessionID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve the orders of a session.
func NewGetOrdersQuery(sessionID kernel.ID) (GetOrdersQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// SessionID returns the session whose orders are requested.
func (q GetOrdersQuery) SessionID() kernel.ID {
	return q.sessionID
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderListItem is one order row of the session order list.
type OrderListItem struct {
	ID            kernel.ID
	CustomerID    kernel.ID
	CustomerName  string
	CustomerPhone string
	TargetWeight  *float64
	Portion       order.PortionType
	Size          order.SizePreference
	Status        order.Status
	UnitID        *kernel.ID
	UnitWeight    *float64
}

// GetOrdersQueryResponse carries the order list plus the pairing hint: with
// an odd number of pending half orders one of them cannot be paired until
// another half order arrives.
type GetOrdersQueryResponse struct {
	Orders                 []OrderListItem
	HasUnpairableHalfOrder bool
}
