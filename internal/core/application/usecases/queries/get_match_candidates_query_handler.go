package queries

import (
	"context"
	"database/sql"
	"time"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/core/domain/model/unit"
	"farmsale/internal/core/domain/services"
	"farmsale/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMatchCandidatesQueryHandler computes the candidate plan for one order.
//
// Unlike the other read handlers this one goes through the domain model: it
// restores the order's session state and delegates the grouping decision to
// the match planner, so the read side can never disagree with what the match
// command would accept.
type GetMatchCandidatesQueryHandler struct {
	db      *gorm.DB
	planner services.MatchPlanner
}

// NewGetMatchCandidatesQueryHandler creates a handler for candidate queries.
func NewGetMatchCandidatesQueryHandler(db *gorm.DB) GetMatchCandidatesQueryHandler {
	return GetMatchCandidatesQueryHandler{db: db, planner: services.NewMatchPlanner()}
}

// Handle returns the allowed action and the candidate groups for the order,
// with paired customers resolved to their names.
func (h GetMatchCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetMatchCandidatesQuery,
) (GetMatchCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMatchCandidatesQueryResponse{}, err
	}

	sessionOrders, subject, err := h.loadSessionOrders(ctx, query.OrderID())
	if err != nil {
		return GetMatchCandidatesQueryResponse{}, err
	}

	sessionUnits, err := h.loadSessionUnits(ctx, subject.SessionID())
	if err != nil {
		return GetMatchCandidatesQueryResponse{}, err
	}

	plan, err := h.planner.Plan(subject, sessionUnits, sessionOrders)
	if err != nil {
		return GetMatchCandidatesQueryResponse{}, err
	}

	names, err := h.loadCustomerNames(ctx, subject.SessionID())
	if err != nil {
		return GetMatchCandidatesQueryResponse{}, err
	}

	response := GetMatchCandidatesQueryResponse{
		Action:        plan.Action,
		Groups:        make([]MatchCandidateGroupView, 0, len(plan.Groups)),
		HasCandidates: plan.HasCandidates(),
	}
	for _, group := range plan.Groups {
		view := MatchCandidateGroupView{
			Kind:       group.Kind,
			Candidates: make([]MatchCandidateView, 0, len(group.Candidates)),
		}
		for _, candidate := range group.Candidates {
			view.Candidates = append(view.Candidates, MatchCandidateView{
				UnitID:             candidate.Unit.ID(),
				Weight:             candidate.Unit.Weight().Float64(),
				PairedCustomerName: names[candidate.PairedCustomerID],
			})
		}
		response.Groups = append(response.Groups, view)
	}
	return response, nil
}

// loadSessionOrders loads the complete order set of the subject order's
// session in one round trip and singles out the subject itself.
func (h GetMatchCandidatesQueryHandler) loadSessionOrders(
	ctx context.Context, orderID kernel.ID,
) ([]*order.Order, *order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, session_id, customer_id, target_weight, portion_type,
			size_preference, status, turkey_id
		FROM orders
		WHERE session_id = (SELECT session_id FROM orders WHERE id = ?)
	`, orderID.Int64()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var sessionOrders []*order.Order
	var subject *order.Order

	for rows.Next() {
		aggregate, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, nil, scanErr
		}
		sessionOrders = append(sessionOrders, aggregate)
		if aggregate.ID() == orderID {
			subject = aggregate
		}
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	if subject == nil {
		return nil, nil, errs.NewObjectNotFoundError("order", orderID)
	}
	return sessionOrders, subject, nil
}

// loadSessionUnits loads the session's units lightest first, the order the
// uncommitted groups are presented in.
func (h GetMatchCandidatesQueryHandler) loadSessionUnits(
	ctx context.Context, sessionID kernel.ID,
) ([]*unit.WeighedUnit, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, session_id, actual_weight, created_at
		FROM turkeys
		WHERE session_id = ?
		ORDER BY actual_weight ASC
	`, sessionID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*unit.WeighedUnit
	for rows.Next() {
		var (
			id        int64
			owner     int64
			weight    float64
			weighedAt string
		)
		if err = rows.Scan(&id, &owner, &weight, &weighedAt); err != nil {
			return nil, err
		}

		unitID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.NewID(owner)
		if idErr != nil {
			return nil, idErr
		}
		unitWeight, weightErr := kernel.NewWeight(weight)
		if weightErr != nil {
			return nil, weightErr
		}

		aggregate, restoreErr := unit.RestoreWeighedUnit(
			unitID, ownerID, unitWeight, parseTimestamp(weighedAt))
		if restoreErr != nil {
			return nil, restoreErr
		}
		units = append(units, aggregate)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return units, nil
}

// loadCustomerNames maps the session's ordering customers to their names.
func (h GetMatchCandidatesQueryHandler) loadCustomerNames(
	ctx context.Context, sessionID kernel.ID,
) (map[kernel.ID]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT c.id, c.name
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		WHERE o.session_id = ?
	`, sessionID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[kernel.ID]string)
	for rows.Next() {
		var id int64
		var name string
		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		customerID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		names[customerID] = name
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// scanOrderRow restores an order aggregate from a raw orders row.
func scanOrderRow(rows *sql.Rows) (*order.Order, error) {
	var (
		id           int64
		sessionID    int64
		customerID   int64
		targetWeight sql.NullFloat64
		portion      string
		size         sql.NullString
		status       string
		unitID       sql.NullInt64
	)
	if err := rows.Scan(
		&id, &sessionID, &customerID, &targetWeight, &portion, &size, &status, &unitID,
	); err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(id)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.NewID(sessionID)
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.NewID(customerID)
	if err != nil {
		return nil, err
	}

	spec, err := restoreSpec(targetWeight, portion, size)
	if err != nil {
		return nil, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return nil, err
	}

	var assigned *kernel.ID
	if unitID.Valid {
		assignedID, idErr := kernel.NewID(unitID.Int64)
		if idErr != nil {
			return nil, idErr
		}
		assigned = &assignedID
	}

	return order.RestoreOrder(orderID, ownerID, buyerID, spec, orderStatus, assigned)
}

// restoreSpec rebuilds the spec variant from its persisted columns: a non-null
// target weight means weight mode, everything else is category mode.
func restoreSpec(
	targetWeight sql.NullFloat64, portion string, size sql.NullString,
) (order.Spec, error) {
	if targetWeight.Valid {
		target, err := kernel.NewWeight(targetWeight.Float64)
		if err != nil {
			return nil, err
		}
		spec, err := order.NewWeightSpec(target)
		if err != nil {
			return nil, err
		}
		return spec, nil
	}

	portionType, err := order.PortionFromString(portion)
	if err != nil {
		return nil, err
	}
	sizePreference, err := order.SizeFromString(size.String)
	if err != nil {
		return nil, err
	}
	spec, err := order.NewCategorySpec(portionType, sizePreference)
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// timestampLayout is how SQLite's CURRENT_TIMESTAMP renders into TEXT columns.
const timestampLayout = "2006-01-02 15:04:05"

func parseTimestamp(value string) time.Time {
	parsed, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
