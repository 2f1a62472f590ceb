package queries

import (
	"context"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/unit"

	"gorm.io/gorm"
)

// GetWeighedUnitsQueryHandler retrieves a session's weighed units from the
// database.
type GetWeighedUnitsQueryHandler struct {
	db *gorm.DB
}

// NewGetWeighedUnitsQueryHandler creates a handler for weighed unit queries.
func NewGetWeighedUnitsQueryHandler(db *gorm.DB) GetWeighedUnitsQueryHandler {
	return GetWeighedUnitsQueryHandler{db: db}
}

// Handle returns the session's units, most recently weighed first. The
// commitment level is derived from the referencing orders: a whole order
// claims both halves of its unit, a half order claims one.
func (h GetWeighedUnitsQueryHandler) Handle(
	ctx context.Context,
	query GetWeighedUnitsQuery,
) ([]GetWeighedUnitsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	units := make([]GetWeighedUnitsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.actual_weight,
			COALESCE(SUM(CASE WHEN o.portion_type = 'whole' THEN 2 ELSE 1 END), 0) AS claims
		FROM turkeys t
		LEFT JOIN orders o ON o.turkey_id = t.id
		WHERE t.session_id = ?
		GROUP BY t.id, t.actual_weight, t.created_at
		ORDER BY t.created_at DESC
	`, query.SessionID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetWeighedUnitsQueryResponse
		var id int64
		var claims int64

		if err = rows.Scan(&id, &resp.Weight, &claims); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}

		switch {
		case claims >= 2:
			resp.Commitment = unit.FullyCommitted
		case claims == 1:
			resp.Commitment = unit.HalfCommitted
		default:
			resp.Commitment = unit.Uncommitted
		}

		units = append(units, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}
