package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSessionSummaryQueryHandler computes session totals in the database.
type GetSessionSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionSummaryQueryHandler creates a handler for session summaries.
func NewGetSessionSummaryQueryHandler(db *gorm.DB) GetSessionSummaryQueryHandler {
	return GetSessionSummaryQueryHandler{db: db}
}

// Handle computes the session aggregate. A half order bills exactly half its
// unit's weight, so a unit shared by two half orders is counted once in full.
func (h GetSessionSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetSessionSummaryQuery,
) (GetSessionSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionSummaryQueryResponse{}, err
	}

	var summary GetSessionSummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN o.portion_type = 'half'
				THEN t.actual_weight / 2.0
				ELSE t.actual_weight END), 0) AS total_weight,
			COALESCE(SUM(CASE WHEN o.portion_type = 'half'
				THEN t.actual_weight / 2.0
				ELSE t.actual_weight END * s.price_per_kg), 0) AS total_revenue,
			COUNT(t.id) AS matched_count,
			(SELECT COUNT(*) FROM turkeys WHERE session_id = ?) AS unit_count,
			(SELECT COUNT(*) FROM orders WHERE session_id = ?) AS order_count
		FROM orders o
		JOIN sessions s ON o.session_id = s.id
		LEFT JOIN turkeys t ON o.turkey_id = t.id
		WHERE o.session_id = ? AND o.turkey_id IS NOT NULL
	`,
		query.SessionID().Int64(),
		query.SessionID().Int64(),
		query.SessionID().Int64(),
	).Row()

	if err := row.Scan(
		&summary.TotalWeight,
		&summary.TotalRevenue,
		&summary.MatchedCount,
		&summary.UnitCount,
		&summary.OrderCount,
	); err != nil {
		return GetSessionSummaryQueryResponse{}, err
	}

	return summary, nil
}
