package queries

import (
	"context"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/session"

	"gorm.io/gorm"
)

// GetSessionsQueryHandler retrieves the session overview from the database.
type GetSessionsQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionsQueryHandler creates a handler for session overview queries.
func NewGetSessionsQueryHandler(db *gorm.DB) GetSessionsQueryHandler {
	return GetSessionsQueryHandler{db: db}
}

// Handle returns all sessions, newest sale date first, with order counts.
func (h GetSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetSessionsQuery,
) ([]GetSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions := make([]GetSessionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.date,
			s.price_per_kg,
			s.status,
			COALESCE(c.order_count, 0) AS order_count
		FROM sessions s
		LEFT JOIN (
			SELECT session_id, COUNT(*) AS order_count
			FROM orders
			GROUP BY session_id
		) c ON s.id = c.session_id
		ORDER BY s.date DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSessionsQueryResponse
		var id int64
		var status string

		if err = rows.Scan(&id, &resp.Date, &resp.PricePerKg, &status, &resp.OrderCount); err != nil {
			return nil, err
		}

		sessionID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = sessionID

		sessionStatus, statusErr := session.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = sessionStatus

		sessions = append(sessions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
