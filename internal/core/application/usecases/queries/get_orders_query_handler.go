package queries

import (
	"context"
	"database/sql"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves a session's order list from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the session's orders joined with customer details and the
// assigned unit weight, invoiced first and newest first within a status.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			c.phone,
			o.target_weight,
			o.portion_type,
			o.size_preference,
			o.status,
			o.turkey_id,
			t.actual_weight
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		LEFT JOIN turkeys t ON o.turkey_id = t.id
		WHERE o.session_id = ?
		ORDER BY o.status ASC, o.created_at DESC
	`, query.SessionID().Int64()).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	response := GetOrdersQueryResponse{Orders: make([]OrderListItem, 0)}
	pendingHalves := 0

	for rows.Next() {
		var (
			item         OrderListItem
			id           int64
			customerID   int64
			targetWeight sql.NullFloat64
			portion      string
			size         sql.NullString
			status       string
			unitID       sql.NullInt64
			unitWeight   sql.NullFloat64
		)

		if err = rows.Scan(
			&id, &customerID, &item.CustomerName, &item.CustomerPhone,
			&targetWeight, &portion, &size, &status, &unitID, &unitWeight,
		); err != nil {
			return GetOrdersQueryResponse{}, err
		}

		if item.ID, err = kernel.NewID(id); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		if item.CustomerID, err = kernel.NewID(customerID); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		if item.Portion, err = order.PortionFromString(portion); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		if item.Size, err = order.SizeFromString(size.String); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		if item.Status, err = order.StatusFromString(status); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		if targetWeight.Valid {
			w := targetWeight.Float64
			item.TargetWeight = &w
		}
		if unitID.Valid {
			assigned, idErr := kernel.NewID(unitID.Int64)
			if idErr != nil {
				return GetOrdersQueryResponse{}, idErr
			}
			item.UnitID = &assigned
		}
		if unitWeight.Valid {
			w := unitWeight.Float64
			item.UnitWeight = &w
		}

		if item.Status == order.Pending && item.Portion == order.Half {
			pendingHalves++
		}

		response.Orders = append(response.Orders, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	response.HasUnpairableHalfOrder = pendingHalves%2 == 1
	return response, nil
}
