package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetIncompleteOrdersQueryHandler retrieves orders that have not reached
// done. Non-staff results are scoped to the actor's own orders in SQL.
type GetIncompleteOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetIncompleteOrdersQueryHandler creates a handler for incomplete order
// queries.
func NewGetIncompleteOrdersQueryHandler(db *gorm.DB) GetIncompleteOrdersQueryHandler {
	return GetIncompleteOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID for consistent
// output.
func (h GetIncompleteOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetIncompleteOrdersQuery,
) ([]GetIncompleteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			product_id,
			customer_id,
			quantity,
			total_price,
			description,
			status
		FROM orders
		WHERE status != ?
	`
	args := []any{lifecycle.Done.String()}

	if !query.Actor().IsStaff() {
		sql += " AND customer_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	}
	sql += " ORDER BY id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetIncompleteOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, productID, customerID uuid.UUID
			quantity                  int
			totalPrice                decimal.Decimal
			description, status       string
		)

		if err = rows.Scan(&id, &productID, &customerID, &quantity, &totalPrice, &description, &status); err != nil {
			return nil, err
		}

		resp := GetIncompleteOrdersQueryResponse{
			Quantity:    quantity,
			TotalPrice:  totalPrice,
			Description: description,
			Status:      status,
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
