package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetIdentitiesQueryHandler retrieves the accounts listing for staff.
type GetIdentitiesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetIdentitiesQueryHandler creates a handler for the accounts listing.
func NewGetIdentitiesQueryHandler(db *gorm.DB) GetIdentitiesQueryHandler {
	return GetIdentitiesQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the query. Non-staff callers are rejected before any read
// happens.
func (h GetIdentitiesQueryHandler) Handle(
	ctx context.Context,
	query GetIdentitiesQuery,
) ([]GetIdentitiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.Actor(), services.ActionListIdentities, query.Actor().ID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			first_name,
			last_name,
			role,
			is_active
		FROM identities
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	identities := make([]GetIdentitiesQueryResponse, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			resp GetIdentitiesQueryResponse
		)

		if err = rows.Scan(
			&id, &resp.Username, &resp.Email, &resp.FirstName, &resp.LastName, &resp.Role, &resp.IsActive,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		identities = append(identities, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return identities, nil
}
