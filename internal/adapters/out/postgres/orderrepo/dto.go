// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and its database shape.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is indexed for the sweep's ready-order scan; the
// version column backs compare-and-set updates.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid;index"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;index"`
	Quantity    int             `gorm:"not null"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Description string
	Status      string `gorm:"type:varchar(16);index"`
	Version     int    `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		ProductID:   aggregate.ProductID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Quantity:    aggregate.Quantity(),
		TotalPrice:  aggregate.TotalPrice().Decimal(),
		Description: aggregate.Description(),
		Status:      aggregate.Status().String(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	status, err := lifecycle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, productID, customerID, dto.Quantity, totalPrice, dto.Description, status, dto.Version)
}
