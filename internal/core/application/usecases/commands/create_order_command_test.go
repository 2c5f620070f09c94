package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Valid(t *testing.T) {
	actor := customerActor(kernel.NewUUID())
	cmd, err := commands.NewCreateOrderCommand(
		actor, kernel.NewUUID(), kernel.NewUUID(), nil, 2, "gift wrap", nil, nil)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, 2, cmd.Quantity())
	require.Equal(t, "gift wrap", cmd.Description())
	require.Nil(t, cmd.CustomerID())
	require.Nil(t, cmd.Status())
	require.Nil(t, cmd.TotalPrice())
}

func TestNewCreateOrderCommand_OptionalFields(t *testing.T) {
	customerID := kernel.NewUUID()
	status := lifecycle.InProduction
	price, err := kernel.PriceFromFloat(12.50)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		staffActor(), kernel.NewUUID(), kernel.NewUUID(), &customerID, 1, "", &status, &price)
	require.NoError(t, err)
	require.True(t, cmd.CustomerID().IsEqual(customerID))
	require.Equal(t, lifecycle.InProduction, *cmd.Status())
	require.True(t, cmd.TotalPrice().IsEqual(price))
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	actor := customerActor(kernel.NewUUID())
	badStatus := lifecycle.Unknown

	tests := map[string]func() (commands.CreateOrderCommand, error){
		"zero actor": func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				identity.Actor{}, kernel.NewUUID(), kernel.NewUUID(), nil, 1, "", nil, nil)
		},
		"zero order id": func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				actor, kernel.UUID{}, kernel.NewUUID(), nil, 1, "", nil, nil)
		},
		"zero product id": func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				actor, kernel.NewUUID(), kernel.UUID{}, nil, 1, "", nil, nil)
		},
		"zero quantity": func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				actor, kernel.NewUUID(), kernel.NewUUID(), nil, 0, "", nil, nil)
		},
		"negative quantity": func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				actor, kernel.NewUUID(), kernel.NewUUID(), nil, -5, "", nil, nil)
		},
		"unknown status": func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				actor, kernel.NewUUID(), kernel.NewUUID(), nil, 1, "", &badStatus, nil)
		},
		"unconstructed total price": func() (commands.CreateOrderCommand, error) {
			return commands.NewCreateOrderCommand(
				actor, kernel.NewUUID(), kernel.NewUUID(), nil, 1, "", nil, &kernel.Price{})
		},
	}

	for name, create := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := create()
			require.Error(t, err)
		})
	}
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
