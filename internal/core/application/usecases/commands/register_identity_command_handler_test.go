package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orgActor() identity.Actor {
	actor, _ := identity.NewActor(kernel.NewUUID(), identity.RoleOrganization, true)
	return actor
}

func registerCommand(t *testing.T, actor identity.Actor, role identity.Role) commands.RegisterIdentityCommand {
	t.Helper()
	cmd, err := commands.NewRegisterIdentityCommand(
		actor, kernel.NewUUID(), "jdoe", "jdoe@example.com", "John", "Doe", role, "sup3rsecret")
	require.NoError(t, err)
	return cmd
}

func TestRegisterIdentityCommandHandler_Handle_OrgRegistersCustomer(t *testing.T) {
	ctx := t.Context()
	cmd := registerCommand(t, orgActor(), identity.RoleCustomer)

	repo := new(MockIdentityRepository)
	uow := new(MockIdentityUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentityRepository").Return(repo).Once(),
		repo.On("ExistsWithUsername", mock.Anything, "jdoe").Return(false, nil).Once(),
		repo.On("ExistsWithEmail", mock.Anything, "jdoe@example.com").Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(i *identity.Identity) bool {
			return i.Role() == identity.RoleCustomer && i.IsActive() && i.VerifyPassword("sup3rsecret")
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterIdentityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterIdentityCommandHandler_Handle_OrgCannotRegisterStaff(t *testing.T) {
	ctx := t.Context()
	cmd := registerCommand(t, orgActor(), identity.RoleStaff)

	factory := new(MockIdentityUoWFactory)

	h := commands.NewRegisterIdentityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterIdentityCommandHandler_Handle_CustomerCannotRegister(t *testing.T) {
	ctx := t.Context()
	cmd := registerCommand(t, customerActor(kernel.NewUUID()), identity.RoleCustomer)

	factory := new(MockIdentityUoWFactory)

	h := commands.NewRegisterIdentityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterIdentityCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()
	cmd := registerCommand(t, staffActor(), identity.RoleCustomer)

	repo := new(MockIdentityRepository)
	uow := new(MockIdentityUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentityRepository").Return(repo).Once(),
		repo.On("ExistsWithUsername", mock.Anything, "jdoe").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterIdentityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Add")
	uow.AssertExpectations(t)
}

func TestRegisterIdentityCommandHandler_Handle_ShortPassword(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterIdentityCommand(
		staffActor(), kernel.NewUUID(), "jdoe", "jdoe@example.com", "John", "Doe",
		identity.RoleCustomer, "short")
	require.NoError(t, err)

	factory := new(MockIdentityUoWFactory)

	h := commands.NewRegisterIdentityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}
