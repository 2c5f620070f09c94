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

func TestUpdateProfileCommandHandler_Handle_OwnerRenamesUsername(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateProfileCommand(
		customerActor(id), id, "jdoe2", "jdoe@example.com", "John", "Doe")
	require.NoError(t, err)

	repo := new(MockIdentityRepository)
	uow := new(MockIdentityUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentityRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(testIdentity(id), nil).Once(),
		repo.On("ExistsWithUsername", mock.Anything, "jdoe2").Return(false, nil).Once(),
		repo.On("Update", mock.Anything, mock.MatchedBy(func(i *identity.Identity) bool {
			return i.Username() == "jdoe2" && i.Email() == "jdoe@example.com"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProfileCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	// The email did not change, so its uniqueness is not rechecked.
	repo.AssertNotCalled(t, "ExistsWithEmail")
}

func TestUpdateProfileCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateProfileCommand(
		customerActor(id), id, "jdoe2", "jdoe@example.com", "John", "Doe")
	require.NoError(t, err)

	repo := new(MockIdentityRepository)
	uow := new(MockIdentityUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentityRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(testIdentity(id), nil).Once(),
		repo.On("ExistsWithUsername", mock.Anything, "jdoe2").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProfileCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateProfileCommandHandler_Handle_NonOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateProfileCommand(
		customerActor(kernel.NewUUID()), kernel.NewUUID(), "jdoe2", "jdoe@example.com", "John", "Doe")
	require.NoError(t, err)

	factory := new(MockIdentityUoWFactory)

	h := commands.NewUpdateProfileCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
