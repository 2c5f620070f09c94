package commands_test

import (
	"context"
	"errors"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/dnaservice"
	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllInReadyStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockDNAServiceRepository struct{ mock.Mock }

func (m *MockDNAServiceRepository) Add(ctx context.Context, s *dnaservice.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockDNAServiceRepository) Update(_ context.Context, _ *dnaservice.Service) error {
	return errors.New("not implemented in mock")
}
func (m *MockDNAServiceRepository) Get(_ context.Context, _ kernel.UUID) (*dnaservice.Service, error) {
	return nil, errors.New("not implemented in mock")
}

type MockIdentityRepository struct{ mock.Mock }

func (m *MockIdentityRepository) Add(ctx context.Context, i *identity.Identity) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockIdentityRepository) Update(ctx context.Context, i *identity.Identity) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}
func (m *MockIdentityRepository) ExistsWithUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}
func (m *MockIdentityRepository) ExistsWithEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderReady(ctx context.Context, address string, orderID kernel.UUID) error {
	args := m.Called(ctx, address, orderID)
	return args.Error(0)
}

// txMock is the shared transaction surface of the unit-of-work mocks.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProductUoW struct{ txMock }

func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockOrderUoW struct{ txMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockOrderUoW) IdentityRepository() ports.IdentityRepository {
	args := m.Called()
	return args.Get(0).(ports.IdentityRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockServiceUoW struct{ txMock }

func (m *MockServiceUoW) DNAServiceRepository() ports.DNAServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.DNAServiceRepository)
}
func (m *MockServiceUoW) IdentityRepository() ports.IdentityRepository {
	args := m.Called()
	return args.Get(0).(ports.IdentityRepository)
}

type MockServiceUoWFactory struct{ mock.Mock }

func (m *MockServiceUoWFactory) Create() commands.ServiceUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceUoW)
}

type MockIdentityUoW struct{ txMock }

func (m *MockIdentityUoW) IdentityRepository() ports.IdentityRepository {
	args := m.Called()
	return args.Get(0).(ports.IdentityRepository)
}

type MockIdentityUoWFactory struct{ mock.Mock }

func (m *MockIdentityUoWFactory) Create() commands.IdentityUoW {
	args := m.Called()
	return args.Get(0).(commands.IdentityUoW)
}

type MockSweepUoW struct{ txMock }

func (m *MockSweepUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockSweepUoW) IdentityRepository() ports.IdentityRepository {
	args := m.Called()
	return args.Get(0).(ports.IdentityRepository)
}

type MockSweepUoWFactory struct{ mock.Mock }

func (m *MockSweepUoWFactory) Create() commands.SweepUoW {
	args := m.Called()
	return args.Get(0).(commands.SweepUoW)
}

// Test fixtures shared by the handler tests.

func staffActor() identity.Actor {
	actor, _ := identity.NewActor(kernel.NewUUID(), identity.RoleStaff, true)
	return actor
}

func customerActor(id kernel.UUID) identity.Actor {
	actor, _ := identity.NewActor(id, identity.RoleCustomer, true)
	return actor
}

func testIdentity(id kernel.UUID) *identity.Identity {
	i, _ := identity.NewIdentity(id, "jdoe", "jdoe@example.com", "John", "Doe",
		identity.RoleCustomer, "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef")
	return i
}

func testProduct(id kernel.UUID) *product.Product {
	price, _ := kernel.PriceFromFloat(9.99)
	p, _ := product.NewProduct(id, "Sequencing Kit", "", price)
	return p
}
