package commands_test

import (
	"context"
	"errors"
	"testing"

	"smartlogix/internal/core/application/usecases/commands"
	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/core/domain/model/tenant"
	"smartlogix/internal/core/domain/model/user"
	"smartlogix/internal/core/ports"
	"smartlogix/internal/pkg/tenantctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) AddAll(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expectedStatus order.Status) error {
	args := m.Called(ctx, o, expectedStatus)
	return args.Error(0)
}
func (m *MockOrderRepository) CountByStatus(_ context.Context) (map[order.Status]int64, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCheckpointRepository struct{ mock.Mock }

func (m *MockCheckpointRepository) LastCommittedChunk(ctx context.Context, importID string) (int, error) {
	args := m.Called(ctx, importID)
	return args.Int(0), args.Error(1)
}
func (m *MockCheckpointRepository) SaveCheckpoint(ctx context.Context, importID string, chunkIndex int) error {
	args := m.Called(ctx, importID, chunkIndex)
	return args.Error(0)
}

type MockTenantRepository struct{ mock.Mock }

func (m *MockTenantRepository) Add(ctx context.Context, t *tenant.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTenantRepository) GetActive(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}
func (m *MockTenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockImportUoW struct{ mock.Mock }

func (m *MockImportUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockImportUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockImportUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockImportUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockImportUoW) ImportCheckpointRepository() ports.ImportCheckpointRepository {
	args := m.Called()
	return args.Get(0).(ports.ImportCheckpointRepository)
}

type MockImportUoWFactory struct{ mock.Mock }

func (m *MockImportUoWFactory) Create() commands.ImportUoW {
	args := m.Called()
	return args.Get(0).(commands.ImportUoW)
}

type MockAuthUoW struct{ mock.Mock }

func (m *MockAuthUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAuthUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAuthUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAuthUoW) TenantRepository() ports.TenantRepository {
	args := m.Called()
	return args.Get(0).(ports.TenantRepository)
}
func (m *MockAuthUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockAuthUoWFactory struct{ mock.Mock }

func (m *MockAuthUoWFactory) Create() commands.AuthUoW {
	args := m.Called()
	return args.Get(0).(commands.AuthUoW)
}

type RecordingPublisher struct {
	Events []order.Event
}

func (p *RecordingPublisher) Publish(_ context.Context, event order.Event) {
	p.Events = append(p.Events, event)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	tenantID := kernel.NewUUID()
	ctx := tenantctx.WithTenant(t.Context(), tenantID)
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, "ORD-1", "books", "1 Main St", nil, nil, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingPublisher{}
	h := commands.NewCreateOrderCommandHandler(factory, publisher)

	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, order.Pending, o.Status())
	assert.True(t, o.TenantID().IsEqual(tenantID))

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, order.EventOrderCreated, publisher.Events[0].EventType)
	assert.Equal(t, id.String(), publisher.Events[0].OrderID)
	assert.Equal(t, tenantID.String(), publisher.Events[0].TenantID)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoTenantBound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-1", "", "", nil, nil, nil)

	factory := new(MockOrderUoWFactory)
	publisher := &RecordingPublisher{}
	h := commands.NewCreateOrderCommandHandler(factory, publisher)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, tenantctx.ErrTenantNotBound)
	assert.Empty(t, publisher.Events)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := tenantctx.WithTenant(t.Context(), kernel.NewUUID())
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, &RecordingPublisher{})

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	tenantID := kernel.NewUUID()
	ctx := tenantctx.WithTenant(t.Context(), tenantID)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-1", "", "", nil, nil, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingPublisher{}
	h := commands.NewCreateOrderCommandHandler(factory, publisher)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.Events)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	tenantID := kernel.NewUUID()
	ctx := tenantctx.WithTenant(t.Context(), tenantID)
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-1", "", "", nil, nil, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingPublisher{}
	h := commands.NewCreateOrderCommandHandler(factory, publisher)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.Events)
}
