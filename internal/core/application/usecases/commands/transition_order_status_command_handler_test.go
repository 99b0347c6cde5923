package commands_test

import (
	"errors"
	"testing"

	"smartlogix/internal/core/application/usecases/commands"
	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/tenantctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewTransitionOrderStatusCommand(id, order.Approved)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.Approved, cmd.NextStatus())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewTransitionOrderStatusCommand(invalidID, order.Approved)

		require.Error(t, err)
	})

	t.Run("should fail with unknown target status", func(t *testing.T) {
		_, err := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), order.Unknown)

		require.Error(t, err)
	})
}

func pendingOrder(t *testing.T, tenantID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-100", "", "", tenantID)
	require.NoError(t, err)
	return o
}

func TestTransitionOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	tenantID := kernel.NewUUID()
	ctx := tenantctx.WithTenant(t.Context(), tenantID)
	o := pendingOrder(t, tenantID)
	cmd, _ := commands.NewTransitionOrderStatusCommand(o.ID(), order.Approved)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingPublisher{}
	h := commands.NewTransitionOrderStatusCommandHandler(factory, publisher)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Approved, updated.Status())

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, order.EventOrderStatusChanged, publisher.Events[0].EventType)
	assert.Equal(t, "APPROVED", publisher.Events[0].Status)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	tenantID := kernel.NewUUID()
	ctx := tenantctx.WithTenant(t.Context(), tenantID)
	o := pendingOrder(t, tenantID)
	cmd, _ := commands.NewTransitionOrderStatusCommand(o.ID(), order.Delivered)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingPublisher{}
	h := commands.NewTransitionOrderStatusCommandHandler(factory, publisher)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Pending, o.Status())
	assert.Empty(t, publisher.Events)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	tenantID := kernel.NewUUID()
	ctx := tenantctx.WithTenant(t.Context(), tenantID)
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewTransitionOrderStatusCommand(orderID, order.Approved)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingPublisher{}
	h := commands.NewTransitionOrderStatusCommandHandler(factory, publisher)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.Events)
}

func TestTransitionOrderStatusCommandHandler_Handle_ConcurrentConflict(t *testing.T) {
	tenantID := kernel.NewUUID()
	ctx := tenantctx.WithTenant(t.Context(), tenantID)
	o := pendingOrder(t, tenantID)
	cmd, _ := commands.NewTransitionOrderStatusCommand(o.ID(), order.Approved)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		// Another transition won the race; the conditioned update matches
		// zero rows.
		repo.On("Update", mock.Anything, o, order.Pending).
			Return(errs.NewConflictError("order", o.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &RecordingPublisher{}
	h := commands.NewTransitionOrderStatusCommandHandler(factory, publisher)

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Empty(t, publisher.Events)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := tenantctx.WithTenant(t.Context(), kernel.NewUUID())
	cmd, _ := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), order.Approved)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewTransitionOrderStatusCommandHandler(factory, &RecordingPublisher{})

	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
