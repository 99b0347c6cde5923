package order_test

import (
	"errors"
	"testing"

	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	t.Run("should return canonical names for all valid statuses", func(t *testing.T) {
		expected := map[order.Status]string{
			order.Pending:   "PENDING",
			order.Approved:  "APPROVED",
			order.InTransit: "IN_TRANSIT",
			order.Shipped:   "SHIPPED",
			order.Delivered: "DELIVERED",
			order.Cancelled: "CANCELLED",
		}

		for status, name := range expected {
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(99).String())
		assert.Equal(t, "UNKNOWN", order.Status(-1).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should resolve all canonical names", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			resolved, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, resolved)
		}
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("pending")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "IN TRANSIT", "DONE"} {
			resolved, err := order.StatusFromString(s)

			require.Error(t, err)
			assert.Equal(t, order.Unknown, resolved)
			assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
			assert.False(t, errors.Is(err, order.ErrInvalidTransition))
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for all valid statuses", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should fail for unknown and out of range values", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark DELIVERED and CANCELLED as terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should mark all other statuses as non-terminal", func(t *testing.T) {
		assert.False(t, order.Pending.IsTerminal())
		assert.False(t, order.Approved.IsTerminal())
		assert.False(t, order.InTransit.IsTerminal())
		assert.False(t, order.Shipped.IsTerminal())
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:   {order.Approved, order.Cancelled},
		order.Approved:  {order.InTransit, order.Cancelled},
		order.InTransit: {order.Shipped, order.Cancelled},
		order.Shipped:   {order.Delivered},
		order.Delivered: {},
		order.Cancelled: {},
	}

	isAllowed := func(from, to order.Status) bool {
		for _, next := range allowed[from] {
			if next == to {
				return true
			}
		}
		return false
	}

	t.Run("should permit exactly the edges of the transition table", func(t *testing.T) {
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				next, err := from.TransitionTo(to)

				if isAllowed(from, to) {
					require.NoError(t, err, "%s -> %s", from, to)
					assert.Equal(t, to, next)
				} else {
					require.Error(t, err, "%s -> %s", from, to)
					assert.Equal(t, order.Unknown, next)
				}
			}
		}
	})

	t.Run("should reject self transitions", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			_, err := status.TransitionTo(status)

			require.Error(t, err)
			assert.True(t, errors.Is(err, order.ErrInvalidTransition))
		}
	})

	t.Run("should reject any transition out of terminal states", func(t *testing.T) {
		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range order.AllStatuses() {
				_, err := from.TransitionTo(to)

				require.Error(t, err, "%s -> %s", from, to)
			}
		}
	})

	t.Run("should reject skipping workflow steps", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Shipped)

		require.Error(t, err)
		assert.True(t, errors.Is(err, order.ErrInvalidTransition))
	})

	t.Run("should reject backward transitions", func(t *testing.T) {
		_, err := order.Shipped.TransitionTo(order.InTransit)

		require.Error(t, err)
		assert.True(t, errors.Is(err, order.ErrInvalidTransition))
	})

	t.Run("should report both endpoints in the error", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Delivered)

		require.Error(t, err)

		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Pending, transitionErr.From)
		assert.Equal(t, order.Delivered, transitionErr.To)
		assert.Equal(t, "invalid status transition from PENDING to DELIVERED", err.Error())
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should agree with TransitionTo", func(t *testing.T) {
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				_, err := from.TransitionTo(to)

				assert.Equal(t, err == nil, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("should return false for unknown endpoints", func(t *testing.T) {
		assert.False(t, order.Unknown.CanTransitionTo(order.Pending))
		assert.False(t, order.Pending.CanTransitionTo(order.Unknown))
	})
}

func TestAllStatuses(t *testing.T) {
	t.Run("should list all six statuses in workflow order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.Pending,
			order.Approved,
			order.InTransit,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}, order.AllStatuses())
	})
}
