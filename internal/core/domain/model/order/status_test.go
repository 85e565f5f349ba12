package order_test

import (
	"fmt"
	"testing"

	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep lifecycle order", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Less(t, order.WaitingForDriver, order.WaitingCarArrival)
		assert.Less(t, order.WaitingCarArrival, order.InProgress)
		assert.Less(t, order.InProgress, order.Finished)
		assert.Less(t, order.WaitingCarArrival, order.Canceled)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate lifecycle statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.WaitingForDriver,
			order.WaitingCarArrival,
			order.InProgress,
			order.Finished,
			order.Canceled,
		} {
			t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out of range statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6)} {
			err := status.Validate()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:           "Unknown",
		order.WaitingForDriver:  "WaitingForDriver",
		order.WaitingCarArrival: "WaitingCarArrival",
		order.InProgress:        "InProgress",
		order.Finished:          "Finished",
		order.Canceled:          "Canceled",
		order.Status(42):        "Unknown",
	}

	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	t.Run("should require driver for assigned statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.WaitingCarArrival, order.InProgress, order.Finished} {
			require.NoError(t, status.ValidateCanHaveDriver(true))
			require.Error(t, status.ValidateCanHaveDriver(false))
		}
	})

	t.Run("should forbid driver for unassigned statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.WaitingForDriver, order.Canceled} {
			require.NoError(t, status.ValidateCanHaveDriver(false))
			require.Error(t, status.ValidateCanHaveDriver(true))
		}
	})
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	transitions := map[string]transition{
		"assign":   order.Status.AssignDriver,
		"unassign": order.Status.UnassignDriver,
		"cancel":   order.Status.Cancel,
		"start":    order.Status.StartRide,
		"finish":   order.Status.FinishRide,
	}

	allowed := map[order.Status]map[string]order.Status{
		order.Unknown:           {},
		order.WaitingForDriver:  {"assign": order.WaitingCarArrival, "cancel": order.Canceled},
		order.WaitingCarArrival: {"unassign": order.WaitingForDriver, "cancel": order.Canceled, "start": order.InProgress},
		order.InProgress:        {"finish": order.Finished},
		order.Finished:          {},
		order.Canceled:          {},
	}

	for from, targets := range allowed {
		for name, apply := range transitions {
			t.Run(fmt.Sprintf("should %s from %s only when allowed", name, from), func(t *testing.T) {
				to, err := apply(from)

				if want, ok := targets[name]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, to)
					return
				}

				require.ErrorIs(t, err, errs.ErrInvalidState)
				assert.Equal(t, order.Unknown, to)
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Finished.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.False(t, order.WaitingForDriver.IsTerminal())
	assert.False(t, order.WaitingCarArrival.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
}
