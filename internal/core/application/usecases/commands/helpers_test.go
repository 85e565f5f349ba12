package commands_test

import (
	"testing"
	"time"

	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testClock() time.Time {
	return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
}

func newTestOrder(t *testing.T, id int) *order.TaxiOrder {
	t.Helper()

	o, err := order.CreateOrderWithoutDestination(id,
		kernel.NewPersonName("Anna", "Smith"),
		kernel.NewAddress("Baker St", "12"),
		testClock)
	require.NoError(t, err)
	return o
}

func newTestDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(15,
		kernel.NewPersonName("Drive", "Driverson"),
		kernel.NewCar("Baklazhan", "Lada sedan", "A123BT 66"))
	require.NoError(t, err)
	return d
}
