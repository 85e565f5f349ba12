package memory

import (
	"context"

	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"
)

// StubDriverID is the only id known to StubDriverRepository.
const StubDriverID = 15

// StubDriverRepository knows exactly one driver: Drive Driverson in a
// Baklazhan Lada sedan, plate A123BT 66, with id StubDriverID.
type StubDriverRepository struct{}

func NewStubDriverRepository() *StubDriverRepository {
	return &StubDriverRepository{}
}

func (r *StubDriverRepository) Get(_ context.Context, id int) (*driver.Driver, error) {
	if id != StubDriverID {
		return nil, errs.NewObjectNotFoundError("driver", id)
	}

	return driver.NewDriver(id,
		kernel.NewPersonName("Drive", "Driverson"),
		kernel.NewCar("Baklazhan", "Lada sedan", "A123BT 66"),
	)
}
