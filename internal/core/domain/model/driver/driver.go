package driver

import (
	"errors"
	"fmt"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

// FullInfoLayout is the layout of the text returned by Driver.FullInfo.
const FullInfoLayout = "Id: {id} DriverName: {name} {car}"

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created via NewDriver.
	ErrDriverIsNotConstructed = errs.NewValueIsRequiredError("Driver must be created via NewDriver constructor")
)

// Driver is an entity identified by a positive integer id. Two drivers with
// the same id are the same driver, whatever their name or car.
type Driver struct {
	kernel.Identity[int]

	name  kernel.PersonName
	car   kernel.Car
	guard guard.ConstructorGuard
}

// NewDriver creates a Driver. The id must be positive, name and car must be constructed.
func NewDriver(id int, name kernel.PersonName, car kernel.Car) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setCar(car),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate reports ErrDriverIsNotConstructed for nil or zero-value drivers.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares drivers by id.
func (d *Driver) IsEqual(other *Driver) bool {
	if d == nil || other == nil {
		return false
	}
	return kernel.SameIdentity[int](d, other)
}

func (d *Driver) Name() kernel.PersonName {
	return d.name
}

func (d *Driver) Car() kernel.Car {
	return d.car
}

// FullInfo renders the driver id, full name and car description, e.g.
//
//	Id: 15 DriverName: Drive Driverson Color: Baklazhan CarModel: Lada sedan PlateNumber: A123BT 66
func (d *Driver) FullInfo() string {
	return kernel.Format(FullInfoLayout,
		kernel.IntField("id", d.ID()),
		kernel.StringField("name", d.name.FullName()),
		kernel.StringField("car", d.car.String()),
	)
}

func (d *Driver) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driver id", fmt.Errorf("%d is not greater than 0", id))
	}
	d.Identity = kernel.NewIdentity(id)
	return nil
}

func (d *Driver) setName(name kernel.PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	d.name = name
	return nil
}

func (d *Driver) setCar(car kernel.Car) error {
	if err := car.Validate(); err != nil {
		return err
	}
	d.car = car
	return nil
}
