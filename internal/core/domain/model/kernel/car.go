package kernel

import (
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

// CarLayout is the description layout used by Car.String.
const CarLayout = "Color: {color} CarModel: {model} PlateNumber: {plateNumber}"

// ErrCarIsNotConstructed is returned when a zero-value Car is used.
var ErrCarIsNotConstructed = errs.NewValueIsRequiredError("car must be created via NewCar constructor")

// Car is an immutable value object describing a driver's vehicle.
// Equality and hash are structural; String renders the description shown to clients:
//
//	kernel.NewCar("Baklazhan", "Lada sedan", "A123BT 66").String()
//	// Color: Baklazhan CarModel: Lada sedan PlateNumber: A123BT 66
type Car struct {
	color       string
	model       string
	plateNumber string
	guard       guard.ConstructorGuard
}

// NewCar creates a Car.
func NewCar(color, model, plateNumber string) Car {
	return Car{
		color:       color,
		model:       model,
		plateNumber: plateNumber,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate returns ErrCarIsNotConstructed for the zero value.
func (c Car) Validate() error {
	return c.guard.Validate(ErrCarIsNotConstructed)
}

func (c Car) Color() string {
	return c.color
}

func (c Car) Model() string {
	return c.model
}

func (c Car) PlateNumber() string {
	return c.plateNumber
}

func (c Car) TypeName() string {
	return "Car"
}

func (c Car) Fields() []Field {
	return []Field{
		StringField("color", c.color),
		StringField("model", c.model),
		StringField("plateNumber", c.plateNumber),
	}
}

func (c Car) Equal(other Car) bool {
	return Equal(c, other)
}

func (c Car) Hash() uint64 {
	return Hash(c)
}

// String returns the car description. The structural form is available via kernel.String.
func (c Car) String() string {
	if c.Validate() != nil {
		return ""
	}
	return c.Format(CarLayout)
}

// Format renders the car using a layout with {color}, {model} and {plateNumber} placeholders.
func (c Car) Format(layout string) string {
	return Format(layout, c.Fields()...)
}
