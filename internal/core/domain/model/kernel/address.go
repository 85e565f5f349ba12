package kernel

import (
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

// AddressLayout renders an address as "Street Building".
const AddressLayout = "{street} {building}"

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable street address value object.
type Address struct {
	street   string
	building string
	guard    guard.ConstructorGuard
}

// NewAddress creates an Address. Blank street or building are accepted.
func NewAddress(street, building string) Address {
	return Address{
		street:   street,
		building: building,
		guard:    guard.NewConstructorGuard(),
	}
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Building() string {
	return a.building
}

func (a Address) TypeName() string {
	return "Address"
}

func (a Address) Fields() []Field {
	return []Field{
		StringField("street", a.street),
		StringField("building", a.building),
	}
}

func (a Address) Equal(other Address) bool {
	return Equal(a, other)
}

func (a Address) Hash() uint64 {
	return Hash(a)
}

func (a Address) String() string {
	return String(a)
}

// Format renders the address using a layout with {street} and {building} placeholders.
func (a Address) Format(layout string) string {
	return Format(layout, a.Fields()...)
}

// Line renders the address as "Street Building".
func (a Address) Line() string {
	return a.Format(AddressLayout)
}
