package kernel

import (
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

// FullNameLayout renders a person name as "First Last".
const FullNameLayout = "{firstName} {lastName}"

// ErrPersonNameIsNotConstructed is returned when a zero-value PersonName is used.
var ErrPersonNameIsNotConstructed = errs.NewValueIsRequiredError(
	"person name must be created via NewPersonName constructor")

// PersonName is an immutable value object holding a first and a last name.
// Two names are equal when both parts are equal. Empty parts are legal values.
//
// Example:
//
//	name := kernel.NewPersonName("Anna", "Smith")
//	fmt.Println(name.FullName()) // Anna Smith
//	fmt.Println(name)            // PersonName(firstName: Anna; lastName: Smith)
type PersonName struct {
	firstName string
	lastName  string
	guard     guard.ConstructorGuard
}

// NewPersonName creates a PersonName.
func NewPersonName(firstName, lastName string) PersonName {
	return PersonName{
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate returns ErrPersonNameIsNotConstructed for the zero value.
func (n PersonName) Validate() error {
	return n.guard.Validate(ErrPersonNameIsNotConstructed)
}

// FirstName returns the first name.
func (n PersonName) FirstName() string {
	return n.firstName
}

// LastName returns the last name.
func (n PersonName) LastName() string {
	return n.lastName
}

func (n PersonName) TypeName() string {
	return "PersonName"
}

func (n PersonName) Fields() []Field {
	return []Field{
		StringField("firstName", n.firstName),
		StringField("lastName", n.lastName),
	}
}

// Equal compares two names attribute by attribute.
func (n PersonName) Equal(other PersonName) bool {
	return Equal(n, other)
}

func (n PersonName) Hash() uint64 {
	return Hash(n)
}

func (n PersonName) String() string {
	return String(n)
}

// Format renders the name using a layout with {firstName} and {lastName} placeholders.
func (n PersonName) Format(layout string) string {
	return Format(layout, n.Fields()...)
}

// FullName renders the name as "First Last".
func (n PersonName) FullName() string {
	return n.Format(FullNameLayout)
}
