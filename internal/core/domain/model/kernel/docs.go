// Package kernel holds the shared building blocks of the taxi domain model.
//
// The package includes:
//   - ValueObject: attribute declarations from which Equal, Hash, String and Format are derived
//   - PersonName, Address, Car: the immutable value objects used by orders and drivers
//   - Identity: an embeddable identifier for entities compared with SameIdentity
//   - Clock: the injected time source and the fixed timestamp layout
//
// A zero-value PersonName, Address or Car is treated as absent: Validate returns a
// ValueIsRequiredError and Equal against it reports false.
package kernel
