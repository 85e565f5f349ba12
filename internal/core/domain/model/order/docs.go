// Package order provides the TaxiOrder aggregate and its status state machine.
//
// The package includes:
//   - TaxiOrder: the aggregate root that owns client, addresses, driver and timestamps
//   - Status: the ordered lifecycle statuses and their guarded transitions
//   - Snapshot: the full order state used by persistence
//
// Key business rules:
//   - Orders are created in WaitingForDriver status without a destination
//   - A driver can be assigned only while the order waits for one
//   - Orders can be canceled until the ride starts; cancellation releases the driver
//   - Finished and Canceled are terminal
//   - Every status change records its moment, read from the clock given at creation
//
// Transition failures are reported as errs.InvalidStateError, missing inputs as
// errs.ValueIsRequiredError.
package order
