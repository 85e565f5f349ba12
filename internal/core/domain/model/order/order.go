package order

import (
	"errors"
	"fmt"
	"time"

	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"
	"taxi/internal/pkg/guard"
)

// ShortInfoLayout is the layout of the text returned by TaxiOrder.ShortInfo.
const ShortInfoLayout = "OrderId: {id} Status: {status} Client: {client} Driver: {driver} " +
	"From: {from} To: {to} LastProgressTime: {lastProgressTime}"

const (
	noDriverText      = "not assigned"
	noDestinationText = "unspecified"
)

var (
	// ErrOrderIsNotConstructed is returned when a TaxiOrder instance was not created through
	// CreateOrderWithoutDestination or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("TaxiOrder must be created via CreateOrderWithoutDestination constructor")

	ErrClientNameIsRequired  = errs.NewValueIsRequiredError("client name")
	ErrStartIsRequired       = errs.NewValueIsRequiredError("start address")
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	ErrDriverIsRequired      = errs.NewValueIsRequiredError("driver")
	ErrClockIsRequired       = errs.NewValueIsRequiredError("clock")

	errDriverAlreadyAssigned = errors.New("driver is already assigned")
	errNoDriverAssigned      = errors.New("no driver is assigned")
)

// TaxiOrder is the aggregate root of a single taxi ride. It owns the status
// state machine and records the moment of every status change.
//
// Invariants:
//   - id, client name, start address and creation time never change
//   - a driver is assigned iff status is WaitingCarArrival, InProgress or Finished
//   - the timestamp of a status is recorded by the transition that enters it
//   - lastProgressTime is the moment of the latest status change
//   - a transition either fully applies or leaves the order untouched
//
// All timestamps come from the clock supplied at creation.
type TaxiOrder struct {
	kernel.Identity[int]

	clientName  kernel.PersonName
	start       kernel.Address
	destination *kernel.Address
	driver      *driver.Driver
	status      Status

	creationTime         time.Time
	driverAssignmentTime *time.Time
	cancelTime           *time.Time
	startRideTime        *time.Time
	finishRideTime       *time.Time
	lastProgressTime     time.Time

	clock kernel.Clock
	guard guard.ConstructorGuard
}

// Snapshot is the full state of a TaxiOrder, used to move it in and out of storage.
// Absent optional values are nil.
type Snapshot struct {
	ID          int
	ClientName  kernel.PersonName
	Start       kernel.Address
	Destination *kernel.Address
	Driver      *driver.Driver
	Status      Status

	CreationTime         time.Time
	DriverAssignmentTime *time.Time
	CancelTime           *time.Time
	StartRideTime        *time.Time
	FinishRideTime       *time.Time
	LastProgressTime     time.Time
}

// CreateOrderWithoutDestination creates an order in WaitingForDriver status.
// The creation time is read from clock, which is then kept for every later
// transition of this order.
//
// Example:
//
//	o, err := order.CreateOrderWithoutDestination(1,
//	    kernel.NewPersonName("Anna", "Smith"),
//	    kernel.NewAddress("Baker St", "12"),
//	    kernel.SystemClock())
func CreateOrderWithoutDestination(
	id int,
	clientName kernel.PersonName,
	start kernel.Address,
	clock kernel.Clock,
) (*TaxiOrder, error) {
	o := &TaxiOrder{
		status: WaitingForDriver,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setStart(start),
		o.setClock(clock),
	); err != nil {
		return nil, err
	}

	o.creationTime = o.clock()
	o.lastProgressTime = o.creationTime
	return o, nil
}

// RestoreOrder rebuilds an order from a snapshot, checking that the stored state
// is one the state machine could have produced.
func RestoreOrder(s Snapshot, clock kernel.Clock) (*TaxiOrder, error) {
	o := &TaxiOrder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setClientName(s.ClientName),
		o.setStart(s.Start),
		o.setClock(clock),
		o.restoreDestination(s.Destination),
		o.restoreStatus(s.Status, s.Driver),
		o.restoreTimes(s),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through one of the constructors.
func (o *TaxiOrder) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *TaxiOrder) IsEqual(other *TaxiOrder) bool {
	if o == nil || other == nil {
		return false
	}
	return kernel.SameIdentity[int](o, other)
}

func (o *TaxiOrder) ClientName() kernel.PersonName {
	return o.clientName
}

func (o *TaxiOrder) Start() kernel.Address {
	return o.start
}

// Destination returns the destination address and whether it is set.
func (o *TaxiOrder) Destination() (kernel.Address, bool) {
	if o.destination == nil {
		return kernel.Address{}, false
	}
	return *o.destination, true
}

// Driver returns the assigned driver, or nil.
func (o *TaxiOrder) Driver() *driver.Driver {
	return o.driver
}

func (o *TaxiOrder) IsDriverAssigned() bool {
	return o.driver != nil
}

func (o *TaxiOrder) Status() Status {
	return o.status
}

func (o *TaxiOrder) CreationTime() time.Time {
	return o.creationTime
}

func (o *TaxiOrder) DriverAssignmentTime() (time.Time, bool) {
	return optionalTime(o.driverAssignmentTime)
}

func (o *TaxiOrder) CancelTime() (time.Time, bool) {
	return optionalTime(o.cancelTime)
}

func (o *TaxiOrder) StartRideTime() (time.Time, bool) {
	return optionalTime(o.startRideTime)
}

func (o *TaxiOrder) FinishRideTime() (time.Time, bool) {
	return optionalTime(o.finishRideTime)
}

// LastProgressTime returns the moment of the latest status change, which is the
// creation time until the first transition.
func (o *TaxiOrder) LastProgressTime() time.Time {
	return o.lastProgressTime
}

// UpdateDestination sets the destination. It is allowed in every non-terminal status.
func (o *TaxiOrder) UpdateDestination(destination kernel.Address) error {
	if destination.Validate() != nil {
		return ErrDestinationIsRequired
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("update destination of order", o.status.String())
	}

	o.destination = &destination
	return nil
}

// AssignDriver assigns d and moves the order to WaitingCarArrival.
//
// Returns ErrDriverIsRequired for a nil or not constructed driver, and an
// InvalidStateError if a driver is already assigned or the order is not
// waiting for a driver.
func (o *TaxiOrder) AssignDriver(d *driver.Driver) error {
	if d.Validate() != nil {
		return ErrDriverIsRequired
	}
	if o.driver != nil {
		return errs.NewInvalidStateErrorWithCause("assign driver to order", o.status.String(), errDriverAlreadyAssigned)
	}

	newStatus, err := o.status.AssignDriver()
	if err != nil {
		return err
	}

	now := o.clock()
	o.driver = d
	o.status = newStatus
	o.driverAssignmentTime = &now
	o.lastProgressTime = now
	return nil
}

// UnassignDriver removes the driver and moves the order back to WaitingForDriver.
func (o *TaxiOrder) UnassignDriver() error {
	if o.driver == nil {
		return errs.NewInvalidStateErrorWithCause("unassign driver from order", o.status.String(), errNoDriverAssigned)
	}

	newStatus, err := o.status.UnassignDriver()
	if err != nil {
		return err
	}

	o.driver = nil
	o.status = newStatus
	o.lastProgressTime = o.clock()
	return nil
}

// Cancel cancels an order that has not started yet. An assigned driver is
// released first.
func (o *TaxiOrder) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	now := o.clock()
	o.driver = nil
	o.status = newStatus
	o.cancelTime = &now
	o.lastProgressTime = now
	return nil
}

func (o *TaxiOrder) StartRide() error {
	newStatus, err := o.status.StartRide()
	if err != nil {
		return err
	}

	now := o.clock()
	o.status = newStatus
	o.startRideTime = &now
	o.lastProgressTime = now
	return nil
}

func (o *TaxiOrder) FinishRide() error {
	newStatus, err := o.status.FinishRide()
	if err != nil {
		return err
	}

	now := o.clock()
	o.status = newStatus
	o.finishRideTime = &now
	o.lastProgressTime = now
	return nil
}

// ShortInfo renders a one-line summary of the order, e.g.
//
//	OrderId: 1 Status: WaitingForDriver Client: Anna Smith Driver: not assigned From: Baker St 12 To: unspecified LastProgressTime: 2024-03-05 07:04:09
func (o *TaxiOrder) ShortInfo() string {
	driverName := noDriverText
	if o.driver != nil {
		driverName = o.driver.Name().FullName()
	}

	to := noDestinationText
	if o.destination != nil {
		to = o.destination.Line()
	}

	return kernel.Format(ShortInfoLayout,
		kernel.IntField("id", o.ID()),
		kernel.StringField("status", o.status.String()),
		kernel.StringField("client", o.clientName.FullName()),
		kernel.StringField("driver", driverName),
		kernel.StringField("from", o.start.Line()),
		kernel.StringField("to", to),
		kernel.StringField("lastProgressTime", kernel.FormatTimestamp(o.lastProgressTime)),
	)
}

// DriverFullInfo returns the full info of the assigned driver, or false when
// no driver is assigned.
func (o *TaxiOrder) DriverFullInfo() (string, bool) {
	if o.driver == nil {
		return "", false
	}
	return o.driver.FullInfo(), true
}

// Snapshot returns the current state of the order.
func (o *TaxiOrder) Snapshot() Snapshot {
	return Snapshot{
		ID:                   o.ID(),
		ClientName:           o.clientName,
		Start:                o.start,
		Destination:          copyAddress(o.destination),
		Driver:               o.driver,
		Status:               o.status,
		CreationTime:         o.creationTime,
		DriverAssignmentTime: copyTime(o.driverAssignmentTime),
		CancelTime:           copyTime(o.cancelTime),
		StartRideTime:        copyTime(o.startRideTime),
		FinishRideTime:       copyTime(o.finishRideTime),
		LastProgressTime:     o.lastProgressTime,
	}
}

func (o *TaxiOrder) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.Identity = kernel.NewIdentity(id)
	return nil
}

func (o *TaxiOrder) setClientName(name kernel.PersonName) error {
	if name.Validate() != nil {
		return ErrClientNameIsRequired
	}
	o.clientName = name
	return nil
}

func (o *TaxiOrder) setStart(start kernel.Address) error {
	if start.Validate() != nil {
		return ErrStartIsRequired
	}
	o.start = start
	return nil
}

func (o *TaxiOrder) setClock(clock kernel.Clock) error {
	if clock == nil {
		return ErrClockIsRequired
	}
	o.clock = clock
	return nil
}

func (o *TaxiOrder) restoreDestination(destination *kernel.Address) error {
	if destination == nil {
		return nil
	}
	if destination.Validate() != nil {
		return ErrDestinationIsRequired
	}
	o.destination = copyAddress(destination)
	return nil
}

func (o *TaxiOrder) restoreStatus(status Status, d *driver.Driver) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if d != nil {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveDriver(d != nil); err != nil {
		return err
	}

	o.status = status
	o.driver = d
	return nil
}

func (o *TaxiOrder) restoreTimes(s Snapshot) error {
	if s.CreationTime.IsZero() {
		return errs.NewValueIsRequiredError("creation time")
	}
	if s.LastProgressTime.Before(s.CreationTime) {
		return errs.NewValueIsInvalidErrorWithCause("last progress time",
			fmt.Errorf("%s is before creation time %s",
				kernel.FormatTimestamp(s.LastProgressTime), kernel.FormatTimestamp(s.CreationTime)))
	}

	required := map[Status]*time.Time{
		WaitingCarArrival: s.DriverAssignmentTime,
		InProgress:        s.StartRideTime,
		Finished:          s.FinishRideTime,
		Canceled:          s.CancelTime,
	}
	if ts, ok := required[s.Status]; ok && ts == nil {
		return errs.NewValueIsRequiredErrorWithCause("status time",
			fmt.Errorf("%s order has no timestamp for its status", s.Status))
	}

	o.creationTime = s.CreationTime
	o.driverAssignmentTime = copyTime(s.DriverAssignmentTime)
	o.cancelTime = copyTime(s.CancelTime)
	o.startRideTime = copyTime(s.StartRideTime)
	o.finishRideTime = copyTime(s.FinishRideTime)
	o.lastProgressTime = s.LastProgressTime
	return nil
}

func optionalTime(t *time.Time) (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	return *t, true
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyAddress(a *kernel.Address) *kernel.Address {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
