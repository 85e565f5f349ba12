// Package orderrepo persists TaxiOrder aggregates with GORM.
package orderrepo

import (
	"time"

	"taxi/internal/adapters/out/postgres/driverrepo"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"
)

type OrderDTO struct {
	ID          int                   `gorm:"primaryKey;autoIncrement:false"`
	Client      PersonNameDTO         `gorm:"embedded;embeddedPrefix:client_"`
	Start       AddressDTO            `gorm:"embedded;embeddedPrefix:start_"`
	Destination OptionalAddressDTO    `gorm:"embedded;embeddedPrefix:destination_"`
	DriverID    *int                  `gorm:"index"`
	Driver      *driverrepo.DriverDTO `gorm:"foreignKey:DriverID"`
	Status      int                   `gorm:"type:smallint;not null"`

	CreationTime         time.Time `gorm:"not null"`
	DriverAssignmentTime *time.Time
	CancelTime           *time.Time
	StartRideTime        *time.Time
	FinishRideTime       *time.Time
	LastProgressTime     time.Time `gorm:"not null;index"`
}

func (OrderDTO) TableName() string {
	return "taxi_orders"
}

type PersonNameDTO struct {
	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
}

type AddressDTO struct {
	Street   string `gorm:"type:varchar(255);not null"`
	Building string `gorm:"type:varchar(255);not null"`
}

// OptionalAddressDTO stores an address that may be unset. Both columns are
// NULL when it is.
type OptionalAddressDTO struct {
	Street   *string `gorm:"type:varchar(255)"`
	Building *string `gorm:"type:varchar(255)"`
}

func fromDomain(o *order.TaxiOrder) OrderDTO {
	s := o.Snapshot()

	dto := OrderDTO{
		ID: s.ID,
		Client: PersonNameDTO{
			FirstName: s.ClientName.FirstName(),
			LastName:  s.ClientName.LastName(),
		},
		Start: AddressDTO{
			Street:   s.Start.Street(),
			Building: s.Start.Building(),
		},
		Status:               int(s.Status),
		CreationTime:         s.CreationTime,
		DriverAssignmentTime: s.DriverAssignmentTime,
		CancelTime:           s.CancelTime,
		StartRideTime:        s.StartRideTime,
		FinishRideTime:       s.FinishRideTime,
		LastProgressTime:     s.LastProgressTime,
	}

	if s.Destination != nil {
		street, building := s.Destination.Street(), s.Destination.Building()
		dto.Destination = OptionalAddressDTO{Street: &street, Building: &building}
	}

	if s.Driver != nil {
		id := s.Driver.ID()
		dto.DriverID = &id
	}

	return dto
}

func toDomain(dto OrderDTO, clock kernel.Clock) (*order.TaxiOrder, error) {
	s := order.Snapshot{
		ID:                   dto.ID,
		ClientName:           kernel.NewPersonName(dto.Client.FirstName, dto.Client.LastName),
		Start:                kernel.NewAddress(dto.Start.Street, dto.Start.Building),
		Status:               order.Status(dto.Status),
		CreationTime:         dto.CreationTime,
		DriverAssignmentTime: dto.DriverAssignmentTime,
		CancelTime:           dto.CancelTime,
		StartRideTime:        dto.StartRideTime,
		FinishRideTime:       dto.FinishRideTime,
		LastProgressTime:     dto.LastProgressTime,
	}

	if dto.Destination.Street != nil && dto.Destination.Building != nil {
		destination := kernel.NewAddress(*dto.Destination.Street, *dto.Destination.Building)
		s.Destination = &destination
	}

	if dto.Driver != nil {
		d, err := driverrepo.ToDomain(*dto.Driver)
		if err != nil {
			return nil, err
		}
		s.Driver = d
	} else if dto.DriverID != nil {
		return nil, errs.NewObjectNotFoundError("driver", *dto.DriverID)
	}

	return order.RestoreOrder(s, clock)
}
