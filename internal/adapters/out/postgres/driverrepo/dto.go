// Package driverrepo persists Driver entities with GORM.
package driverrepo

import (
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
)

type DriverDTO struct {
	ID        int    `gorm:"primaryKey;autoIncrement:false"`
	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
	Car       CarDTO `gorm:"embedded;embeddedPrefix:car_"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type CarDTO struct {
	Color       string `gorm:"type:varchar(255);not null"`
	Model       string `gorm:"type:varchar(255);not null"`
	PlateNumber string `gorm:"type:varchar(64);not null"`
}

// FromDomain converts a driver to its row.
func FromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        d.ID(),
		FirstName: d.Name().FirstName(),
		LastName:  d.Name().LastName(),
		Car: CarDTO{
			Color:       d.Car().Color(),
			Model:       d.Car().Model(),
			PlateNumber: d.Car().PlateNumber(),
		},
	}
}

// ToDomain rebuilds a driver from its row.
func ToDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.NewDriver(dto.ID,
		kernel.NewPersonName(dto.FirstName, dto.LastName),
		kernel.NewCar(dto.Car.Color, dto.Car.Model, dto.Car.PlateNumber),
	)
}
