package ports

import (
	"context"

	"taxi/internal/core/domain/model/driver"
)

// DriverRepository resolves drivers by id. Get returns errs.ObjectNotFoundError
// for unknown ids. Callers do not retry or cache.
type DriverRepository interface {
	// Get loads the driver with the id.
	Get(ctx context.Context, id int) (*driver.Driver, error)
}
