package orderrepo

import (
	"context"
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const idSequence = "taxi_orders_id_seq"

type GormOrderRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	clock     kernel.Clock
	forUpdate bool
}

type aggregateTracker interface {
	TrackAggregate(id int, aggregate any)
}

// NewGormOrderRepository creates a repository. Restored orders use clock for
// their later transitions.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, clock kernel.Clock) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		clock:   clock,
	}
}

// ForUpdate returns a repository whose Get locks the order row until the
// surrounding transaction ends.
func (r *GormOrderRepository) ForUpdate() *GormOrderRepository {
	locked := *r
	locked.forUpdate = true
	return &locked
}

// NextID draws the next order id from the taxi_orders_id_seq sequence.
func (r *GormOrderRepository) NextID(ctx context.Context) (int, error) {
	var id int
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(?)", idSequence).Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.TaxiOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so cleared driver, destination and times become NULL.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.TaxiOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int) (*order.TaxiOrder, error) {
	query := r.db.WithContext(ctx).Preload("Driver")
	if r.forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto, r.clock)
}
