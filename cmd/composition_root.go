package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"taxi/api"
	httpadapter "taxi/internal/adapters/in/http"
	"taxi/internal/adapters/out/kafka"
	"taxi/internal/adapters/out/memory"
	"taxi/internal/adapters/out/postgres"
	redisadapter "taxi/internal/adapters/out/redis"
	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/application/usecases/queries"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/ports"
	"taxi/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      kernel.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
	locker     ports.OrderLocker

	closers []func() error
}

// NewCompositionRoot connects the optional Kafka and Redis backends and wires
// the unit of work. Without KAFKA_BROKERS changes are not published; without
// REDIS_ADDR order locks live in this process only.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:    cfg,
		gormDB: gormDB,
		logger: logger,
		clock:  kernel.SystemClock(),
	}

	var publisher ports.OrderEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewSyncProducer(cfg.KafkaBrokers)
		if err != nil {
			return nil, fmt.Errorf("connect kafka: %w", err)
		}
		kafkaPublisher, err := kafka.NewOrderEventPublisher(producer, cfg.KafkaOrderChangedTopic, logger)
		if err != nil {
			_ = producer.Close()
			return nil, err
		}
		c.closers = append(c.closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
	} else {
		logger.InfoContext(ctx, "Kafka brokers not configured, order events are not published")
	}

	if cfg.RedisAddr != "" {
		client, err := redisadapter.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.closers = append(c.closers, client.Close)

		locker, err := redisadapter.NewOrderLocker(client, cfg.OrderLockTTL, logger)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.locker = locker
	} else {
		logger.InfoContext(ctx, "Redis not configured, order locks are process local")
		c.locker = memory.NewOrderLocker()
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.clock, publisher, logger)
	return c, nil
}

// Close releases the external connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var closeErrs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		closeErrs = append(closeErrs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateDestinationCommandHandler() commands.UpdateDestinationCommandHandler {
	return commands.NewUpdateDestinationCommandHandler(c.uowFactoryFunc(), c.locker)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.uowFactoryFunc(), c.locker)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.uowFactoryFunc(), c.locker)
}

func (c *CompositionRoot) CreateGetOrderInfoQueryHandler() queries.GetOrderInfoQueryHandler {
	return queries.NewGetOrderInfoQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetStaleOrdersQueryHandler() queries.GetStaleOrdersQueryHandler {
	return queries.NewGetStaleOrdersQueryHandler(c.gormDB, c.clock)
}

// CreateRouter builds the HTTP API validated against the embedded OpenAPI document.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.LoadSwagger(ctx)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateDestinationCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderInfoQueryHandler(),
	)
	return httpadapter.NewRouter(server, doc, c.logger)
}

// CreateJobManager builds the background jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	staleOrdersJob, err := jobs.NewStaleOrdersJob(
		c.CreateGetStaleOrdersQueryHandler(),
		c.cfg.StaleOrderThreshold,
		c.cfg.StaleOrdersSchedule,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(staleOrdersJob), nil
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
