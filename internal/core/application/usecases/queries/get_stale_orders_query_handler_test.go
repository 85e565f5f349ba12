package queries_test

import (
	"context"
	"testing"
	"time"

	"taxi/internal/adapters/out/postgres/migrations"
	"taxi/internal/adapters/out/postgres/orderrepo"
	"taxi/internal/core/application/usecases/queries"
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(int, any) {}

type GetStaleOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	now       time.Time
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	suite.Require().NoError(migrations.Up(ctx, dsn))

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopAggregateTracker{}, suite.clock)
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE taxi_orders").Error)
	suite.now = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) clock() time.Time {
	return suite.now
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) addOrder(id int, mutate func(o *order.TaxiOrder)) {
	o, err := order.CreateOrderWithoutDestination(id,
		kernel.NewPersonName("Anna", "Smith"),
		kernel.NewAddress("Baker St", "12"),
		suite.clock)
	suite.Require().NoError(err)
	if mutate != nil {
		mutate(o)
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) handle(olderThan time.Duration) []queries.GetStaleOrdersQueryResponse {
	query, err := queries.NewGetStaleOrdersQuery(olderThan)
	suite.Require().NoError(err)

	result, err := queries.NewGetStaleOrdersQueryHandler(suite.db, suite.clock).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) seededDriver() *driver.Driver {
	d, err := driver.NewDriver(15,
		kernel.NewPersonName("Drive", "Driverson"),
		kernel.NewCar("Baklazhan", "Lada sedan", "A123BT 66"))
	suite.Require().NoError(err)
	return d
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result := suite.handle(15 * time.Minute)

	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOpenOrdersOlderThanThreshold() {
	suite.addOrder(1, nil)
	suite.addOrder(2, func(o *order.TaxiOrder) {
		suite.Require().NoError(o.AssignDriver(suite.seededDriver()))
	})
	suite.addOrder(3, func(o *order.TaxiOrder) {
		suite.Require().NoError(o.Cancel())
	})
	suite.addOrder(4, func(o *order.TaxiOrder) {
		suite.Require().NoError(o.AssignDriver(suite.seededDriver()))
		suite.Require().NoError(o.StartRide())
		suite.Require().NoError(o.FinishRide())
	})

	suite.now = suite.now.Add(20 * time.Minute)
	suite.addOrder(5, nil)

	suite.now = suite.now.Add(time.Minute)
	result := suite.handle(15 * time.Minute)

	suite.Require().Len(result, 2)
	suite.Equal(1, result[0].ID)
	suite.Equal(order.WaitingForDriver, result[0].Status)
	suite.Nil(result[0].DriverID)
	suite.True(result[0].LastProgressTime.Equal(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)))

	suite.Equal(2, result[1].ID)
	suite.Equal(order.WaitingCarArrival, result[1].Status)
	suite.Require().NotNil(result[1].DriverID)
	suite.Equal(15, *result[1].DriverID)
}

func (suite *GetStaleOrdersQueryHandlerTestSuite) TestHandle_OrderExactlyAtThreshold_IsNotStale() {
	suite.addOrder(1, nil)

	suite.now = suite.now.Add(15 * time.Minute)
	result := suite.handle(15 * time.Minute)

	suite.Empty(result)
}

func TestGetStaleOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStaleOrdersQueryHandlerTestSuite))
}
