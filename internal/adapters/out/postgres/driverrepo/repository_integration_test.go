package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"taxi/internal/adapters/out/postgres/driverrepo"
	"taxi/internal/adapters/out/postgres/migrations"
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	suite.Require().NoError(migrations.Up(ctx, connStr))

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = driverrepo.NewGormDriverRepository(db)
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("DELETE FROM drivers WHERE id <> 15").Error)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_SeededDriver() {
	d, err := suite.repository.Get(context.Background(), 15)

	suite.Require().NoError(err)
	suite.Equal(
		"Id: 15 DriverName: Drive Driverson Color: Baklazhan CarModel: Lada sedan PlateNumber: A123BT 66",
		d.FullInfo())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	d, err := driver.NewDriver(21,
		kernel.NewPersonName("Ivan", "Ivanov"),
		kernel.NewCar("White", "Kia Rio", "B777OP 96"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, d))

	got, err := suite.repository.Get(ctx, 21)
	suite.Require().NoError(err)
	suite.True(got.IsEqual(d))
	suite.True(got.Name().Equal(d.Name()))
	suite.True(got.Car().Equal(d.Car()))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_UnknownDriver_ReturnsNotFound() {
	d, err := suite.repository.Get(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(d)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
