package archiverepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/archiverepo"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DeliveryArchiveIntegrationTestSuite exercises the archive against a real
// PostgreSQL container to verify persistence behavior.
type DeliveryArchiveIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	archive   *archiverepo.GormDeliveryArchive
}

func (suite *DeliveryArchiveIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&archiverepo.CompletedDeliveryDTO{}))
}

func (suite *DeliveryArchiveIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE completed_deliveries").Error)
	suite.archive = archiverepo.NewGormDeliveryArchive(suite.db)
}

func (suite *DeliveryArchiveIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryArchiveIntegrationTestSuite) TestAdd_ValidRecord_Success() {
	ctx := context.Background()

	err := suite.archive.Add(ctx, suite.completedDelivery("P-1", "Area C"))
	suite.Require().NoError(err)

	suite.assertArchiveCount(1)
}

func (suite *DeliveryArchiveIntegrationTestSuite) TestAdd_MissingParcelID_Rejected() {
	ctx := context.Background()

	record := suite.completedDelivery("", "Area C")
	err := suite.archive.Add(ctx, record)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)

	suite.assertArchiveCount(0)
}

func (suite *DeliveryArchiveIntegrationTestSuite) TestAdd_DuplicateParcelID_Rejected() {
	ctx := context.Background()

	suite.Require().NoError(suite.archive.Add(ctx, suite.completedDelivery("P-1", "Area C")))
	err := suite.archive.Add(ctx, suite.completedDelivery("P-1", "Area B"))
	suite.Require().Error(err)

	suite.assertArchiveCount(1)
}

func (suite *DeliveryArchiveIntegrationTestSuite) TestGetAll_RoundTrip() {
	ctx := context.Background()

	record := suite.completedDelivery("P-1", "Area C")
	suite.Require().NoError(suite.archive.Add(ctx, record))

	records, err := suite.archive.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)

	got := records[0]
	suite.Equal(record.ParcelID, got.ParcelID)
	suite.Equal(record.Sender, got.Sender)
	suite.Equal(record.Receiver, got.Receiver)
	suite.Equal(record.Origin, got.Origin)
	suite.Equal(record.Destination, got.Destination)
	suite.Equal(record.Route, got.Route)
	suite.Equal(record.DirectTravelTime, got.DirectTravelTime)
	suite.Equal(record.DirectTravelTimeKnown, got.DirectTravelTimeKnown)
	suite.Equal(record.PathTravelTime, got.PathTravelTime)
	suite.WithinDuration(record.DeliveredAt, got.DeliveredAt, time.Second)
}

func (suite *DeliveryArchiveIntegrationTestSuite) TestGetAll_CompletionOrder() {
	ctx := context.Background()

	for _, parcelID := range []string{"P-3", "P-1", "P-2"} {
		suite.Require().NoError(suite.archive.Add(ctx, suite.completedDelivery(parcelID, "Area C")))
	}

	records, err := suite.archive.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	suite.Equal("P-3", records[0].ParcelID)
	suite.Equal("P-1", records[1].ParcelID)
	suite.Equal("P-2", records[2].ParcelID)
}

func (suite *DeliveryArchiveIntegrationTestSuite) TestGetAll_Empty() {
	records, err := suite.archive.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Empty(records)
}

// completedDelivery builds a representative archival record.
func (suite *DeliveryArchiveIntegrationTestSuite) completedDelivery(parcelID, destination string) services.CompletedDelivery {
	return services.CompletedDelivery{
		ParcelID: parcelID,
		Sender:   "Acme Ltd",
		Receiver: "J. Smith",

		Origin:      "Warehouse",
		Destination: destination,
		Route:       []string{"Warehouse", "Area A", destination},

		DirectTravelTimeKnown: false,
		PathTravelTime:        6 * time.Minute,

		DeliveredAt: time.Now().UTC(),
	}
}

// assertArchiveCount verifies the number of archived rows.
func (suite *DeliveryArchiveIntegrationTestSuite) assertArchiveCount(expected int) {
	var count int64
	err := suite.db.Model(&archiverepo.CompletedDeliveryDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDeliveryArchiveIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryArchiveIntegrationTestSuite))
}
