package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres/shipmentrepo"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite verifies shipment document and
// tracking-code index persistence against a real PostgreSQL instance.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingCodeDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments, tracking_codes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newShipment(sequence int64) *shipment.Shipment {
	suite.T().Helper()

	shipmentID, err := kernel.NewShipmentID(kernel.GenerationCurrent, sequence)
	suite.Require().NoError(err)
	trackingCode := kernel.NewRandomTrackingCode()
	originPort, err := kernel.NewPortCode("MYPKG")
	suite.Require().NoError(err)
	destinationPort, err := kernel.NewPortCode("SGSIN")
	suite.Require().NoError(err)

	aggregate, err := shipment.NewShipment(
		shipment.Identity{ShipmentID: shipmentID, TrackingCode: trackingCode},
		originPort,
		destinationPort,
		shipment.LoadFCL,
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Electronics, 2 x 40ft HC",
		kernel.NewUUID(),
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAddAndGetRoundtrip() {
	ctx := context.Background()
	aggregate := suite.newShipment(42)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal("AF2-000042", restored.ID().String())
	suite.True(restored.TrackingCode().IsEqual(aggregate.TrackingCode()))
	suite.Equal("MYPKG", restored.OriginPort().String())
	suite.Equal("SGSIN", restored.DestinationPort().String())
	suite.Equal(shipment.LoadFCL, restored.LoadType())
	suite.False(restored.Terms().IsSet())
	suite.Equal(aggregate.Cargo(), restored.Cargo())
	suite.True(restored.CustomerID().IsEqual(aggregate.CustomerID()))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetNotFound() {
	missing, err := kernel.NewShipmentID(kernel.GenerationCurrent, 999999)
	suite.Require().NoError(err)

	_, err = suite.repository.Get(context.Background(), missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingCode() {
	ctx := context.Background()
	aggregate := suite.newShipment(7)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NoError(suite.repository.AddTrackingIndex(ctx, aggregate))

	restored, err := suite.repository.GetByTrackingCode(ctx, aggregate.TrackingCode())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(aggregate))
}

// A shipment document without its index entry is reachable by ID but not by
// tracking code. Creation is not atomic across the two writes.
func (suite *ShipmentRepositoryIntegrationTestSuite) TestDocumentWithoutIndexIsNotTrackable() {
	ctx := context.Background()
	aggregate := suite.newShipment(8)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	suite.NoError(err)

	_, err = suite.repository.GetByTrackingCode(ctx, aggregate.TrackingCode())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdatePersistsTermsAndBooking() {
	ctx := context.Background()
	aggregate := suite.newShipment(11)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	terms, err := shipment.NewTerms(shipment.IncotermFOB, shipment.TransactionImport)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.SetTerms(terms, time.Now().UTC()))
	aggregate.MergeBookingDetails(shipment.BookingDetails{
		Carrier:      "Evergreen",
		VesselName:   "Ever Given",
		VoyageNumber: "025E",
		Containers:   []string{"EGHU1234567", "EGHU7654321"},
	}, time.Now().UTC())

	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.Terms().IsSet())
	suite.Equal(shipment.IncotermFOB, restored.Terms().Incoterm())
	suite.Equal(shipment.TransactionImport, restored.Terms().TransactionType())
	suite.Equal("Evergreen", restored.Booking().Carrier)
	suite.Equal([]string{"EGHU1234567", "EGHU7654321"}, restored.Booking().Containers)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdateNotFound() {
	aggregate := suite.newShipment(77)

	err := suite.repository.Update(context.Background(), aggregate)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
