package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"forwarding/internal/adapters/out/postgres/routerepo"
	"forwarding/internal/adapters/out/postgres/shipmentrepo"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
	"forwarding/internal/pkg/errs"
)

// GetRouteQueryHandlerIntegrationTestSuite verifies the route read model
// against a real PostgreSQL instance, in particular the two-node derivation
// fallback and its replacement by a persisted node list.
type GetRouteQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRouteQueryHandler
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &routerepo.RouteNodeDTO{}))
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments, route_nodes").Error)
	suite.handler = queries.NewGetRouteQueryHandler(suite.db)
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) seedShipment(sequence int64, originPort, destinationPort string) kernel.ShipmentID {
	suite.T().Helper()
	id, err := kernel.NewShipmentID(kernel.GenerationCurrent, sequence)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	suite.Require().NoError(suite.db.Create(&shipmentrepo.ShipmentDTO{
		ID:              id.String(),
		TrackingCode:    kernel.NewRandomTrackingCode().String(),
		OriginPort:      originPort,
		DestinationPort: destinationPort,
		LoadType:        "FCL",
		CustomerID:      uuid.New(),
		CounterpartyID:  uuid.New(),
		Cargo:           "electronics",
		CreatedBy:       uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}).Error)
	return id
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) node(portCode, portName string, role route.NodeRole) route.Node {
	suite.T().Helper()
	code, err := kernel.NewPortCode(portCode)
	suite.Require().NoError(err)
	n, err := route.NewNode(code, portName, role, route.Timing{})
	suite.Require().NoError(err)
	return n
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) routeQuery(shipmentID kernel.ShipmentID) queries.GetRouteQuery {
	suite.T().Helper()
	query, err := queries.NewGetRouteQuery(shipmentID)
	suite.Require().NoError(err)
	return query
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) TestDerivedTwoNodeFallback() {
	shipmentID := suite.seedShipment(1, "MYPKG", "NLRTM")

	resp, err := suite.handler.Handle(context.Background(), suite.routeQuery(shipmentID))

	suite.Require().NoError(err)
	suite.True(resp.IsDerived)
	suite.Require().Len(resp.Nodes, 2)
	suite.Equal(0, resp.Nodes[0].Sequence)
	suite.Equal("MYPKG", resp.Nodes[0].PortCode)
	suite.Equal(route.RoleOrigin.String(), resp.Nodes[0].Role)
	suite.Equal(1, resp.Nodes[1].Sequence)
	suite.Equal("NLRTM", resp.Nodes[1].PortCode)
	suite.Equal(route.RoleDestination.String(), resp.Nodes[1].Role)
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) TestDerivedRouteIsStableAcrossReads() {
	shipmentID := suite.seedShipment(2, "MYPKG", "NLRTM")
	query := suite.routeQuery(shipmentID)

	first, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	second, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) TestPersistedRouteReplacesDerivation() {
	ctx := context.Background()
	shipmentID := suite.seedShipment(3, "MYPKG", "NLRTM")

	aggregate, err := route.NewRoute(shipmentID, []route.Node{
		suite.node("MYPKG", "Port Klang", route.RoleOrigin),
		suite.node("AEJEA", "Jebel Ali", route.RoleTranship),
		suite.node("NLRTM", "Rotterdam", route.RoleDestination),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(routerepo.NewGormRouteRepository(suite.db).Replace(ctx, aggregate))

	resp, err := suite.handler.Handle(ctx, suite.routeQuery(shipmentID))

	suite.Require().NoError(err)
	suite.False(resp.IsDerived)
	suite.Require().Len(resp.Nodes, 3)
	suite.Equal("AEJEA", resp.Nodes[1].PortCode)
	suite.Equal(route.RoleTranship.String(), resp.Nodes[1].Role)
	for i, n := range resp.Nodes {
		suite.Equal(i, n.Sequence)
	}
}

func (suite *GetRouteQueryHandlerIntegrationTestSuite) TestUnknownShipmentNotFound() {
	shipmentID, err := kernel.NewShipmentID(kernel.GenerationCurrent, 999)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), suite.routeQuery(shipmentID))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetRouteQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetRouteQueryHandlerIntegrationTestSuite))
}
