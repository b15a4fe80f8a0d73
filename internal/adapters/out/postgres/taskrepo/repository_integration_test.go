package taskrepo_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres/taskrepo"
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/task"
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

// TaskRepositoryIntegrationTestSuite verifies workflow task persistence
// against a real PostgreSQL instance.
type TaskRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *taskrepo.GormTaskRepository
	tracker    *MockAggregateTracker
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupSuite() {
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
		&taskrepo.TaskDTO{},
		&taskrepo.WorkflowShellDTO{},
	))
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tasks, workflow_shells").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = taskrepo.NewGormTaskRepository(suite.db, suite.tracker)
}

func (suite *TaskRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TaskRepositoryIntegrationTestSuite) shipmentID(sequence int64) kernel.ShipmentID {
	suite.T().Helper()
	id, err := kernel.NewShipmentID(kernel.GenerationCurrent, sequence)
	suite.Require().NoError(err)
	return id
}

func (suite *TaskRepositoryIntegrationTestSuite) newTask(
	shipmentID kernel.ShipmentID,
	taskType task.Type,
	legLevel int,
	mode task.Mode,
) *task.Task {
	suite.T().Helper()

	assignee, err := task.NewAssignee(task.PartyForwarder, "")
	suite.Require().NoError(err)

	aggregate, err := task.NewTask(
		kernel.NewUUID(),
		shipmentID,
		taskType,
		legLevel,
		mode,
		task.VisibilityVisible,
		assignee,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *TaskRepositoryIntegrationTestSuite) operator() account.Actor {
	suite.T().Helper()
	actor, err := account.NewActor(kernel.NewUUID(), "ops@af.example", account.RoleOperator)
	suite.Require().NoError(err)
	return actor
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAddShell() {
	ctx := context.Background()
	shipmentID := suite.shipmentID(1)

	suite.Require().NoError(suite.repository.AddShell(ctx, shipmentID))

	var count int64
	err := suite.db.Model(&taskrepo.WorkflowShellDTO{}).
		Where("shipment_id = ?", shipmentID.String()).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAddTasksAndGetByShipmentInLegOrder() {
	ctx := context.Background()
	shipmentID := suite.shipmentID(2)

	// Insert out of leg order to prove the read side sorts.
	tasks := []*task.Task{
		suite.newTask(shipmentID, task.TypePortOfDischarge, 4, task.ModeTracked),
		suite.newTask(shipmentID, task.TypeOriginHaulage, 0, task.ModeAssigned),
		suite.newTask(shipmentID, task.TypePortOfLoading, 3, task.ModeTracked),
	}
	suite.Require().NoError(suite.repository.AddTasks(ctx, tasks))

	restored, err := suite.repository.GetByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Require().Len(restored, 3)
	suite.Equal(0, restored[0].LegLevel())
	suite.Equal(3, restored[1].LegLevel())
	suite.Equal(4, restored[2].LegLevel())
	suite.Equal(task.TypeOriginHaulage, restored[0].TaskType())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAddTasksRejectsEmptySlice() {
	err := suite.repository.AddTasks(context.Background(), nil)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGetNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// Undoing a completion clears the actual timestamp. The update must write the
// cleared field back as NULL rather than leave the stale value behind.
func (suite *TaskRepositoryIntegrationTestSuite) TestUpdateWritesClearedFieldsAsNull() {
	ctx := context.Background()
	shipmentID := suite.shipmentID(3)
	aggregate := suite.newTask(shipmentID, task.TypeExportClearance, 2, task.ModeAssigned)
	suite.Require().NoError(suite.repository.AddTasks(ctx, []*task.Task{aggregate}))

	actor := suite.operator()
	suite.Require().NoError(aggregate.MarkComplete(actor, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	completed, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(task.StatusCompleted, completed.Status())
	suite.NotNil(completed.ActualEnd())

	suite.Require().NoError(completed.UndoComplete(actor))
	suite.Require().NoError(suite.repository.Update(ctx, completed))

	reverted, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(task.StatusPending, reverted.Status())
	suite.Nil(reverted.ActualEnd())
	suite.Nil(reverted.CompletedAt())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdateNotFound() {
	aggregate := suite.newTask(suite.shipmentID(4), task.TypeOriginHaulage, 0, task.ModeAssigned)

	err := suite.repository.Update(context.Background(), aggregate)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGetOverdueFiltersCompletedAndIgnored() {
	ctx := context.Background()
	shipmentID := suite.shipmentID(5)
	now := time.Now().UTC()
	past := now.Add(-48 * time.Hour)

	overdue := suite.newTask(shipmentID, task.TypeOriginHaulage, 0, task.ModeAssigned)
	completed := suite.newTask(shipmentID, task.TypeExportClearance, 2, task.ModeAssigned)
	ignored := suite.newTask(shipmentID, task.TypeImportClearance, 5, task.ModeIgnored)
	future := suite.newTask(shipmentID, task.TypeDestinationHaulage, 6, task.ModeAssigned)

	actor := suite.operator()

	suite.Require().NoError(overdue.Apply(actor, task.Patch{DueDate: &past}))
	suite.Require().NoError(completed.Apply(actor, task.Patch{DueDate: &past}))
	suite.Require().NoError(completed.MarkComplete(actor, now))
	suite.Require().NoError(ignored.Apply(actor, task.Patch{DueDate: &past}))

	futureDue := now.Add(48 * time.Hour)
	suite.Require().NoError(future.Apply(actor, task.Patch{DueDate: &futureDue}))

	suite.Require().NoError(suite.repository.AddTasks(ctx, []*task.Task{overdue, completed, ignored, future}))

	result, err := suite.repository.GetOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID().IsEqual(overdue.ID()))
}

func TestTaskRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryIntegrationTestSuite))
}
