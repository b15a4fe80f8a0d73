package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/core/domain/model/task"
	"forwarding/internal/core/ports"
)

type MockCounterRepository struct{ mock.Mock }

func (m *MockCounterRepository) Next(ctx context.Context, generation kernel.Generation) (int64, error) {
	args := m.Called(ctx, generation)
	return args.Get(0).(int64), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) AddTrackingIndex(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.ShipmentID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) AddShell(ctx context.Context, shipmentID kernel.ShipmentID) error {
	args := m.Called(ctx, shipmentID)
	return args.Error(0)
}
func (m *MockTaskRepository) AddTasks(ctx context.Context, tasks []*task.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}
func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}
func (m *MockTaskRepository) GetByShipment(ctx context.Context, shipmentID kernel.ShipmentID) ([]*task.Task, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}
func (m *MockTaskRepository) GetOverdue(ctx context.Context, asOf time.Time) ([]*task.Task, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Replace(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRouteRepository) Get(ctx context.Context, shipmentID kernel.ShipmentID) (*route.Route, bool, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*route.Route), args.Bool(1), args.Error(2)
}

// MockUoW satisfies every narrow unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) CounterRepository() ports.CounterRepository {
	args := m.Called()
	return args.Get(0).(ports.CounterRepository)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}
func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockCreationUoWFactory struct{ mock.Mock }

func (m *MockCreationUoWFactory) Create() commands.CreationUoW {
	args := m.Called()
	return args.Get(0).(commands.CreationUoW)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkflowUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockAuditLogger struct{ mock.Mock }

func (m *MockAuditLogger) Record(ctx context.Context, entry ports.AuditEntry) {
	m.Called(ctx, entry)
}

type MockDocumentParser struct{ mock.Mock }

func (m *MockDocumentParser) Parse(ctx context.Context, fileName string, content []byte) (ports.ParsedShipmentDocument, error) {
	args := m.Called(ctx, fileName, content)
	return args.Get(0).(ports.ParsedShipmentDocument), args.Error(1)
}

func operatorActor(t *testing.T) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), "ops@forwarder.example", account.RoleOperator)
	require.NoError(t, err)
	return actor
}

func customerActor(t *testing.T) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), "admin@customer.example", account.RoleCustomerAdmin)
	require.NoError(t, err)
	return actor
}

func mustPort(t *testing.T, code string) kernel.PortCode {
	t.Helper()
	p, err := kernel.NewPortCode(code)
	require.NoError(t, err)
	return p
}

func storedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	shipmentID, err := kernel.NewShipmentID(kernel.GenerationCurrent, 42)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		shipment.Identity{ShipmentID: shipmentID, TrackingCode: kernel.NewRandomTrackingCode()},
		mustPort(t, "MYPKG"), mustPort(t, "SGSIN"),
		shipment.LoadFCL,
		kernel.NewUUID(), kernel.NewUUID(),
		"electronics",
		kernel.NewUUID(),
		time.Now(),
	)
	require.NoError(t, err)
	return s
}

func storedTask(t *testing.T, shipmentID kernel.ShipmentID, taskType task.Type, legLevel int, mode task.Mode) *task.Task {
	t.Helper()
	assignee, err := task.NewAssignee(task.PartyForwarder, "")
	require.NoError(t, err)

	tk, err := task.NewTask(kernel.NewUUID(), shipmentID, taskType, legLevel, mode, task.VisibilityVisible, assignee)
	require.NoError(t, err)
	return tk
}
