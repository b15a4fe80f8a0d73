package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/core/domain/model/task"
	"forwarding/internal/pkg/errs"
)

func TestSetCommercialTermsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s := storedShipment(t)
	terms, err := shipment.NewTerms(shipment.IncotermFOB, shipment.TransactionImport)
	require.NoError(t, err)

	cmd, err := commands.NewSetCommercialTermsCommand(s.ID(), terms, operatorActor(t))
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, s).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("AddTasks", mock.Anything, mock.MatchedBy(func(tasks []*task.Task) bool {
			return len(tasks) == 7
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetCommercialTermsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, s.Terms().IsSet())
	shipmentRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetCommercialTermsCommandHandler_Handle_CustomerDenied(t *testing.T) {
	s := storedShipment(t)
	terms, err := shipment.NewTerms(shipment.IncotermFOB, shipment.TransactionImport)
	require.NoError(t, err)

	cmd, err := commands.NewSetCommercialTermsCommand(s.ID(), terms, customerActor(t))
	require.NoError(t, err)

	factory := new(MockWorkflowUoWFactory)
	h := commands.NewSetCommercialTermsCommandHandler(factory)
	err = h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestSetCommercialTermsCommandHandler_Handle_TermsAlreadySet(t *testing.T) {
	ctx := t.Context()
	s := storedShipment(t)
	terms, err := shipment.NewTerms(shipment.IncotermFOB, shipment.TransactionImport)
	require.NoError(t, err)
	require.NoError(t, s.SetTerms(terms, s.CreatedAt()))

	cmd, err := commands.NewSetCommercialTermsCommand(s.ID(), terms, operatorActor(t))
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetCommercialTermsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}
