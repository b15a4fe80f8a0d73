package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"forwarding/internal/adapters/out/auditlog"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	audit      ports.AuditLogger
	verifier   ports.IdentityVerifier
	parser     ports.DocumentParser
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
	verifier ports.IdentityVerifier,
	parser ports.DocumentParser,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		audit:      auditlog.NewSlogAuditLogger(logger),
		verifier:   verifier,
		parser:     parser,
	}
}

func (c *CompositionRoot) IdentityVerifier() ports.IdentityVerifier {
	return c.verifier
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.CreationUoWFactory = FuncCreationUoWFactory(func() commands.CreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.audit)
}

func (c *CompositionRoot) CreateSetCommercialTermsCommandHandler() commands.SetCommercialTermsCommandHandler {
	return commands.NewSetCommercialTermsCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateEditTaskCommandHandler() commands.EditTaskCommandHandler {
	return commands.NewEditTaskCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateCompleteTaskCommandHandler() commands.CompleteTaskCommandHandler {
	return commands.NewCompleteTaskCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateUndoTaskCompletionCommandHandler() commands.UndoTaskCompletionCommandHandler {
	return commands.NewUndoTaskCompletionCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateReplaceRouteCommandHandler() commands.ReplaceRouteCommandHandler {
	return commands.NewReplaceRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRouteTimingCommandHandler() commands.UpdateRouteTimingCommandHandler {
	return commands.NewUpdateRouteTimingCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateApplyParsedDocumentCommandHandler() commands.ApplyParsedDocumentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyParsedDocumentCommandHandler(f, c.parser)
}

func (c *CompositionRoot) CreateGetTasksQueryHandler() queries.GetTasksQueryHandler {
	return queries.NewGetTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueTasksQueryHandler() queries.GetOverdueTasksQueryHandler {
	return queries.NewGetOverdueTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) workflowUoWFactory() commands.WorkflowUoWFactory {
	return FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

type FuncCreationUoWFactory func() commands.CreationUoW

func (f FuncCreationUoWFactory) Create() commands.CreationUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}
