// Package http provides the inbound HTTP adapter: request contracts, the
// actor middleware, and the handlers that translate between the REST surface
// and the application's commands and queries.
package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/route"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/core/domain/model/task"
	"forwarding/internal/core/ports"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler     commands.CreateShipmentCommandHandler
	setCommercialTermsHandler commands.SetCommercialTermsCommandHandler
	editTaskHandler           commands.EditTaskCommandHandler
	completeTaskHandler       commands.CompleteTaskCommandHandler
	undoTaskHandler           commands.UndoTaskCompletionCommandHandler
	replaceRouteHandler       commands.ReplaceRouteCommandHandler
	updateRouteTimingHandler  commands.UpdateRouteTimingCommandHandler
	applyDocumentHandler      commands.ApplyParsedDocumentCommandHandler

	// Query handlers
	getTasksHandler      queries.GetTasksQueryHandler
	getRouteHandler      queries.GetRouteQueryHandler
	trackShipmentHandler queries.TrackShipmentQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	setCommercialTermsHandler commands.SetCommercialTermsCommandHandler,
	editTaskHandler commands.EditTaskCommandHandler,
	completeTaskHandler commands.CompleteTaskCommandHandler,
	undoTaskHandler commands.UndoTaskCompletionCommandHandler,
	replaceRouteHandler commands.ReplaceRouteCommandHandler,
	updateRouteTimingHandler commands.UpdateRouteTimingCommandHandler,
	applyDocumentHandler commands.ApplyParsedDocumentCommandHandler,
	getTasksHandler queries.GetTasksQueryHandler,
	getRouteHandler queries.GetRouteQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:     createShipmentHandler,
		setCommercialTermsHandler: setCommercialTermsHandler,
		editTaskHandler:           editTaskHandler,
		completeTaskHandler:       completeTaskHandler,
		undoTaskHandler:           undoTaskHandler,
		replaceRouteHandler:       replaceRouteHandler,
		updateRouteTimingHandler:  updateRouteTimingHandler,
		applyDocumentHandler:      applyDocumentHandler,
		getTasksHandler:           getTasksHandler,
		getRouteHandler:           getRouteHandler,
		trackShipmentHandler:      trackShipmentHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. Everything under
// /api/v1 except the tracking endpoint requires a verified session.
func (s *Server) RegisterRoutes(e *echo.Echo, verifier ports.IdentityVerifier) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// Public: tracking codes are shared with consignees outside the platform.
	e.GET("/api/v1/tracking/:code", s.TrackShipment)

	api := e.Group("/api/v1", ActorMiddleware(verifier))
	api.POST("/shipments", s.CreateShipment)
	api.PUT("/shipments/:id/terms", s.SetCommercialTerms)
	api.POST("/shipments/:id/documents", s.UploadDocument)
	api.GET("/shipments/:id/tasks", s.GetTasks)
	api.PATCH("/shipments/:id/tasks/:taskId", s.EditTask)
	api.POST("/shipments/:id/tasks/:taskId/complete", s.CompleteTask)
	api.POST("/shipments/:id/tasks/:taskId/undo-completion", s.UndoTaskCompletion)
	api.GET("/shipments/:id/route", s.GetRoute)
	api.PUT("/shipments/:id/route", s.ReplaceRoute)
	api.PATCH("/shipments/:id/route/:sequence", s.UpdateRouteTiming)
}

// CreateShipment godoc
//
//	@Summary	Open a new shipment file
//	@Tags		shipments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateShipmentRequest	true	"Shipment creation fields"
//	@Success	201		{object}	CreateShipmentResponse
//	@Failure	400		{object}	Error
//	@Router		/shipments [post]
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	originPort, err := kernel.NewPortCode(req.OriginPort)
	if err != nil {
		return writeError(ctx, err)
	}
	destinationPort, err := kernel.NewPortCode(req.DestinationPort)
	if err != nil {
		return writeError(ctx, err)
	}
	loadType, err := shipment.LoadTypeFromString(req.LoadType)
	if err != nil {
		return writeError(ctx, err)
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}
	counterpartyID, err := kernel.UUIDFromString(req.CounterpartyID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		originPort, destinationPort, loadType,
		customerID, counterpartyID,
		req.Cargo,
		actorFrom(ctx),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	identity, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{
		ShipmentID:   identity.ShipmentID.String(),
		TrackingCode: identity.TrackingCode.String(),
	})
}

// SetCommercialTerms godoc
//
//	@Summary	Set a shipment's commercial terms and generate its workflow
//	@Tags		shipments
//	@Accept		json
//	@Param		id		path	string			true	"Shipment ID"
//	@Param		request	body	SetTermsRequest	true	"Incoterm and transaction type"
//	@Success	204
//	@Failure	400	{object}	Error
//	@Failure	403	{object}	Error
//	@Router		/shipments/{id}/terms [put]
func (s *Server) SetCommercialTerms(ctx echo.Context) error {
	shipmentID, err := kernel.ParseShipmentID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req SetTermsRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	incoterm, err := shipment.IncotermFromString(req.Incoterm)
	if err != nil {
		return writeError(ctx, err)
	}
	transactionType, err := shipment.TransactionTypeFromString(req.TransactionType)
	if err != nil {
		return writeError(ctx, err)
	}
	terms, err := shipment.NewTerms(incoterm, transactionType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetCommercialTermsCommand(shipmentID, terms, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setCommercialTermsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadDocument godoc
//
//	@Summary	Upload a shipping document and merge its parsed fields
//	@Tags		shipments
//	@Accept		multipart/form-data
//	@Param		id			path	string	true	"Shipment ID"
//	@Param		document	formData	file	true	"Shipping document"
//	@Success	204
//	@Failure	400	{object}	Error
//	@Router		/shipments/{id}/documents [post]
func (s *Server) UploadDocument(ctx echo.Context) error {
	shipmentID, err := kernel.ParseShipmentID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	fileHeader, err := ctx.FormFile("document")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Missing document upload",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return writeError(ctx, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApplyParsedDocumentCommand(shipmentID, fileHeader.Filename, content, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.applyDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTasks godoc
//
//	@Summary	List a shipment's workflow tasks in leg order
//	@Tags		tasks
//	@Produce	json
//	@Param		id				path	string	true	"Shipment ID"
//	@Param		include_hidden	query	bool	false	"Include hidden tasks"
//	@Success	200	{array}		Task
//	@Failure	404	{object}	Error
//	@Router		/shipments/{id}/tasks [get]
func (s *Server) GetTasks(ctx echo.Context) error {
	shipmentID, err := kernel.ParseShipmentID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	includeHidden := ctx.QueryParam("include_hidden") == "true" && actorFrom(ctx).IsInternal()

	query, err := queries.NewGetTasksQuery(shipmentID, includeHidden)
	if err != nil {
		return writeError(ctx, err)
	}

	tasks, err := s.getTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Task, len(tasks))
	for i, t := range tasks {
		response[i] = Task{
			ID:             t.ID.String(),
			TaskType:       t.TaskType,
			LegLevel:       t.LegLevel,
			Status:         t.Status,
			Mode:           t.Mode,
			Visibility:     t.Visibility,
			AssigneeParty:  t.AssigneeParty,
			ThirdPartyName: t.ThirdPartyName,
			DisplayLabel:   t.DisplayLabel,
			Timing: TaskTiming{
				ScheduledStartLabel: t.Timing.ScheduledStartLabel,
				ScheduledEndLabel:   t.Timing.ScheduledEndLabel,
				ActualStartLabel:    t.Timing.ActualStartLabel,
				ActualEndLabel:      t.Timing.ActualEndLabel,
				EndSuppressed:       t.Timing.EndSuppressed,
			},
			ScheduledStart: t.ScheduledStart,
			ScheduledEnd:   t.ScheduledEnd,
			ActualStart:    t.ActualStart,
			ActualEnd:      t.ActualEnd,
			DueDate:        t.DueDate,
			Notes:          t.Notes,
			CompletedAt:    t.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EditTask godoc
//
//	@Summary	Partially edit a workflow task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Shipment ID"
//	@Param		taskId	path		string				true	"Task ID"
//	@Param		request	body		TaskPatchRequest	true	"Fields to change"
//	@Success	200		{object}	AdvisoryResponse
//	@Failure	400		{object}	Error
//	@Failure	403		{object}	Error
//	@Router		/shipments/{id}/tasks/{taskId} [patch]
func (s *Server) EditTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("taskId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req TaskPatchRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	patch, err := patchFromRequest(req)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewEditTaskCommand(taskID, patch, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	advisory, err := s.editTaskHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdvisoryResponse{Advisory: advisory})
}

// CompleteTask godoc
//
//	@Summary	Mark a workflow task complete
//	@Tags		tasks
//	@Produce	json
//	@Param		id		path		string	true	"Shipment ID"
//	@Param		taskId	path		string	true	"Task ID"
//	@Success	200		{object}	AdvisoryResponse
//	@Failure	400		{object}	Error
//	@Failure	403		{object}	Error
//	@Router		/shipments/{id}/tasks/{taskId}/complete [post]
func (s *Server) CompleteTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("taskId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteTaskCommand(taskID, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	advisory, err := s.completeTaskHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdvisoryResponse{Advisory: advisory})
}

// UndoTaskCompletion godoc
//
//	@Summary	Undo a task completion
//	@Tags		tasks
//	@Param		id		path	string	true	"Shipment ID"
//	@Param		taskId	path	string	true	"Task ID"
//	@Success	204
//	@Failure	400	{object}	Error
//	@Failure	403	{object}	Error
//	@Router		/shipments/{id}/tasks/{taskId}/undo-completion [post]
func (s *Server) UndoTaskCompletion(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("taskId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUndoTaskCompletionCommand(taskID, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.undoTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRoute godoc
//
//	@Summary	Get a shipment's route timeline
//	@Tags		routes
//	@Produce	json
//	@Param		id	path		string	true	"Shipment ID"
//	@Success	200	{object}	RouteResponse
//	@Failure	404	{object}	Error
//	@Router		/shipments/{id}/route [get]
func (s *Server) GetRoute(ctx echo.Context) error {
	shipmentID, err := kernel.ParseShipmentID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRouteQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := RouteResponse{
		Nodes:     make([]RouteNode, len(result.Nodes)),
		IsDerived: result.IsDerived,
	}
	for i, n := range result.Nodes {
		response.Nodes[i] = RouteNode{
			Sequence:     n.Sequence,
			PortCode:     n.PortCode,
			PortName:     n.PortName,
			Role:         n.Role,
			ScheduledETA: n.ScheduledETA,
			ScheduledETD: n.ScheduledETD,
			ActualETA:    n.ActualETA,
			ActualETD:    n.ActualETD,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReplaceRoute godoc
//
//	@Summary	Replace a shipment's route node list
//	@Tags		routes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Shipment ID"
//	@Param		request	body		ReplaceRouteRequest	true	"Full node list in travel order"
//	@Success	200		{object}	ReplaceRouteResponse
//	@Failure	400		{object}	Error
//	@Failure	403		{object}	Error
//	@Router		/shipments/{id}/route [put]
func (s *Server) ReplaceRoute(ctx echo.Context) error {
	shipmentID, err := kernel.ParseShipmentID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ReplaceRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	nodes := make([]route.Node, 0, len(req.Nodes))
	for _, n := range req.Nodes {
		portCode, nodeErr := kernel.NewPortCode(n.PortCode)
		if nodeErr != nil {
			return writeError(ctx, nodeErr)
		}
		role, nodeErr := route.NodeRoleFromString(n.Role)
		if nodeErr != nil {
			return writeError(ctx, nodeErr)
		}
		node, nodeErr := route.NewNode(portCode, n.PortName, role, route.Timing{
			ScheduledETA: n.ScheduledETA,
			ScheduledETD: n.ScheduledETD,
			ActualETA:    n.ActualETA,
			ActualETD:    n.ActualETD,
		})
		if nodeErr != nil {
			return writeError(ctx, nodeErr)
		}
		nodes = append(nodes, node)
	}

	cmd, err := commands.NewReplaceRouteCommand(shipmentID, nodes, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	warnings, err := s.replaceRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReplaceRouteResponse{Warnings: warnings})
}

// UpdateRouteTiming godoc
//
//	@Summary	Patch timing fields on a single route node
//	@Tags		routes
//	@Accept		json
//	@Param		id			path	string					true	"Shipment ID"
//	@Param		sequence	path	int						true	"Node sequence"
//	@Param		request		body	RouteTimingPatchRequest	true	"Timing fields to change"
//	@Success	204
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/shipments/{id}/route/{sequence} [patch]
func (s *Server) UpdateRouteTiming(ctx echo.Context) error {
	shipmentID, err := kernel.ParseShipmentID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	sequence, err := strconv.Atoi(ctx.Param("sequence"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid node sequence",
		})
	}

	var req RouteTimingPatchRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateRouteTimingCommand(shipmentID, sequence, route.TimingPatch{
		ScheduledETA: req.ScheduledETA,
		ScheduledETD: req.ScheduledETD,
		ActualETA:    req.ActualETA,
		ActualETD:    req.ActualETD,
	}, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateRouteTimingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackShipment godoc
//
//	@Summary	Public tracking view for a tracking code
//	@Tags		tracking
//	@Produce	json
//	@Param		code	path		string	true	"Tracking code"
//	@Success	200		{object}	TrackingResponse
//	@Failure	404		{object}	Error
//	@Router		/tracking/{code} [get]
func (s *Server) TrackShipment(ctx echo.Context) error {
	trackingCode, err := kernel.TrackingCodeFromString(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewTrackShipmentQuery(trackingCode)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := TrackingResponse{
		ShipmentID:      result.ShipmentID,
		OriginPort:      result.OriginPort,
		DestinationPort: result.DestinationPort,
		LoadType:        result.LoadType,
		Tasks:           make([]TrackedTask, len(result.Tasks)),
	}
	for i, t := range result.Tasks {
		response.Tasks[i] = TrackedTask{
			DisplayLabel: t.DisplayLabel,
			Status:       t.Status,
			CompletedAt:  t.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// patchFromRequest converts the wire patch into a domain patch, resolving
// enumerated fields. An assignee party change carries the third-party name
// from the same request.
func patchFromRequest(req TaskPatchRequest) (task.Patch, error) {
	patch := task.Patch{
		ScheduledStart:  req.ScheduledStart,
		ScheduledEnd:    req.ScheduledEnd,
		ActualStart:     req.ActualStart,
		ActualEnd:       req.ActualEnd,
		DueDate:         req.DueDate,
		DueDateOverride: req.DueDateOverride,
		Notes:           req.Notes,
	}

	if req.Status != nil {
		status, err := task.StatusFromString(*req.Status)
		if err != nil {
			return task.Patch{}, err
		}
		patch.Status = &status
	}
	if req.Mode != nil {
		mode, err := task.ModeFromString(*req.Mode)
		if err != nil {
			return task.Patch{}, err
		}
		patch.Mode = &mode
	}
	if req.Visibility != nil {
		visibility, err := task.VisibilityFromString(*req.Visibility)
		if err != nil {
			return task.Patch{}, err
		}
		patch.Visibility = &visibility
	}
	if req.AssigneeParty != nil {
		party, err := task.PartyFromString(*req.AssigneeParty)
		if err != nil {
			return task.Patch{}, err
		}
		thirdPartyName := ""
		if req.ThirdPartyName != nil {
			thirdPartyName = *req.ThirdPartyName
		}
		assignee, err := task.NewAssignee(party, thirdPartyName)
		if err != nil {
			return task.Patch{}, err
		}
		patch.Assignee = &assignee
	}

	return patch, nil
}
