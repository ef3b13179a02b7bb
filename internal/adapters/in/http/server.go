// Package http exposes the order lifecycle over a JSON API.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/ports"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	changeStatusHandler          commands.ChangeStatusCommandHandler
	addPartHandler               commands.AddPartCommandHandler
	updatePartHandler            commands.UpdatePartCommandHandler
	removePartHandler            commands.RemovePartCommandHandler
	setPartFlagHandler           commands.SetPartFlagCommandHandler
	bulkAssignOrderNumberHandler commands.BulkAssignOrderNumberCommandHandler
	addLaborHandler              commands.AddLaborCommandHandler
	updateLaborHandler           commands.UpdateLaborCommandHandler
	removeLaborHandler           commands.RemoveLaborCommandHandler
	setServicesHandler           commands.SetServicesCommandHandler
	convertQuoteHandler          commands.ConvertQuoteCommandHandler
	splitWorkOrderHandler        commands.SplitWorkOrderCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getActiveWorkOrdersHandler queries.GetActiveWorkOrdersQueryHandler

	taxPolicy ports.TaxPolicy
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeStatusCommandHandler,
	addPartHandler commands.AddPartCommandHandler,
	updatePartHandler commands.UpdatePartCommandHandler,
	removePartHandler commands.RemovePartCommandHandler,
	setPartFlagHandler commands.SetPartFlagCommandHandler,
	bulkAssignOrderNumberHandler commands.BulkAssignOrderNumberCommandHandler,
	addLaborHandler commands.AddLaborCommandHandler,
	updateLaborHandler commands.UpdateLaborCommandHandler,
	removeLaborHandler commands.RemoveLaborCommandHandler,
	setServicesHandler commands.SetServicesCommandHandler,
	convertQuoteHandler commands.ConvertQuoteCommandHandler,
	splitWorkOrderHandler commands.SplitWorkOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveWorkOrdersHandler queries.GetActiveWorkOrdersQueryHandler,
	taxPolicy ports.TaxPolicy,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		changeStatusHandler:          changeStatusHandler,
		addPartHandler:               addPartHandler,
		updatePartHandler:            updatePartHandler,
		removePartHandler:            removePartHandler,
		setPartFlagHandler:           setPartFlagHandler,
		bulkAssignOrderNumberHandler: bulkAssignOrderNumberHandler,
		addLaborHandler:              addLaborHandler,
		updateLaborHandler:           updateLaborHandler,
		removeLaborHandler:           removeLaborHandler,
		setServicesHandler:           setServicesHandler,
		convertQuoteHandler:          convertQuoteHandler,
		splitWorkOrderHandler:        splitWorkOrderHandler,
		getOrderHandler:              getOrderHandler,
		getActiveWorkOrdersHandler:   getActiveWorkOrdersHandler,
		taxPolicy:                    taxPolicy,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeStatus)
	api.POST("/orders/:id/parts", s.AddPart)
	api.PATCH("/orders/:id/parts/:partId", s.UpdatePart)
	api.DELETE("/orders/:id/parts/:partId", s.RemovePart)
	api.POST("/orders/:id/parts/:partId/flags", s.SetPartFlag)
	api.POST("/orders/:id/parts/bulk-order-number", s.BulkAssignOrderNumber)
	api.POST("/orders/:id/labor", s.AddLabor)
	api.PATCH("/orders/:id/labor/:laborId", s.UpdateLabor)
	api.DELETE("/orders/:id/labor/:laborId", s.RemoveLabor)
	api.PUT("/orders/:id/services", s.SetServices)
	api.POST("/quotes/:id/convert", s.ConvertQuote)
	api.GET("/workorders/active", s.GetActiveWorkOrders)
	api.POST("/workorders/:id/split", s.SplitWorkOrder)
}

// CreateOrder handles POST /api/v1/orders - opens a new quote or work order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	docType, err := order.DocTypeFromString(req.DocType)
	if err != nil {
		return respondError(ctx, err)
	}
	customerRef, err := kernel.UUIDFromString(req.CustomerRef)
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleRef, err := kernel.UUIDFromString(req.VehicleRef)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, docType, customerRef, vehicleRef, req.Title, req.Services)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a full order document
// with computed totals.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(resp))
}

// GetActiveWorkOrders handles GET /api/v1/workorders/active.
func (s *Server) GetActiveWorkOrders(ctx echo.Context) error {
	query := queries.NewGetActiveWorkOrdersQuery()

	workOrders, err := s.getActiveWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]WorkOrderListItem, len(workOrders))
	for i, wo := range workOrders {
		response[i] = WorkOrderListItem{
			ID:        wo.ID.String(),
			Title:     wo.Title,
			Status:    wo.Status,
			Version:   wo.Version,
			UpdatedAt: wo.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	var holdReason *order.HoldReason
	if req.HoldReason != nil {
		code, err := order.HoldReasonCodeFromString(req.HoldReason.Code)
		if err != nil {
			return respondError(ctx, err)
		}
		reason, err := order.NewHoldReason(code, req.HoldReason.OtherText)
		if err != nil {
			return respondError(ctx, err)
		}
		holdReason = &reason
	}

	cmd, err := commands.NewChangeStatusCommand(orderID, target, holdReason, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddPart handles POST /api/v1/orders/:id/parts.
func (s *Server) AddPart(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddPartRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	unitCost, err := kernel.MoneyFromString(req.UnitCost)
	if err != nil {
		return respondError(ctx, err)
	}
	unitPrice, err := kernel.MoneyFromString(req.UnitPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	partID := kernel.NewUUID()
	cmd, err := commands.NewAddPartCommand(
		orderID, partID, req.Name, req.PartNumber, req.Vendor, req.Supplier,
		req.Quantity, unitCost, unitPrice, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addPartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddLineItemResponse{ID: partID.String()})
}

// UpdatePart handles PATCH /api/v1/orders/:id/parts/:partId.
func (s *Server) UpdatePart(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	partID, err := kernel.UUIDFromString(ctx.Param("partId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdatePartRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	patch := order.PartPatch{
		Name:                req.Name,
		PartNumber:          req.PartNumber,
		Vendor:              req.Vendor,
		Supplier:            req.Supplier,
		PurchaseOrderNumber: req.PurchaseOrderNumber,
		Quantity:            req.Quantity,
	}
	if req.UnitCost != nil {
		unitCost, err := kernel.MoneyFromString(*req.UnitCost)
		if err != nil {
			return respondError(ctx, err)
		}
		patch.UnitCost = &unitCost
	}
	if req.UnitPrice != nil {
		unitPrice, err := kernel.MoneyFromString(*req.UnitPrice)
		if err != nil {
			return respondError(ctx, err)
		}
		patch.UnitPrice = &unitPrice
	}

	cmd, err := commands.NewUpdatePartCommand(orderID, partID, patch, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updatePartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemovePart handles DELETE /api/v1/orders/:id/parts/:partId. The expected
// version travels as the "version" query parameter.
func (s *Server) RemovePart(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	partID, err := kernel.UUIDFromString(ctx.Param("partId"))
	if err != nil {
		return respondError(ctx, err)
	}
	expectedVersion, ok := expectedVersionParam(ctx)
	if !ok {
		return respondBadRequest(ctx, "Invalid version query parameter")
	}

	cmd, err := commands.NewRemovePartCommand(orderID, partID, expectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removePartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPartFlag handles POST /api/v1/orders/:id/parts/:partId/flags.
func (s *Server) SetPartFlag(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	partID, err := kernel.UUIDFromString(ctx.Param("partId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetPartFlagRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPartFlagCommand(
		orderID, partID, commands.PartFlag(req.Flag), req.Value, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setPartFlagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BulkAssignOrderNumber handles POST /api/v1/orders/:id/parts/bulk-order-number.
func (s *Server) BulkAssignOrderNumber(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req BulkAssignOrderNumberRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewBulkAssignOrderNumberCommand(
		orderID, req.Vendor, req.OrderNumber, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.bulkAssignOrderNumberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddLabor handles POST /api/v1/orders/:id/labor.
func (s *Server) AddLabor(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddLaborRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	billingType, err := order.BillingTypeFromString(req.BillingType)
	if err != nil {
		return respondError(ctx, err)
	}
	rate, err := kernel.MoneyFromString(req.Rate)
	if err != nil {
		return respondError(ctx, err)
	}

	laborID := kernel.NewUUID()
	cmd, err := commands.NewAddLaborCommand(
		orderID, laborID, req.Description, billingType, req.Hours, rate, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addLaborHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddLineItemResponse{ID: laborID.String()})
}

// UpdateLabor handles PATCH /api/v1/orders/:id/labor/:laborId.
func (s *Server) UpdateLabor(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	laborID, err := kernel.UUIDFromString(ctx.Param("laborId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateLaborRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	patch := order.LaborPatch{
		Description: req.Description,
		Hours:       req.Hours,
	}
	if req.BillingType != nil {
		billingType, err := order.BillingTypeFromString(*req.BillingType)
		if err != nil {
			return respondError(ctx, err)
		}
		patch.BillingType = &billingType
	}
	if req.Rate != nil {
		rate, err := kernel.MoneyFromString(*req.Rate)
		if err != nil {
			return respondError(ctx, err)
		}
		patch.Rate = &rate
	}

	cmd, err := commands.NewUpdateLaborCommand(orderID, laborID, patch, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateLaborHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveLabor handles DELETE /api/v1/orders/:id/labor/:laborId. The expected
// version travels as the "version" query parameter.
func (s *Server) RemoveLabor(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	laborID, err := kernel.UUIDFromString(ctx.Param("laborId"))
	if err != nil {
		return respondError(ctx, err)
	}
	expectedVersion, ok := expectedVersionParam(ctx)
	if !ok {
		return respondBadRequest(ctx, "Invalid version query parameter")
	}

	cmd, err := commands.NewRemoveLaborCommand(orderID, laborID, expectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeLaborHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetServices handles PUT /api/v1/orders/:id/services.
func (s *Server) SetServices(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetServicesRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetServicesCommand(orderID, req.Services, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setServicesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConvertQuote handles POST /api/v1/quotes/:id/convert.
func (s *Server) ConvertQuote(ctx echo.Context) error {
	quoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ConvertQuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	partIDs, err := parseUUIDs(req.PartIDs)
	if err != nil {
		return respondError(ctx, err)
	}
	laborIDs, err := parseUUIDs(req.LaborIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	workOrderID := kernel.NewUUID()
	cmd, err := commands.NewConvertQuoteCommand(
		quoteID, workOrderID, partIDs, laborIDs, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.convertQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	workOrderView, err := s.orderView(result.WorkOrder)
	if err != nil {
		return respondError(ctx, err)
	}
	quoteView, err := s.orderView(result.Quote)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ConvertQuoteResponse{
		WorkOrder:     workOrderView,
		Quote:         quoteView,
		QuoteArchived: result.QuoteArchived,
	})
}

// SplitWorkOrder handles POST /api/v1/workorders/:id/split.
func (s *Server) SplitWorkOrder(ctx echo.Context) error {
	sourceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SplitWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	partIDs, err := parseUUIDs(req.PartIDs)
	if err != nil {
		return respondError(ctx, err)
	}
	laborIDs, err := parseUUIDs(req.LaborIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	newWorkOrderID := kernel.NewUUID()
	cmd, err := commands.NewSplitWorkOrderCommand(
		sourceID, newWorkOrderID, req.NewTitle, partIDs, laborIDs, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.splitWorkOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	sourceView, err := s.orderView(result.Source)
	if err != nil {
		return respondError(ctx, err)
	}
	newView, err := s.orderView(result.NewWorkOrder)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SplitWorkOrderResponse{
		OriginalWorkOrder: sourceView,
		NewWorkOrder:      newView,
	})
}

// orderView prices an aggregate and maps it onto the wire shape.
func (s *Server) orderView(aggregate *order.Order) (OrderView, error) {
	resp, err := queries.NewGetOrderQueryResponse(aggregate, s.taxPolicy.RateFor(aggregate))
	if err != nil {
		return OrderView{}, err
	}
	return toOrderView(resp), nil
}

// expectedVersionParam reads the "version" query parameter of a DELETE request.
func expectedVersionParam(ctx echo.Context) (int, bool) {
	raw := ctx.QueryParam("version")
	if raw == "" {
		return 0, false
	}

	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return version, true
}

// parseUUIDs parses a list of string identifiers.
func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
