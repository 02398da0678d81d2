package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerTenantHandler     commands.RegisterTenantCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	evaluateFallbackHandler   commands.EvaluateFallbackCommandHandler
	buildDispatchQueueHandler commands.BuildDispatchQueueCommandHandler

	// Query handlers
	getDispatchableOrdersHandler queries.GetDispatchableOrdersQueryHandler
	checkBatchHandler            queries.CheckBatchQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerTenantHandler commands.RegisterTenantCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	evaluateFallbackHandler commands.EvaluateFallbackCommandHandler,
	buildDispatchQueueHandler commands.BuildDispatchQueueCommandHandler,
	getDispatchableOrdersHandler queries.GetDispatchableOrdersQueryHandler,
	checkBatchHandler queries.CheckBatchQueryHandler,
) *Server {
	return &Server{
		registerTenantHandler:        registerTenantHandler,
		createOrderHandler:           createOrderHandler,
		evaluateFallbackHandler:      evaluateFallbackHandler,
		buildDispatchQueueHandler:    buildDispatchQueueHandler,
		getDispatchableOrdersHandler: getDispatchableOrdersHandler,
		checkBatchHandler:            checkBatchHandler,
	}
}

// CreateTenant handles POST /api/v1/tenants - registers a tenant.
func (s *Server) CreateTenant(ctx echo.Context) error {
	var newTenant servers.NewTenant
	if err := ctx.Bind(&newTenant); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	tenantID, err := idOrNew(newTenant.Id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tenant id")
	}

	var marketID *kernel.UUID
	if newTenant.MarketId != nil {
		mID, err := kernel.UUIDFromBytes((*newTenant.MarketId)[:])
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid market id")
		}
		marketID = &mID
	}

	allowFallback := false
	if newTenant.AllowMarketCourierFallback != nil {
		allowFallback = *newTenant.AllowMarketCourierFallback
	}

	prepTimeMin := 0
	if newTenant.DefaultPrepTimeMin != nil {
		prepTimeMin = *newTenant.DefaultPrepTimeMin
	}

	cmd, err := commands.NewRegisterTenantCommand(
		tenantID,
		newTenant.Name,
		tenantTypeFromAPI(newTenant.TenantType),
		marketID,
		allowFallback,
		providerModeFromAPI(newTenant.DeliveryProviderMode),
		prepTimeMin,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tenant data: "+err.Error())
	}

	if handleErr := s.registerTenantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectAlreadyExists) {
			return errorResponse(ctx, http.StatusConflict, "Tenant already exists")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to register tenant")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders - registers an incoming order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := idOrNew(newOrder.Id)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	tenantID, err := kernel.UUIDFromBytes(newOrder.TenantId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid tenant id")
	}

	prepTimeMin := 0
	if newOrder.PrepTimeMin != nil {
		prepTimeMin = *newOrder.PrepTimeMin
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		tenantID,
		fulfillmentFromAPI(newOrder.FulfillmentType),
		prepTimeMin,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrTenantNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Tenant not found")
		case errors.Is(handleErr, errs.ErrObjectAlreadyExists):
			return errorResponse(ctx, http.StatusConflict, "Order already exists")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		}
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDispatchQueue handles GET /api/v1/markets/{marketId}/dispatch-queue.
// Building the queue persists fallback transitions as a side effect.
func (s *Server) GetDispatchQueue(ctx echo.Context, marketId openapi_types.UUID) error {
	marketID, err := kernel.UUIDFromBytes(marketId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid market id")
	}

	cmd, err := commands.NewBuildDispatchQueueCommand(marketID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid market id: "+err.Error())
	}

	queue, err := s.buildDispatchQueueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNoTenantsInMarket) {
			return errorResponse(ctx, http.StatusNotFound, "Market has no tenants")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to build dispatch queue")
	}

	response := make([]servers.QueuedOrder, len(queue))
	for i, o := range queue {
		response[i] = servers.QueuedOrder{
			Id:        o.ID().Bytes(),
			TenantId:  o.TenantID().Bytes(),
			Status:    o.Status().String(),
			ReadyAt:   o.ReadyAt(),
			CreatedAt: o.CreatedAt(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDispatchableOrders handles GET /api/v1/markets/{marketId}/dispatchable-orders.
// Pure read view: no fallback evaluation, no writes.
func (s *Server) GetDispatchableOrders(ctx echo.Context, marketId openapi_types.UUID) error {
	marketID, err := kernel.UUIDFromBytes(marketId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid market id")
	}

	query, err := queries.NewGetDispatchableOrdersQuery(marketID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid market id: "+err.Error())
	}

	orders, err := s.getDispatchableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to list dispatchable orders")
	}

	response := make([]servers.QueuedOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.QueuedOrder{
			Id:        o.ID.Bytes(),
			TenantId:  o.TenantID.Bytes(),
			Status:    o.Status,
			ReadyAt:   o.ReadyAt,
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EvaluateMarketFallback handles POST /api/v1/markets/{marketId}/fallback-evaluations.
func (s *Server) EvaluateMarketFallback(ctx echo.Context, marketId openapi_types.UUID) error {
	marketID, err := kernel.UUIDFromBytes(marketId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid market id")
	}

	cmd, err := commands.NewEvaluateFallbackCommand(marketID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid market id: "+err.Error())
	}

	if handleErr := s.evaluateFallbackHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoTenantsInMarket) {
			return errorResponse(ctx, http.StatusNotFound, "Market has no tenants")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to evaluate fallback")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckBatchCompatibility handles GET /api/v1/batch-compatibility.
func (s *Server) CheckBatchCompatibility(ctx echo.Context, params servers.CheckBatchCompatibilityParams) error {
	orderA, err := kernel.UUIDFromBytes(params.OrderA[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	orderB, err := kernel.UUIDFromBytes(params.OrderB[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewCheckBatchQuery(orderA, orderB)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid batch check: "+err.Error())
	}

	result, err := s.checkBatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to check batch compatibility")
	}

	return ctx.JSON(http.StatusOK, servers.BatchCompatibility{Compatible: result.Compatible})
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

// idOrNew converts an optional API id, minting a fresh one only when the
// client sent none. An id the client did supply must be usable: the nil
// UUID is rejected rather than silently replaced.
func idOrNew(id *openapi_types.UUID) (kernel.UUID, error) {
	if id == nil {
		return kernel.NewUUID(), nil
	}

	return kernel.UUIDFromBytes((*id)[:])
}

func tenantTypeFromAPI(t servers.TenantType) tenant.Type {
	switch t {
	case servers.TenantTypeRESTAURANT:
		return tenant.Restaurant
	case servers.TenantTypeSHOP:
		return tenant.Shop
	case servers.TenantTypeSERVICE:
		return tenant.Service
	default:
		return tenant.TypeUnknown
	}
}

func providerModeFromAPI(m servers.TenantDeliveryProviderMode) tenant.ProviderMode {
	switch m {
	case servers.DeliveryProviderModeSELF:
		return tenant.SelfDelivery
	case servers.DeliveryProviderModeMARKET:
		return tenant.MarketDelivery
	case servers.DeliveryProviderModeMIXED:
		return tenant.Mixed
	default:
		return tenant.ProviderUnknown
	}
}

func fulfillmentFromAPI(f servers.FulfillmentType) order.FulfillmentType {
	switch f {
	case servers.FulfillmentTypePICKUP:
		return order.Pickup
	case servers.FulfillmentTypeDELIVERY:
		return order.Delivery
	default:
		return order.FulfillmentUnknown
	}
}
