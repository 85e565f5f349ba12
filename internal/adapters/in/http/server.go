package http

import (
	"context"
	"net/http"

	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/application/usecases/queries"
	"taxi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int, error)
	}

	updateDestinationHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateDestinationCommand) error
	}

	assignDriverHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDriverCommand) error
	}

	changeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}

	getOrderInfoHandler interface {
		Handle(ctx context.Context, query queries.GetOrderInfoQuery) (queries.GetOrderInfoQueryResponse, error)
	}
)

// Server handles the order HTTP API by dispatching to command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       createOrderHandler
	updateDestinationHandler updateDestinationHandler
	assignDriverHandler      assignDriverHandler
	changeOrderStatusHandler changeOrderStatusHandler

	// Query handlers
	getOrderInfoHandler getOrderInfoHandler
}

func NewServer(
	createOrderHandler createOrderHandler,
	updateDestinationHandler updateDestinationHandler,
	assignDriverHandler assignDriverHandler,
	changeOrderStatusHandler changeOrderStatusHandler,
	getOrderInfoHandler getOrderInfoHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateDestinationHandler: updateDestinationHandler,
		assignDriverHandler:      assignDriverHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrderInfoHandler:      getOrderInfoHandler,
	}
}

// RegisterHandlers mounts the API routes on e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	orders := e.Group("/api/v1/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id/destination", s.UpdateDestination)
	orders.POST("/:id/driver", s.AssignDriver)
	orders.DELETE("/:id/driver", s.changeStatus(commands.UnassignDriver))
	orders.POST("/:id/cancel", s.changeStatus(commands.Cancel))
	orders.POST("/:id/start", s.changeStatus(commands.StartRide))
	orders.POST("/:id/finish", s.changeStatus(commands.FinishRide))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd := commands.NewCreateOrderCommand(req.FirstName, req.LastName, req.Street, req.Building)

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedOrderResponse{ID: id})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return writeError(ctx, err, "")
	}

	query, err := queries.NewGetOrderInfoQuery(orderID)
	if err != nil {
		return writeError(ctx, err, "")
	}

	info, err := s.getOrderInfoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve order")
	}

	response := OrderResponse{
		ID:        info.ID,
		Status:    info.Status.String(),
		ShortInfo: info.ShortInfo,
	}
	if info.HasDriver {
		response.DriverFullInfo = &info.DriverFullInfo
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDestination handles PUT /api/v1/orders/:id/destination.
func (s *Server) UpdateDestination(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return writeError(ctx, err, "")
	}

	var req AddressRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateDestinationCommand(orderID, req.Street, req.Building)
	if err != nil {
		return writeError(ctx, err, "")
	}

	if err = s.updateDestinationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to update destination")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return writeError(ctx, err, "")
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, req.DriverID)
	if err != nil {
		return writeError(ctx, err, "")
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to assign driver")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) changeStatus(action commands.OrderAction) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := pathOrderID(ctx)
		if err != nil {
			return writeError(ctx, err, "")
		}

		cmd, err := commands.NewChangeOrderStatusCommand(orderID, action)
		if err != nil {
			return writeError(ctx, err, "")
		}

		if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return writeError(ctx, err, "Failed to "+action.String())
		}

		return ctx.NoContent(http.StatusNoContent)
	}
}

func pathOrderID(ctx echo.Context) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return id, nil
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
