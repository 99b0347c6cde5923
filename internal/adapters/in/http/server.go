// Package http exposes the order management API over echo. Handlers bind
// payloads, delegate to command and query handlers, and map domain errors
// to status codes; no business rules live here.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"smartlogix/internal/core/application/usecases/commands"
	"smartlogix/internal/core/application/usecases/queries"
	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/core/domain/model/user"
	"smartlogix/internal/core/ports"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler commands.RegisterUserCommandHandler
	createOrderHandler  commands.CreateOrderCommandHandler
	transitionHandler   commands.TransitionOrderStatusCommandHandler
	importOrdersHandler commands.ImportOrdersCommandHandler
	createTenantHandler commands.CreateTenantCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getStatusSummary       queries.GetStatusSummaryQueryHandler
	getUserForLoginHandler queries.GetUserForLoginQueryHandler

	issuer     *token.Issuer
	subscriber ports.EventSubscriber
	users      ports.UserRepository
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionHandler commands.TransitionOrderStatusCommandHandler,
	importOrdersHandler commands.ImportOrdersCommandHandler,
	createTenantHandler commands.CreateTenantCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getStatusSummary queries.GetStatusSummaryQueryHandler,
	getUserForLoginHandler queries.GetUserForLoginQueryHandler,
	issuer *token.Issuer,
	subscriber ports.EventSubscriber,
	users ports.UserRepository,
) *Server {
	return &Server{
		registerUserHandler:    registerUserHandler,
		createOrderHandler:     createOrderHandler,
		transitionHandler:      transitionHandler,
		importOrdersHandler:    importOrdersHandler,
		createTenantHandler:    createTenantHandler,
		getOrderHandler:        getOrderHandler,
		getOrdersHandler:       getOrdersHandler,
		getStatusSummary:       getStatusSummary,
		getUserForLoginHandler: getUserForLoginHandler,
		issuer:                 issuer,
		subscriber:             subscriber,
		users:                  users,
	}
}

// RegisterRoutes wires the API onto the echo instance. The authenticated
// middleware binds the caller's tenant; the auth endpoints stay outside it.
func (s *Server) RegisterRoutes(e *echo.Echo, authenticated echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	auth := e.Group("/api/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)

	api := e.Group("/api", authenticated)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/events", s.StreamOrderEvents)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.TransitionOrderStatus)
	api.POST("/orders/import", s.ImportOrders)
	api.GET("/metrics/summary", s.StatusSummary)

	admin := api.Group("/admin", RequireRole(user.RoleAdmin))
	admin.POST("/tenants", s.CreateTenant)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/auth/register. Registering under an unknown
// tenant slug provisions the tenant.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	role := user.RoleUser
	if req.Role != "" {
		parsed, err := user.RoleFromString(req.Role)
		if err != nil {
			return writeError(ctx, err)
		}
		role = parsed
	}

	cmd, err := commands.NewRegisterUserCommand(req.Email, req.Password, role, req.TenantName, req.TenantSlug)
	if err != nil {
		return badRequest(ctx, err)
	}

	u, t, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{
		UserID:     u.ID().String(),
		Email:      u.Email(),
		Role:       u.Role().String(),
		TenantID:   t.ID().String(),
		TenantSlug: t.Slug(),
	})
}

// Login handles POST /api/auth/login. Unknown tenants, unknown users and
// wrong passwords all produce the same 401 so the endpoint cannot be used
// to enumerate accounts.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	unauthorized := func() error {
		return ctx.JSON(http.StatusUnauthorized, ErrorBody{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	query, err := queries.NewGetUserForLoginQuery(req.TenantSlug, req.Email)
	if err != nil {
		return unauthorized()
	}

	account, err := s.getUserForLoginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return unauthorized()
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return unauthorized()
	}

	tenantID, err := kernel.UUIDFromString(account.TenantID)
	if err != nil {
		return writeError(ctx, err)
	}

	signed, err := s.issuer.Issue(account.Email, tenantID, account.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: signed})
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	location, err := destinationPoint(req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.OrderNumber,
		req.Description,
		req.DestinationAddress,
		req.Weight,
		location,
		s.creatorID(ctx),
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderBodyFromAggregate(o))
}

// ListOrders handles GET /api/orders with page and size query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := intParam("page", ctx.QueryParam("page"), 0)
	if err != nil {
		return writeError(ctx, err)
	}
	size, err := intParam("size", ctx.QueryParam("size"), 0)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(page, size)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderBodyFromResponse(result))
}

// TransitionOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderBodyFromAggregate(o))
}

// ImportOrders handles POST /api/orders/import. The CSV comes as the
// multipart "file" part; the optional "importId" field keys the
// checkpoint state, defaulting to the uploaded file name so re-uploading
// the same file resumes a failed import.
func (s *Server) ImportOrders(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorBody{
			Code:    http.StatusBadRequest,
			Message: "csv file part is required",
		})
	}

	importID := ctx.FormValue("importId")
	if importID == "" {
		importID = fileHeader.Filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(ctx, err)
	}
	defer file.Close()

	cmd, err := commands.NewImportOrdersCommand(importID, file)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ImportResponse{
		ImportID:          importID,
		RowsImported:      result.RowsImported,
		RowsSkipped:       result.RowsSkipped,
		ChunksCommitted:   result.ChunksCommitted,
		ResumedAfterChunk: result.ResumedAfterChunk,
	})
}

// CreateTenant handles POST /api/admin/tenants. Only ADMIN tokens reach
// this handler.
func (s *Server) CreateTenant(ctx echo.Context) error {
	var req CreateTenantRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateTenantCommand(kernel.NewUUID(), req.Name, req.Slug)
	if err != nil {
		return badRequest(ctx, err)
	}

	t, err := s.createTenantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TenantBody{
		ID:     t.ID().String(),
		Name:   t.Name(),
		Slug:   t.Slug(),
		Active: t.IsActive(),
	})
}

// StatusSummary handles GET /api/metrics/summary.
func (s *Server) StatusSummary(ctx echo.Context) error {
	result, err := s.getStatusSummary.Handle(ctx.Request().Context(), queries.NewGetStatusSummaryQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// StreamOrderEvents handles GET /api/orders/events as a server-sent event
// stream of the caller's tenant's live order events. The subscription
// starts at the request; earlier events are not replayed.
func (s *Server) StreamOrderEvents(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorBody{
			Code:    http.StatusUnauthorized,
			Message: "authentication required",
		})
	}

	events, cancel := s.subscriber.Subscribe(identity.TenantID.String())
	defer cancel()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	reqCtx := ctx.Request().Context()
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case event, open := <-events:
			if !open {
				return nil
			}

			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}

// creatorID resolves the authenticated caller to a user id for creator
// attribution. Attribution is best effort: a token whose account no
// longer exists just leaves the order unattributed.
func (s *Server) creatorID(ctx echo.Context) *kernel.UUID {
	identity, ok := identityFrom(ctx)
	if !ok {
		return nil
	}

	u, err := s.users.GetByEmail(ctx.Request().Context(), identity.Email)
	if err != nil {
		return nil
	}

	id := u.ID()
	return &id
}

// destinationPoint builds the optional destination coordinates. Latitude
// and longitude must be given together or not at all.
func destinationPoint(latitude, longitude *float64) (*kernel.GeoPoint, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}
	if latitude == nil || longitude == nil {
		return nil, errs.NewValueIsRequiredError("latitude and longitude")
	}

	point, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorBody{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func intParam(name, raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
