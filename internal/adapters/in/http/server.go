// Package http exposes the fulfillment use cases over a REST surface. The
// adapter stays thin: it resolves the acting identity, shapes requests into
// commands and queries, and maps the error taxonomy onto status codes.
// Authentication (token issuance and verification) is an external
// collaborator; the acting identity arrives as an X-Actor-Id header set by
// the gateway.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the authenticated identity's ID, set by the gateway
// after token verification.
const actorHeader = "X-Actor-Id"

// ActorResolver loads the authorization snapshot for an authenticated
// identity ID.
type ActorResolver func(ctx echo.Context, id kernel.UUID) (identity.Actor, error)

// ErrorResponse is the JSON error body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// GeneResults carries the per-gene verdicts of a rejected scoring
	// submission; empty for every other error.
	GeneResults []string `json:"gene_results,omitempty"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	resolveActor ActorResolver

	// Command handlers
	createProductHandler   commands.CreateProductCommandHandler
	updateProductHandler   commands.UpdateProductCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	createServiceHandler   commands.CreateDNAServiceCommandHandler
	registerHandler        commands.RegisterIdentityCommandHandler
	updateProfileHandler   commands.UpdateProfileCommandHandler
	changePasswordHandler  commands.ChangePasswordCommandHandler
	activateAccountHandler commands.ActivateAccountCommandHandler

	// Query handlers
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler
	getIdentitiesHandler       queries.GetIdentitiesQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	resolveActor ActorResolver,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	createServiceHandler commands.CreateDNAServiceCommandHandler,
	registerHandler commands.RegisterIdentityCommandHandler,
	updateProfileHandler commands.UpdateProfileCommandHandler,
	changePasswordHandler commands.ChangePasswordCommandHandler,
	activateAccountHandler commands.ActivateAccountCommandHandler,
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler,
	getIdentitiesHandler queries.GetIdentitiesQueryHandler,
) *Server {
	return &Server{
		resolveActor:               resolveActor,
		createProductHandler:       createProductHandler,
		updateProductHandler:       updateProductHandler,
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		createServiceHandler:       createServiceHandler,
		registerHandler:            registerHandler,
		updateProfileHandler:       updateProfileHandler,
		changePasswordHandler:      changePasswordHandler,
		activateAccountHandler:     activateAccountHandler,
		getIncompleteOrdersHandler: getIncompleteOrdersHandler,
		getIdentitiesHandler:       getIdentitiesHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/register", s.Register)
	api.GET("/users", s.GetIdentities)
	api.PUT("/users/:id/profile", s.UpdateProfile)
	api.PUT("/users/:id/password", s.ChangePassword)
	api.PUT("/users/:id/activation", s.ActivateAccount)

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)

	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.GET("/orders", s.GetIncompleteOrders)

	api.POST("/services", s.CreateDNAService)
}

// actor resolves the acting identity from the request header. Inactive
// accounts are rejected; a deactivated account can only be reactivated by
// staff.
func (s *Server) actor(ctx echo.Context) (identity.Actor, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return identity.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing "+actorHeader+" header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return identity.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid "+actorHeader+" header")
	}

	actor, err := s.resolveActor(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return identity.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown identity")
		}
		return identity.Actor{}, err
	}

	if !actor.IsActive() {
		return identity.Actor{}, errs.NewForbiddenError("account is inactive")
	}

	return actor, nil
}

// writeError maps the error taxonomy onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var submissionErr *errs.InvalidSubmissionError
	if errors.As(err, &submissionErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:        http.StatusUnprocessableEntity,
			Message:     "submission is invalid",
			GeneResults: submissionErr.GeneResults,
		})
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrMalformedSubmission),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// created replies 201 with the identifier of the new resource.
func created(ctx echo.Context, id kernel.UUID) error {
	return ctx.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

// parsePathID reads the :id path parameter.
func parsePathID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// optionalUUID parses an optional UUID request field.
func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return &id, nil
}

// optionalStatus parses an optional lifecycle status request field.
func optionalStatus(raw *string) (*lifecycle.Status, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := lifecycle.StatusFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// optionalPrice parses an optional price request field.
func optionalPrice(raw *float64) (*kernel.Price, error) {
	if raw == nil {
		return nil, nil
	}
	price, err := kernel.PriceFromFloat(*raw)
	if err != nil {
		return nil, err
	}
	return &price, nil
}
