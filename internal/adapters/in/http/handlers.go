package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

// Register creates a new account.
func (s *Server) Register(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	role, err := identity.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	identityID := kernel.NewUUID()
	cmd, err := commands.NewRegisterIdentityCommand(
		actor, identityID, req.Username, req.Email, req.FirstName, req.LastName, role, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, identityID)
}

// UpdateProfileRequest is the body of PUT /users/:id/profile.
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateProfile replaces an account's profile fields.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	identityID, err := parsePathID(ctx)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(
		actor, identityID, req.Username, req.Email, req.FirstName, req.LastName)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePasswordRequest is the body of PUT /users/:id/password. The current
// password may be empty when staff resets someone else's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword replaces an account's password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	identityID, err := parsePathID(ctx)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(actor, identityID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.changePasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActivateAccountRequest is the body of PUT /users/:id/activation. The
// password proves possession of the account; staff may omit it.
type ActivateAccountRequest struct {
	Active   bool   `json:"active"`
	Password string `json:"password"`
}

// ActivateAccount flips an account's active flag.
func (s *Server) ActivateAccount(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	identityID, err := parsePathID(ctx)
	if err != nil {
		return err
	}

	var req ActivateAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewActivateAccountCommand(actor, identityID, req.Active, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.activateAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IdentityResponse is one row of the accounts listing.
type IdentityResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

// GetIdentities lists all accounts. Staff only.
func (s *Server) GetIdentities(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetIdentitiesQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getIdentitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]IdentityResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, IdentityResponse{
			ID:        row.ID.String(),
			Username:  row.Username,
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Role:      row.Role,
			IsActive:  row.IsActive,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateProduct adds a catalog product. Staff only.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	unitPrice, err := kernel.PriceFromFloat(req.UnitPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(actor, productID, req.Name, req.Description, unitPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, productID)
}

// UpdateProductRequest is the body of PUT /products/:id. A nil description
// leaves the stored one unchanged.
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

// UpdateProduct replaces a catalog product's fields. Staff only.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := parsePathID(ctx)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	unitPrice, err := kernel.PriceFromFloat(req.UnitPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(actor, productID, req.Name, req.Description, unitPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrderRequest is the body of POST /orders. CustomerID, Status and
// TotalPrice are restricted fields; non-staff requests carrying them are
// rejected by the access policy.
type CreateOrderRequest struct {
	ProductID   string   `json:"product_id"`
	CustomerID  *string  `json:"customer_id"`
	Quantity    int      `json:"quantity"`
	Description string   `json:"description"`
	Status      *string  `json:"status"`
	TotalPrice  *float64 `json:"total_price"`
}

// CreateOrder places an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := optionalStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	totalPrice, err := optionalPrice(req.TotalPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		actor, orderID, productID, customerID, quantity, req.Description, status, totalPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, orderID)
}

// UpdateOrderRequest is the body of PATCH /orders/:id. Every field is
// optional; absent fields are left unchanged.
type UpdateOrderRequest struct {
	ProductID   *string  `json:"product_id"`
	CustomerID  *string  `json:"customer_id"`
	Quantity    *int     `json:"quantity"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	TotalPrice  *float64 `json:"total_price"`
}

// UpdateOrder partially updates an order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parsePathID(ctx)
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	productID, err := optionalUUID(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := optionalStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	totalPrice, err := optionalPrice(req.TotalPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		actor, orderID, productID, customerID, req.Quantity, req.Description, status, totalPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderResponse is one row of the incomplete-orders listing.
type OrderResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	CustomerID  string  `json:"customer_id"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

// GetIncompleteOrders lists orders that have not reached the terminal
// status. Staff see every order; other roles see their own.
func (s *Server) GetIncompleteOrders(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetIncompleteOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getIncompleteOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, OrderResponse{
			ID:          row.ID.String(),
			ProductID:   row.ProductID.String(),
			CustomerID:  row.CustomerID.String(),
			Quantity:    row.Quantity,
			TotalPrice:  row.TotalPrice.InexactFloat64(),
			Description: row.Description,
			Status:      row.Status,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDNAServiceRequest is the body of POST /services. The payload is the
// raw JSON-encoded list of gene strings to score.
type CreateDNAServiceRequest struct {
	CustomerID *string `json:"customer_id"`
	Payload    string  `json:"payload"`
}

// CreateDNAService submits genes for scoring and records the resulting
// service.
func (s *Server) CreateDNAService(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateDNAServiceRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	serviceID := kernel.NewUUID()
	cmd, err := commands.NewCreateDNAServiceCommand(actor, serviceID, customerID, req.Payload)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createServiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return created(ctx, serviceID)
}
