// Package http exposes the storefront over a JSON API. Handlers are thin:
// they parse, dispatch against the store, and serialize the resulting
// snapshot.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"verdant/internal/core/application/store"
	"verdant/internal/pkg/errs"
)

// Server handles HTTP requests by dispatching actions against the state
// store and serializing selector output.
type Server struct {
	store     *store.Store
	selectors *store.Selectors
}

// NewServer creates an HTTP server over the given store.
func NewServer(st *store.Store) *Server {
	return &Server{
		store:     st,
		selectors: store.NewSelectors(),
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/products", s.GetProducts)
	api.GET("/categories", s.GetCategories)
	api.GET("/dispensaries", s.GetDispensaries)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:productID", s.UpdateCartItem)

	api.POST("/checkout", s.Checkout)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/active", s.GetActiveOrder)
	api.POST("/orders/active/advance", s.AdvanceActiveOrder)

	api.GET("/driver/assignments", s.GetAssignments)
	api.POST("/driver/assignments/:id/advance", s.AdvanceAssignment)

	api.GET("/admin/overview", s.GetAdminOverview)

	api.PUT("/session", s.UpdateSession)
}

// GetProducts handles GET /api/v1/products. Query parameters category,
// search, and sort update the view filters before projecting.
func (s *Server) GetProducts(ctx echo.Context) error {
	s.store.SetFilters(store.Filters{
		CategoryID: ctx.QueryParam("category"),
		Search:     ctx.QueryParam("search"),
		Sort:       store.SortOrder(ctx.QueryParam("sort")),
	})

	products := store.FilteredProducts(s.store.State())
	return ctx.JSON(http.StatusOK, toProductDTOs(products))
}

// GetCategories handles GET /api/v1/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	state := s.store.State()
	dtos := make([]CategoryDTO, 0, len(state.Catalog.Categories))
	for _, c := range state.Catalog.Categories {
		dtos = append(dtos, CategoryDTO(c))
	}
	return ctx.JSON(http.StatusOK, dtos)
}

// GetDispensaries handles GET /api/v1/dispensaries.
func (s *Server) GetDispensaries(ctx echo.Context) error {
	state := s.store.State()
	dtos := make([]DispensaryDTO, 0, len(state.Catalog.Dispensaries))
	for _, d := range state.Catalog.Dispensaries {
		dtos = append(dtos, DispensaryDTO(d))
	}
	return ctx.JSON(http.StatusOK, dtos)
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	state := s.store.State()
	return ctx.JSON(http.StatusOK, toCartDTO(
		s.selectors.CartItemsDetailed(state),
		s.selectors.CartTotals(state),
	))
}

// AddCartItemRequest is the body of POST /api/v1/cart/items.
type AddCartItemRequest struct {
	ProductID int `json:"productId"`
}

// AddCartItem handles POST /api/v1/cart/items: adds one unit of a product.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if _, ok := s.store.State().Catalog.ProductByID(req.ProductID); !ok {
		return notFound(ctx, "Product not found")
	}

	s.store.AddToCart(req.ProductID)

	state := s.store.State()
	return ctx.JSON(http.StatusOK, toCartDTO(
		s.selectors.CartItemsDetailed(state),
		s.selectors.CartTotals(state),
	))
}

// UpdateCartItemRequest is the body of PATCH /api/v1/cart/items/:productID.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:productID: replaces a
// line's quantity. Zero (or below) removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	productID, err := echoParamInt(ctx, "productID")
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var req UpdateCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	s.store.UpdateCartQuantity(productID, req.Quantity)

	state := s.store.State()
	return ctx.JSON(http.StatusOK, toCartDTO(
		s.selectors.CartItemsDetailed(state),
		s.selectors.CartTotals(state),
	))
}

// CheckoutRequest is the body of POST /api/v1/checkout.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// Checkout handles POST /api/v1/checkout: places an order from the cart.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	payload, err := store.NewCheckoutPayload(req.Name, req.Phone, req.Address, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	placed, err := s.store.Checkout(payload)
	if err != nil {
		if errors.Is(err, store.ErrCartIsEmpty) {
			return ctx.JSON(http.StatusConflict, ErrorDTO{
				Code:    http.StatusConflict,
				Message: "Cart is empty",
			})
		}
		return internalError(ctx, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, toOrderDTO(placed))
}

// GetOrders handles GET /api/v1/orders: all placed orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	state := s.store.State()
	dtos := make([]OrderDTO, 0, len(state.Orders.List))
	for _, o := range state.Orders.List {
		dtos = append(dtos, toOrderDTO(o))
	}
	return ctx.JSON(http.StatusOK, dtos)
}

// GetActiveOrder handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrder(ctx echo.Context) error {
	active, ok := store.ActiveOrder(s.store.State())
	if !ok {
		return notFound(ctx, "No active order")
	}
	return ctx.JSON(http.StatusOK, toOrderDTO(active))
}

// AdvanceActiveOrder handles POST /api/v1/orders/active/advance: moves the
// active order one lifecycle step and returns it.
func (s *Server) AdvanceActiveOrder(ctx echo.Context) error {
	if _, ok := store.ActiveOrder(s.store.State()); !ok {
		return notFound(ctx, "No active order")
	}

	s.store.AdvanceActiveOrderStatus()

	active, _ := store.ActiveOrder(s.store.State())
	return ctx.JSON(http.StatusOK, toOrderDTO(active))
}

// GetAssignments handles GET /api/v1/driver/assignments.
func (s *Server) GetAssignments(ctx echo.Context) error {
	state := s.store.State()
	dtos := make([]AssignmentDTO, 0, len(state.Driver.Assignments))
	for _, a := range state.Driver.Assignments {
		dtos = append(dtos, toAssignmentDTO(a))
	}
	return ctx.JSON(http.StatusOK, dtos)
}

// AdvanceAssignment handles POST /api/v1/driver/assignments/:id/advance.
func (s *Server) AdvanceAssignment(ctx echo.Context) error {
	id := ctx.Param("id")
	if _, ok := store.AssignmentByID(s.store.State(), id); !ok {
		return notFound(ctx, "Assignment not found")
	}

	s.store.AdvanceAssignment(id)

	updated, _ := store.AssignmentByID(s.store.State(), id)
	return ctx.JSON(http.StatusOK, toAssignmentDTO(updated))
}

// GetAdminOverview handles GET /api/v1/admin/overview.
func (s *Server) GetAdminOverview(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, toAdminOverviewDTO(s.store.State().Admin))
}

// UpdateSessionRequest is the body of PUT /api/v1/session.
type UpdateSessionRequest struct {
	Role         string `json:"role"`
	DispensaryID string `json:"dispensaryId"`
}

// UpdateSession handles PUT /api/v1/session: switches the viewer role
// and/or the selected dispensary.
func (s *Server) UpdateSession(ctx echo.Context) error {
	var req UpdateSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if req.Role != "" {
		role := store.Role(req.Role)
		switch role {
		case store.RoleCustomer, store.RoleDriver, store.RoleAdmin, store.RoleBrand:
			s.store.SetRole(role)
		default:
			return badRequest(ctx, "Invalid role: "+req.Role)
		}
	}
	if req.DispensaryID != "" {
		if _, ok := s.store.State().Catalog.DispensaryByID(req.DispensaryID); !ok {
			return notFound(ctx, "Dispensary not found")
		}
		s.store.SelectDispensary(req.DispensaryID)
	}

	session := s.store.State().Session
	return ctx.JSON(http.StatusOK, SessionDTO{
		Role:                 string(session.Role),
		SelectedDispensaryID: session.SelectedDispensaryID,
	})
}

func echoParamInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.Param(name)
	if raw == "" {
		return 0, errs.NewValueIsRequiredError(name)
	}
	var value int
	if err := echo.PathParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return 0, err
	}
	return value, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorDTO{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorDTO{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
