package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"clubefast/internal/delivery/api/middleware"
	"clubefast/internal/delivery/api/response"
	"clubefast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC  usecase.CustomerUsecase
	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// CustomerHandler serves the customer profile and the admin customer views.
type CustomerHandler struct {
	customerUC  usecase.CustomerUsecase
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC:  params.CustomerUC,
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// GetProfile returns the authenticated customer with balance and counters
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	customer, err := h.customerUC.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// GetHistory returns the authenticated customer's points ledger
func (h *CustomerHandler) GetHistory(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	history, err := h.customerUC.GetHistory(c.Request().Context(), customerID, pageFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// ListCustomers returns a page of customers, optionally filtered by name, e-mail or CPF
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	page := pageFromQuery(c)

	output, err := h.customerUC.ListCustomers(c.Request().Context(), &usecase.ListCustomersInput{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Page:   page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paged(c, output.Customers, output.Total, page.Limit, page.Offset)
}

// GetCustomer returns one customer with recent history and redemptions
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, ok := paramUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Identificador de cliente inválido")
	}

	detail, err := h.customerUC.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"customer":    detail.Customer,
		"history":     detail.History,
		"redemptions": detail.Redemptions,
	})
}

// Dashboard returns the admin overview numbers
func (h *CustomerHandler) Dashboard(c echo.Context) error {
	stats, err := h.dashboardUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
