package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"clubefast/internal/delivery/api/response"
	"clubefast/internal/delivery/api/validator"
	"clubefast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the prize catalog and its admin maintenance.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// PrizeRequest is the body of prize create and update
type PrizeRequest struct {
	Name          string `json:"name" validate:"required,max=120"`
	Description   string `json:"description" validate:"max=2000"`
	ImageURL      string `json:"image_url" validate:"omitempty,url,max=500"`
	Category      string `json:"category" validate:"max=60"`
	PointsCost    int    `json:"points_cost" validate:"gt=0"`
	StockQuantity *int   `json:"stock_quantity" validate:"omitempty,gte=0"`
	DisplayOrder  int    `json:"display_order" validate:"gte=0"`
	Active        *bool  `json:"active"`
	Featured      bool   `json:"featured"`
}

func (r *PrizeRequest) toInput() *usecase.PrizeInput {
	return &usecase.PrizeInput{
		Name:          r.Name,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Category:      r.Category,
		PointsCost:    r.PointsCost,
		StockQuantity: r.StockQuantity,
		DisplayOrder:  r.DisplayOrder,
		Active:        r.Active,
		Featured:      r.Featured,
	}
}

// ListPrizes returns the active catalog
func (h *CatalogHandler) ListPrizes(c echo.Context) error {
	featured := queryBool(c, "featured")

	prizes, err := h.catalogUC.ListPrizes(c.Request().Context(), &usecase.ListPrizesInput{
		Category:     strings.TrimSpace(c.QueryParam("category")),
		MaxPoints:    queryInt(c, "max_points"),
		FeaturedOnly: featured != nil && *featured,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prizes)
}

// GetPrize returns one active prize
func (h *CatalogHandler) GetPrize(c echo.Context) error {
	prizeID, ok := paramUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Identificador de prêmio inválido")
	}

	prize, err := h.catalogUC.GetPrize(c.Request().Context(), prizeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prize)
}

// AdminListPrizes returns every prize, inactive ones included
func (h *CatalogHandler) AdminListPrizes(c echo.Context) error {
	prizes, err := h.catalogUC.AdminListPrizes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prizes)
}

// CreatePrize adds a prize to the catalog
func (h *CatalogHandler) CreatePrize(c echo.Context) error {
	var req PrizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	prize, err := h.catalogUC.CreatePrize(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, prize)
}

// UpdatePrize replaces the editable fields of a prize
func (h *CatalogHandler) UpdatePrize(c echo.Context) error {
	prizeID, ok := paramUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Identificador de prêmio inválido")
	}

	var req PrizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	prize, err := h.catalogUC.UpdatePrize(c.Request().Context(), prizeID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prize)
}

// DeletePrize removes a prize, or deactivates it when it was already redeemed
func (h *CatalogHandler) DeletePrize(c echo.Context) error {
	prizeID, ok := paramUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Identificador de prêmio inválido")
	}

	output, err := h.catalogUC.DeletePrize(c.Request().Context(), prizeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deactivated": output.Deactivated})
}
