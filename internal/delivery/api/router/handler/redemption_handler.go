package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"clubefast/internal/delivery/api/middleware"
	"clubefast/internal/delivery/api/response"
	"clubefast/internal/delivery/api/validator"
	"clubefast/internal/domain/entity"
	"clubefast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
	Logger       *slog.Logger
}

// RedemptionHandler serves prize redemption and pickup.
type RedemptionHandler struct {
	redemptionUC usecase.RedemptionUsecase
	logger       *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionUC: params.RedemptionUC,
		logger:       params.Logger,
	}
}

// RedeemRequest is the body of POST /api/v1/redemptions
type RedeemRequest struct {
	PrizeID string `json:"prize_id" validate:"required,uuid"`
}

// CollectByQRRequest is the body of POST /api/v1/admin/redemptions/collect-by-qr
type CollectByQRRequest struct {
	QRData string `json:"qr_data" validate:"required,max=200"`
}

// RedeemResponse is a confirmed redemption and the balance left
type RedeemResponse struct {
	Redemption *entity.Redemption `json:"redemption"`
	Balance    int                `json:"balance"`
}

// Redeem exchanges points for a prize
func (h *RedemptionHandler) Redeem(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	output, err := h.redemptionUC.Redeem(c.Request().Context(), &usecase.RedeemInput{
		CustomerID: customerID,
		PrizeID:    uuid.MustParse(req.PrizeID),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RedeemResponse{
		Redemption: output.Redemption,
		Balance:    output.Balance,
	})
}

// ListMine returns the authenticated customer's redemptions
func (h *RedemptionHandler) ListMine(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	redemptions, err := h.redemptionUC.ListMine(c.Request().Context(), customerID, pageFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemptions)
}

// RedemptionQR renders the pickup QR code of one of the customer's redemptions as PNG
func (h *RedemptionHandler) RedemptionQR(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	redemptionID, ok := paramUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Identificador de resgate inválido")
	}

	png, err := h.redemptionUC.RedemptionQR(c.Request().Context(), customerID, redemptionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListRedemptions returns a page of every customer's redemptions
func (h *RedemptionHandler) ListRedemptions(c echo.Context) error {
	input, ok := listRedemptionsInput(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Identificador de cliente inválido")
	}

	output, err := h.redemptionUC.ListRedemptions(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paged(c, output.Redemptions, output.Total, input.Page.Limit, input.Page.Offset)
}

// ExportRedemptions downloads the filtered redemptions as a spreadsheet
func (h *RedemptionHandler) ExportRedemptions(c echo.Context) error {
	input, ok := listRedemptionsInput(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Identificador de cliente inválido")
	}

	output, err := h.redemptionUC.ExportRedemptions(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+strconv.Quote(output.Filename))

	return c.Blob(http.StatusOK, output.ContentType, output.Data)
}

// MarkCollected records that a redemption was handed over
func (h *RedemptionHandler) MarkCollected(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	redemptionID, ok := paramUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Identificador de resgate inválido")
	}

	redemption, err := h.redemptionUC.MarkCollected(c.Request().Context(), &usecase.CollectInput{
		RedemptionID: redemptionID,
		AdminID:      adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemption)
}

// CollectByQR records the pickup of the redemption encoded in a scanned QR code
func (h *RedemptionHandler) CollectByQR(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	var req CollectByQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	redemption, err := h.redemptionUC.CollectByQR(c.Request().Context(), &usecase.CollectByQRInput{
		QRData:  req.QRData,
		AdminID: adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemption)
}

func listRedemptionsInput(c echo.Context) (*usecase.ListRedemptionsInput, bool) {
	input := &usecase.ListRedemptionsInput{
		Collected: queryBool(c, "collected"),
		Page:      pageFromQuery(c),
	}

	if raw := c.QueryParam("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			return nil, false
		}
		input.CustomerID = &customerID
	}

	return input, true
}
