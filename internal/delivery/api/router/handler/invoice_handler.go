package handler

import (
	"encoding/base64"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"clubefast/internal/delivery/api/middleware"
	"clubefast/internal/delivery/api/response"
	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/points"
	"clubefast/internal/domain/service"
	"clubefast/internal/usecase"
	"clubefast/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxImageBytes is the largest invoice photo accepted.
const maxImageBytes = 10 << 20

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
	Logger    *slog.Logger
}

// InvoiceHandler serves invoice uploads and the credited order history.
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUC: params.InvoiceUC,
		logger:    params.Logger,
	}
}

// InvoiceUploadRequest is the JSON form of an invoice upload. Image is base64 or a data URL.
type InvoiceUploadRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
	Provider string `json:"provider"`
}

// InvoiceResponse is the outcome of an invoice submission
type InvoiceResponse struct {
	Provider string         `json:"provider"`
	Result   *points.Result `json:"result"`
	Order    *entity.Order  `json:"order,omitempty"`
	Balance  int            `json:"balance"`
	Credited bool           `json:"credited"`
}

// PreviewResponse is the computed result of an invoice that was not credited
type PreviewResponse struct {
	Provider string         `json:"provider"`
	Result   *points.Result `json:"result"`
}

// ProvidersResponse reports vision provider availability
type ProvidersResponse struct {
	Providers        []service.ProviderStatus `json:"providers"`
	OCRServiceHealth string                   `json:"ocr_service_health"`
}

type invoiceUpload struct {
	image    []byte
	mimeType string
	provider string
}

// ProcessInvoice reads an invoice photo and credits its points
func (h *InvoiceHandler) ProcessInvoice(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	upload, err := readInvoiceUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.invoiceUC.ProcessInvoice(c.Request().Context(), &usecase.ProcessInvoiceInput{
		CustomerID: customerID,
		Image:      upload.image,
		MimeType:   upload.mimeType,
		Provider:   upload.provider,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.Credited {
		status = http.StatusCreated
	}

	return response.Success(c, status, InvoiceResponse{
		Provider: output.Provider,
		Result:   output.Result,
		Order:    output.Order,
		Balance:  output.Balance,
		Credited: output.Credited,
	})
}

// PreviewInvoice reads an invoice photo and returns the points it would earn
func (h *InvoiceHandler) PreviewInvoice(c echo.Context) error {
	upload, err := readInvoiceUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.invoiceUC.PreviewInvoice(c.Request().Context(), &usecase.PreviewInvoiceInput{
		Image:    upload.image,
		MimeType: upload.mimeType,
		Provider: upload.provider,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PreviewResponse{
		Provider: output.Provider,
		Result:   output.Result,
	})
}

// ListOrders returns the authenticated customer's credited invoices
func (h *InvoiceHandler) ListOrders(c echo.Context) error {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
	}

	orders, err := h.invoiceUC.ListOrders(c.Request().Context(), customerID, pageFromQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// Providers reports which vision providers are configured and whether the OCR service answers
func (h *InvoiceHandler) Providers(c echo.Context) error {
	output, err := h.invoiceUC.Providers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProvidersResponse{
		Providers:        output.Providers,
		OCRServiceHealth: output.OCRServiceHealth,
	})
}

// readInvoiceUpload accepts a multipart "file" field or a JSON body with a base64 image.
func readInvoiceUpload(c echo.Context) (*invoiceUpload, error) {
	mediaType, _, _ := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if mediaType == echo.MIMEMultipartForm {
		return readMultipartUpload(c)
	}

	var req InvoiceUploadRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidImage, "invalid upload body")
	}

	image, dataURLType, err := decodeImage(req.Image)
	if err != nil {
		return nil, err
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = dataURLType
	}

	return &invoiceUpload{
		image:    image,
		mimeType: normalizeMimeType(mimeType, image),
		provider: req.Provider,
	}, nil
}

func readMultipartUpload(c echo.Context) (*invoiceUpload, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidImage, "missing file field")
	}
	if fileHeader.Size > maxImageBytes {
		return nil, errors.Wrapf(domainerrors.ErrInvalidImage, "file larger than %s", util.FormatBytes(maxImageBytes))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidImage, err.Error())
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidImage, err.Error())
	}
	if len(image) > maxImageBytes {
		return nil, errors.Wrapf(domainerrors.ErrInvalidImage, "file larger than %s", util.FormatBytes(maxImageBytes))
	}

	return &invoiceUpload{
		image:    image,
		mimeType: normalizeMimeType(fileHeader.Header.Get(echo.HeaderContentType), image),
		provider: c.FormValue("provider"),
	}, nil
}

// decodeImage decodes plain base64 or a data URL and returns the data URL media type if any.
func decodeImage(encoded string) ([]byte, string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, "", errors.Wrap(domainerrors.ErrInvalidImage, "empty image")
	}

	var mediaType string
	if rest, ok := strings.CutPrefix(encoded, "data:"); ok {
		header, data, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, "", errors.Wrap(domainerrors.ErrInvalidImage, "malformed data URL")
		}
		mediaType = strings.TrimSuffix(header, ";base64")
		encoded = data
	}

	if base64.StdEncoding.DecodedLen(len(encoded)) > maxImageBytes+3 {
		return nil, "", errors.Wrapf(domainerrors.ErrInvalidImage, "image larger than %s", util.FormatBytes(maxImageBytes))
	}

	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		image, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, "", errors.Wrap(domainerrors.ErrInvalidImage, "image is not valid base64")
	}

	return image, mediaType, nil
}

// normalizeMimeType strips parameters and falls back to content sniffing.
func normalizeMimeType(declared string, image []byte) string {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil || mediaType == "" || mediaType == echo.MIMEOctetStream {
		mediaType, _, _ = mime.ParseMediaType(http.DetectContentType(image))
	}

	return strings.ToLower(mediaType)
}
