package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/points"
	"clubefast/internal/domain/service"
	mockUsecase "clubefast/internal/mocks/usecase"
	"clubefast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngImage = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

func newInvoiceHandler(t *testing.T) (*InvoiceHandler, *mockUsecase.MockInvoiceUsecase) {
	invoiceUC := mockUsecase.NewMockInvoiceUsecase(t)

	return NewInvoiceHandler(InvoiceHandlerParams{InvoiceUC: invoiceUC, Logger: testLogger()}), invoiceUC
}

func TestInvoiceHandler_ProcessInvoice(t *testing.T) {
	customerID := uuid.New()
	encoded := base64.StdEncoding.EncodeToString(pngImage)

	tests := []struct {
		name         string
		body         string
		credited     bool
		wantStatus   int
		wantProvider string
	}{
		{
			name:       "credited invoice",
			body:       `{"image":"` + encoded + `","mimeType":"image/png","provider":"openai"}`,
			credited:   true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "no eligible products",
			body:       `{"image":"data:image/png;base64,` + encoded + `"}`,
			credited:   false,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, invoiceUC := newInvoiceHandler(t)

			output := &usecase.ProcessInvoiceOutput{
				Provider: "gemini",
				Result:   &points.Result{TotalPoints: 0, NoEligibleProducts: !tt.credited},
				Balance:  120,
				Credited: tt.credited,
			}
			if tt.credited {
				output.Order = &entity.Order{ID: uuid.New()}
			}

			invoiceUC.EXPECT().
				ProcessInvoice(mock.Anything, mock.MatchedBy(func(in *usecase.ProcessInvoiceInput) bool {
					return in.CustomerID == customerID && bytes.Equal(in.Image, pngImage) && in.MimeType == "image/png"
				})).
				Return(output, nil).
				Once()

			c, rec := newTestContext(http.MethodPost, "/api/v1/invoices", tt.body)
			authenticate(c, customerID, "customer")

			require.NoError(t, handler.ProcessInvoice(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var got InvoiceResponse
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
			assert.Equal(t, tt.credited, got.Credited)
			assert.Equal(t, 120, got.Balance)
		})
	}
}

func TestInvoiceHandler_ProcessInvoice_Multipart(t *testing.T) {
	handler, invoiceUC := newInvoiceHandler(t)
	customerID := uuid.New()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="nota.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(pngImage)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("provider", "anthropic"))
	require.NoError(t, writer.Close())

	invoiceUC.EXPECT().
		ProcessInvoice(mock.Anything, mock.MatchedBy(func(in *usecase.ProcessInvoiceInput) bool {
			return in.Provider == "anthropic" && in.MimeType == "image/png" && bytes.Equal(in.Image, pngImage)
		})).
		Return(&usecase.ProcessInvoiceOutput{Provider: "anthropic", Result: &points.Result{}, Credited: true, Order: &entity.Order{}}, nil).
		Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	authenticate(c, customerID)

	require.NoError(t, handler.ProcessInvoice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestInvoiceHandler_ProcessInvoice_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		auth       bool
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing session",
			body:       `{"image":"aGVsbG8="}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "empty image",
			body:       `{"image":""}`,
			auth:       true,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_IMAGE",
		},
		{
			name:       "not base64",
			body:       `{"image":"***"}`,
			auth:       true,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_IMAGE",
		},
		{
			name:       "duplicate",
			body:       `{"image":"` + base64.StdEncoding.EncodeToString(pngImage) + `"}`,
			auth:       true,
			ucErr:      errors.Wrap(domainerrors.ErrDuplicateInvoice, "fingerprint exists"),
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_INVOICE",
		},
		{
			name:       "unreadable",
			body:       `{"image":"` + base64.StdEncoding.EncodeToString(pngImage) + `"}`,
			auth:       true,
			ucErr:      domainerrors.ErrInvoiceUnreadable,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVOICE_UNREADABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, invoiceUC := newInvoiceHandler(t)
			if tt.ucErr != nil {
				invoiceUC.EXPECT().ProcessInvoice(mock.Anything, mock.Anything).Return(nil, tt.ucErr).Once()
			}

			c, rec := newTestContext(http.MethodPost, "/api/v1/invoices", tt.body)
			if tt.auth {
				authenticate(c, uuid.New())
			}

			require.NoError(t, handler.ProcessInvoice(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestInvoiceHandler_PreviewInvoice(t *testing.T) {
	handler, invoiceUC := newInvoiceHandler(t)

	invoiceUC.EXPECT().
		PreviewInvoice(mock.Anything, mock.MatchedBy(func(in *usecase.PreviewInvoiceInput) bool {
			return in.MimeType == "image/png"
		})).
		Return(&usecase.PreviewInvoiceOutput{Provider: "gemini", Result: &points.Result{TotalPoints: 7}}, nil).
		Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/invoices/preview",
		`{"image":"`+base64.StdEncoding.EncodeToString(pngImage)+`"}`)

	require.NoError(t, handler.PreviewInvoice(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got PreviewResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, 7, got.Result.TotalPoints)
}

func TestInvoiceHandler_Providers(t *testing.T) {
	handler, invoiceUC := newInvoiceHandler(t)

	invoiceUC.EXPECT().Providers(mock.Anything).Return(&usecase.ProvidersOutput{
		Providers:        []service.ProviderStatus{{Name: "gemini", Configured: true, Default: true}},
		OCRServiceHealth: "disabled",
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/providers", "")

	require.NoError(t, handler.Providers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got ProvidersResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, "disabled", got.OCRServiceHealth)
	require.Len(t, got.Providers, 1)
	assert.Equal(t, "gemini", got.Providers[0].Name)
}

func TestDecodeImage(t *testing.T) {
	raw := base64.RawStdEncoding.EncodeToString(pngImage)

	tests := []struct {
		name      string
		input     string
		wantType  string
		wantError bool
	}{
		{name: "padded base64", input: base64.StdEncoding.EncodeToString(pngImage)},
		{name: "unpadded base64", input: raw},
		{name: "data URL", input: "data:image/jpeg;base64," + raw, wantType: "image/jpeg"},
		{name: "data URL without base64 marker", input: "data:image/jpeg," + raw, wantError: true},
		{name: "blank", input: "   ", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image, mediaType, err := decodeImage(tt.input)
			if tt.wantError {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, pngImage, image)
			assert.Equal(t, tt.wantType, mediaType)
		})
	}
}

func TestNormalizeMimeType(t *testing.T) {
	assert.Equal(t, "image/jpeg", normalizeMimeType("Image/JPEG; charset=binary", pngImage))
	assert.Equal(t, "image/png", normalizeMimeType("", pngImage))
	assert.Equal(t, "image/png", normalizeMimeType("application/octet-stream", pngImage))
}
