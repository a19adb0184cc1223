package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	mockUsecase "clubefast/internal/mocks/usecase"
	"clubefast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRedemptionHandler(t *testing.T) (*RedemptionHandler, *mockUsecase.MockRedemptionUsecase) {
	redemptionUC := mockUsecase.NewMockRedemptionUsecase(t)

	return NewRedemptionHandler(RedemptionHandlerParams{RedemptionUC: redemptionUC, Logger: testLogger()}), redemptionUC
}

func TestRedemptionHandler_Redeem(t *testing.T) {
	customerID := uuid.New()
	prizeID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mockUsecase.MockRedemptionUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "confirmed",
			body: `{"prize_id":"` + prizeID.String() + `"}`,
			setupMock: func(m *mockUsecase.MockRedemptionUsecase) {
				m.EXPECT().
					Redeem(mock.Anything, &usecase.RedeemInput{CustomerID: customerID, PrizeID: prizeID}).
					Return(&usecase.RedeemOutput{
						Redemption: &entity.Redemption{ID: uuid.New(), Code: "CF-1A2B3C4D5E", Status: entity.RedemptionStatusConfirmed},
						Balance:    50,
					}, nil).
					Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "insufficient points",
			body: `{"prize_id":"` + prizeID.String() + `"}`,
			setupMock: func(m *mockUsecase.MockRedemptionUsecase) {
				m.EXPECT().Redeem(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInsufficientPoints).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INSUFFICIENT_POINTS",
		},
		{
			name:       "prize id is not a uuid",
			body:       `{"prize_id":"42"}`,
			setupMock:  func(m *mockUsecase.MockRedemptionUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, redemptionUC := newRedemptionHandler(t)
			tt.setupMock(redemptionUC)

			c, rec := newTestContext(http.MethodPost, "/api/v1/redemptions", tt.body)
			authenticate(c, customerID, "customer")

			require.NoError(t, handler.Redeem(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}

			var got RedeemResponse
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, 50, got.Balance)
			assert.Equal(t, "CF-1A2B3C4D5E", got.Redemption.Code)
		})
	}
}

func TestRedemptionHandler_RedemptionQR(t *testing.T) {
	handler, redemptionUC := newRedemptionHandler(t)
	customerID := uuid.New()
	redemptionID := uuid.New()
	png := []byte("\x89PNG fake")

	redemptionUC.EXPECT().RedemptionQR(mock.Anything, customerID, redemptionID).Return(png, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/redemptions/"+redemptionID.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(redemptionID.String())
	authenticate(c, customerID)

	require.NoError(t, handler.RedemptionQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRedemptionHandler_ListRedemptions(t *testing.T) {
	handler, redemptionUC := newRedemptionHandler(t)
	customerID := uuid.New()

	redemptionUC.EXPECT().
		ListRedemptions(mock.Anything, mock.MatchedBy(func(in *usecase.ListRedemptionsInput) bool {
			return in.CustomerID != nil && *in.CustomerID == customerID &&
				in.Collected != nil && !*in.Collected &&
				in.Page.Limit == 10 && in.Page.Offset == 20
		})).
		Return(&usecase.RedemptionPage{Redemptions: []*entity.Redemption{{ID: uuid.New()}}, Total: 21}, nil).
		Once()

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/admin/redemptions?customer_id="+customerID.String()+"&collected=false&limit=10&offset=20", "")

	require.NoError(t, handler.ListRedemptions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Items []entity.Redemption `json:"items"`
		Page  struct {
			Total int64 `json:"total"`
			Limit int   `json:"limit"`
		} `json:"page"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(21), page.Page.Total)
	assert.Equal(t, 10, page.Page.Limit)
}

func TestRedemptionHandler_ListRedemptions_BadCustomerID(t *testing.T) {
	handler, _ := newRedemptionHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/redemptions?customer_id=nope", "")

	require.NoError(t, handler.ListRedemptions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRedemptionHandler_ExportRedemptions(t *testing.T) {
	handler, redemptionUC := newRedemptionHandler(t)
	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	redemptionUC.EXPECT().ExportRedemptions(mock.Anything, mock.Anything).Return(&usecase.ExportOutput{
		Filename:    "resgates-2026-10-14.xlsx",
		ContentType: contentType,
		Data:        []byte("xlsx"),
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/redemptions/export?collected=true", "")

	require.NoError(t, handler.ExportRedemptions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentType, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="resgates-2026-10-14.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestRedemptionHandler_MarkCollected(t *testing.T) {
	adminID := uuid.New()
	redemptionID := uuid.New()

	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "collected", wantStatus: http.StatusOK},
		{name: "already collected", ucErr: domainerrors.ErrRedemptionAlreadyCollected, wantStatus: http.StatusConflict},
		{name: "not found", ucErr: domainerrors.ErrRedemptionNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, redemptionUC := newRedemptionHandler(t)

			var redemption *entity.Redemption
			if tt.ucErr == nil {
				redemption = &entity.Redemption{ID: redemptionID, Collected: true, CollectedBy: adminID.String()}
			}
			redemptionUC.EXPECT().
				MarkCollected(mock.Anything, &usecase.CollectInput{RedemptionID: redemptionID, AdminID: adminID}).
				Return(redemption, tt.ucErr).
				Once()

			c, rec := newTestContext(http.MethodPost, "/api/v1/admin/redemptions/"+redemptionID.String()+"/collect", "")
			c.SetParamNames("id")
			c.SetParamValues(redemptionID.String())
			authenticate(c, adminID, "admin")

			require.NoError(t, handler.MarkCollected(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRedemptionHandler_CollectByQR(t *testing.T) {
	handler, redemptionUC := newRedemptionHandler(t)
	adminID := uuid.New()

	redemptionUC.EXPECT().
		CollectByQR(mock.Anything, &usecase.CollectByQRInput{QRData: "CF-1A2B3C4D5E", AdminID: adminID}).
		Return(nil, domainerrors.ErrInvalidQRCode).
		Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/redemptions/collect-by-qr", `{"qr_data":"CF-1A2B3C4D5E"}`)
	authenticate(c, adminID, "admin")

	require.NoError(t, handler.CollectByQR(c))
	assert.Equal(t, domainerrors.ErrInvalidQRCode.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrInvalidQRCode.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
}
