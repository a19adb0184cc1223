package impl

import (
	"context"
	"testing"
	"time"

	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/repository"
	"clubefast/internal/domain/service"
	mockRepo "clubefast/internal/mocks/repository"
	mockSvc "clubefast/internal/mocks/service"
	"clubefast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRedemptionCode = "CF-0A1B2C3D4E"

var fixedClock = time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

type redemptionServiceFixtures struct {
	service        *redemptionService
	tx             *txFixtures
	customerRepo   *mockRepo.MockCustomerRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
	qrService      *mockSvc.MockQRCodeService
	exporter       *mockSvc.MockRedemptionExporter
	publisher      *mockSvc.MockEventPublisher
}

func createTestRedemptionService(t *testing.T) redemptionServiceFixtures {
	tx := newTxFixtures(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	redemptionRepo := mockRepo.NewMockRedemptionRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	exporter := mockSvc.NewMockRedemptionExporter(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewRedemptionService(RedemptionServiceParams{
		TxManager:      tx.txManager,
		CustomerRepo:   customerRepo,
		RedemptionRepo: redemptionRepo,
		QRService:      qrService,
		Exporter:       exporter,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	}).(*redemptionService)
	srv.newCode = func() string { return testRedemptionCode }
	srv.now = func() time.Time { return fixedClock }

	return redemptionServiceFixtures{
		service:        srv,
		tx:             tx,
		customerRepo:   customerRepo,
		redemptionRepo: redemptionRepo,
		qrService:      qrService,
		exporter:       exporter,
		publisher:      publisher,
	}
}

func newTestPrize(cost int, stock *int) *entity.Prize {
	return &entity.Prize{
		ID:            uuid.New(),
		Name:          "Furadeira de impacto",
		PointsCost:    cost,
		StockQuantity: stock,
		InStock:       stock == nil || *stock > 0,
		Active:        true,
	}
}

func TestRedemptionService_Redeem_ExactBalance(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Balance: 1500, TotalEarned: 2000, TotalSpent: 500, Version: 3}
	prize := newTestPrize(1500, nil)

	fx.tx.expectTransaction(ctx)
	fx.tx.customerRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.tx.prizeRepo.EXPECT().FindByIDForUpdate(ctx, prize.ID).Return(prize, nil)
	fx.tx.redemptionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Redemption) bool {
			return r.Code == testRedemptionCode &&
				r.PointsCost == 1500 &&
				r.PrizeName == prize.Name &&
				r.Status == entity.RedemptionStatusConfirmed &&
				!r.Collected
		})).
		Return(nil)
	fx.tx.customerRepo.EXPECT().
		UpdateBalance(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.Balance == 0 && c.TotalSpent == 2000 && c.TotalEarned == 2000
		})).
		Return(nil)
	fx.tx.historyRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(e *entity.PointsHistoryEntry) bool {
			return e.Type == entity.HistoryTypeDebit && e.Points == 1500 && e.BalanceAfter == 0 && e.RedemptionID != nil
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.LoyaltyEvent) bool {
			return e.Type == constants.EventRedemptionCreated && e.Balance == 0 && e.Points == -1500
		})).
		Return(nil)

	output, err := fx.service.Redeem(ctx, &usecase.RedeemInput{CustomerID: customer.ID, PrizeID: prize.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Balance)
	assert.Equal(t, testRedemptionCode, output.Redemption.Code)
	assert.Equal(t, customer.ID, output.Redemption.CustomerID)
}

func TestRedemptionService_Redeem_InsufficientPointsWritesNothing(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Balance: 1499}
	prize := newTestPrize(1500, nil)

	fx.tx.expectTransaction(ctx)
	fx.tx.customerRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.tx.prizeRepo.EXPECT().FindByIDForUpdate(ctx, prize.ID).Return(prize, nil)

	output, err := fx.service.Redeem(ctx, &usecase.RedeemInput{CustomerID: customer.ID, PrizeID: prize.ID})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
	assert.Equal(t, 1499, customer.Balance)

	fx.tx.redemptionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.tx.customerRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRedemptionService_Redeem_PrizeRejections(t *testing.T) {
	tests := []struct {
		name    string
		prize   func() *entity.Prize
		findErr error
		wantErr error
	}{
		{
			name: "inactive prize",
			prize: func() *entity.Prize {
				p := newTestPrize(100, nil)
				p.Active = false

				return p
			},
			wantErr: domainerrors.ErrPrizeUnavailable,
		},
		{
			name:    "out of stock",
			prize:   func() *entity.Prize { return newTestPrize(100, intPtr(0)) },
			wantErr: domainerrors.ErrPrizeOutOfStock,
		},
		{
			name:    "unknown prize",
			prize:   func() *entity.Prize { return nil },
			findErr: repository.ErrPrizeNotFound,
			wantErr: domainerrors.ErrPrizeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRedemptionService(t)
			ctx := context.Background()
			customer := &entity.Customer{ID: uuid.New(), Balance: 10000}
			prizeID := uuid.New()

			fx.tx.expectTransaction(ctx)
			fx.tx.customerRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
			fx.tx.prizeRepo.EXPECT().FindByIDForUpdate(ctx, prizeID).Return(tt.prize(), tt.findErr)

			_, err := fx.service.Redeem(ctx, &usecase.RedeemInput{CustomerID: customer.ID, PrizeID: prizeID})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 10000, customer.Balance)
		})
	}
}

func TestRedemptionService_Redeem_TakesLimitedStock(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Balance: 800}
	prize := newTestPrize(300, intPtr(1))

	fx.tx.expectTransaction(ctx)
	fx.tx.customerRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.tx.prizeRepo.EXPECT().FindByIDForUpdate(ctx, prize.ID).Return(prize, nil)
	fx.tx.redemptionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Redemption")).Return(nil)
	fx.tx.customerRepo.EXPECT().UpdateBalance(ctx, customer).Return(nil)
	fx.tx.prizeRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Prize) bool {
			return p.StockQuantity != nil && *p.StockQuantity == 0 && !p.InStock
		})).
		Return(nil)
	fx.tx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.PointsHistoryEntry")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).Return(nil)

	output, err := fx.service.Redeem(ctx, &usecase.RedeemInput{CustomerID: customer.ID, PrizeID: prize.ID})
	require.NoError(t, err)
	assert.Equal(t, 500, output.Balance)
}

func TestRedemptionService_Redeem_RetriesCodeCollision(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Balance: 500}
	prize := newTestPrize(200, nil)

	fx.tx.expectTransaction(ctx).Times(2)
	fx.tx.customerRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil).Times(2)
	fx.tx.prizeRepo.EXPECT().FindByIDForUpdate(ctx, prize.ID).Return(prize, nil).Times(2)
	fx.tx.redemptionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Redemption")).
		Return(repository.ErrDuplicateRedemptionCode).Once()
	fx.tx.redemptionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Redemption")).
		Return(nil).Once()
	fx.tx.customerRepo.EXPECT().UpdateBalance(ctx, customer).Return(nil).Once()
	fx.tx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.PointsHistoryEntry")).Return(nil).Once()
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).Return(nil)

	output, err := fx.service.Redeem(ctx, &usecase.RedeemInput{CustomerID: customer.ID, PrizeID: prize.ID})
	require.NoError(t, err)
	assert.Equal(t, 300, output.Balance)
}

func TestRedemptionService_Redeem_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Balance: 100}
	prize := newTestPrize(100, nil)

	fx.tx.expectTransaction(ctx)
	fx.tx.customerRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.tx.prizeRepo.EXPECT().FindByIDForUpdate(ctx, prize.ID).Return(prize, nil)
	fx.tx.redemptionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Redemption")).Return(nil)
	fx.tx.customerRepo.EXPECT().UpdateBalance(ctx, customer).Return(nil)
	fx.tx.historyRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.PointsHistoryEntry")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).Return(errors.New("broker down"))

	output, err := fx.service.Redeem(ctx, &usecase.RedeemInput{CustomerID: customer.ID, PrizeID: prize.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Balance)
}

func TestRedemptionService_Redeem_ConcurrentUpdate(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Balance: 100}
	prize := newTestPrize(100, nil)

	fx.tx.expectTransaction(ctx)
	fx.tx.customerRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.tx.prizeRepo.EXPECT().FindByIDForUpdate(ctx, prize.ID).Return(prize, nil)
	fx.tx.redemptionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Redemption")).Return(nil)
	fx.tx.customerRepo.EXPECT().UpdateBalance(ctx, customer).Return(repository.ErrConcurrentUpdate)

	_, err := fx.service.Redeem(ctx, &usecase.RedeemInput{CustomerID: customer.ID, PrizeID: prize.ID})
	assert.ErrorIs(t, err, domainerrors.ErrConcurrentUpdate)
}

func TestRedemptionService_MarkCollected(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	admin := &entity.Customer{ID: uuid.New(), Name: "Balcão Loja 1", Role: entity.RoleAdmin}
	redemption := &entity.Redemption{ID: uuid.New(), CustomerID: uuid.New(), Code: testRedemptionCode}

	fx.customerRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.tx.expectTransaction(ctx)
	fx.tx.redemptionRepo.EXPECT().FindByIDForUpdate(ctx, redemption.ID).Return(redemption, nil)
	fx.tx.redemptionRepo.EXPECT().MarkCollected(ctx, redemption.ID, "Balcão Loja 1", fixedClock).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.LoyaltyEvent) bool {
			return e.Type == constants.EventRedemptionCollected && e.RedemptionID == redemption.ID.String()
		})).
		Return(nil)

	got, err := fx.service.MarkCollected(ctx, &usecase.CollectInput{RedemptionID: redemption.ID, AdminID: admin.ID})
	require.NoError(t, err)
	assert.True(t, got.Collected)
	assert.Equal(t, "Balcão Loja 1", got.CollectedBy)
	require.NotNil(t, got.CollectedAt)
	assert.Equal(t, fixedClock, *got.CollectedAt)
}

func TestRedemptionService_MarkCollected_Twice(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	admin := &entity.Customer{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin}
	collectedAt := fixedClock.Add(-time.Hour)
	redemption := &entity.Redemption{
		ID:          uuid.New(),
		Code:        testRedemptionCode,
		Collected:   true,
		CollectedBy: "someone",
		CollectedAt: &collectedAt,
	}

	fx.customerRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.tx.expectTransaction(ctx)
	fx.tx.redemptionRepo.EXPECT().FindByIDForUpdate(ctx, redemption.ID).Return(redemption, nil)

	_, err := fx.service.MarkCollected(ctx, &usecase.CollectInput{RedemptionID: redemption.ID, AdminID: admin.ID})
	assert.ErrorIs(t, err, domainerrors.ErrRedemptionAlreadyCollected)
	assert.Equal(t, "someone", redemption.CollectedBy)
}

func TestRedemptionService_CollectByQR(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		fx := createTestRedemptionService(t)
		ctx := context.Background()

		admin := &entity.Customer{ID: uuid.New(), Name: "Admin"}
		redemption := &entity.Redemption{ID: uuid.New(), Code: testRedemptionCode}

		fx.qrService.EXPECT().ParseRedemptionQR("clubefast://resgate/" + testRedemptionCode).Return(testRedemptionCode, nil)
		fx.redemptionRepo.EXPECT().FindByCode(ctx, testRedemptionCode).Return(redemption, nil)
		fx.customerRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
		fx.tx.expectTransaction(ctx)
		fx.tx.redemptionRepo.EXPECT().FindByIDForUpdate(ctx, redemption.ID).Return(redemption, nil)
		fx.tx.redemptionRepo.EXPECT().MarkCollected(ctx, redemption.ID, "Admin", fixedClock).Return(nil)
		fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).Return(nil)

		got, err := fx.service.CollectByQR(ctx, &usecase.CollectByQRInput{
			QRData:  "clubefast://resgate/" + testRedemptionCode,
			AdminID: admin.ID,
		})
		require.NoError(t, err)
		assert.True(t, got.Collected)
	})

	t.Run("invalid payload", func(t *testing.T) {
		fx := createTestRedemptionService(t)

		fx.qrService.EXPECT().ParseRedemptionQR("garbage").Return("", errors.New("invalid QR code format"))

		_, err := fx.service.CollectByQR(context.Background(), &usecase.CollectByQRInput{QRData: "garbage", AdminID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		fx := createTestRedemptionService(t)
		ctx := context.Background()

		fx.qrService.EXPECT().ParseRedemptionQR("x").Return("CF-FFFFFFFFFF", nil)
		fx.redemptionRepo.EXPECT().FindByCode(ctx, "CF-FFFFFFFFFF").Return(nil, repository.ErrRedemptionNotFound)

		_, err := fx.service.CollectByQR(ctx, &usecase.CollectByQRInput{QRData: "x", AdminID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrRedemptionNotFound)
	})
}

func TestRedemptionService_RedemptionQR(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	owner := uuid.New()
	redemption := &entity.Redemption{ID: uuid.New(), CustomerID: owner, Code: testRedemptionCode}
	fx.redemptionRepo.EXPECT().FindByID(ctx, redemption.ID).Return(redemption, nil).Times(2)
	fx.qrService.EXPECT().GenerateRedemptionQR(testRedemptionCode).Return([]byte("png"), nil)

	png, err := fx.service.RedemptionQR(ctx, owner, redemption.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.RedemptionQR(ctx, uuid.New(), redemption.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRedemptionNotFound)
}

func TestRedemptionService_ExportRedemptions(t *testing.T) {
	fx := createTestRedemptionService(t)
	ctx := context.Background()

	collected := false
	rows := []*entity.Redemption{{ID: uuid.New(), Code: testRedemptionCode}}
	fx.redemptionRepo.EXPECT().
		List(ctx, repository.RedemptionFilter{Collected: &collected, Limit: exportLimit}).
		Return(rows, int64(1), nil)
	fx.exporter.EXPECT().Export(rows).Return([]byte("xlsx"), nil)
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	output, err := fx.service.ExportRedemptions(ctx, &usecase.ListRedemptionsInput{Collected: &collected})
	require.NoError(t, err)
	assert.Equal(t, "resgates-20240610.xlsx", output.Filename)
	assert.Equal(t, []byte("xlsx"), output.Data)
}

func TestGenerateRedemptionCode(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		code := generateRedemptionCode()
		assert.Regexp(t, `^CF-[0-9A-F]{10}$`, code)
		seen[code] = true
	}
	assert.Len(t, seen, 50)
}
