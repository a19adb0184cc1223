package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/repository"
	"clubefast/internal/domain/service"
	"clubefast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	redemptionCodePrefix = "CF-"
	redemptionCodeLength = 10
	// maxCodeAttempts bounds the retries after a pickup code collision.
	maxCodeAttempts = 3
	exportLimit     = 10000
)

// redemptionService implements the RedemptionUsecase interface.
type redemptionService struct {
	txManager      repository.TransactionManager
	customerRepo   repository.CustomerRepository
	redemptionRepo repository.RedemptionRepository
	qrService      service.QRCodeService
	exporter       service.RedemptionExporter
	publisher      service.EventPublisher
	newCode        func() string
	now            func() time.Time
	logger         *slog.Logger
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CustomerRepo   repository.CustomerRepository
	RedemptionRepo repository.RedemptionRepository
	QRService      service.QRCodeService
	Exporter       service.RedemptionExporter
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewRedemptionService is the constructor for redemptionService.
func NewRedemptionService(params RedemptionServiceParams) usecase.RedemptionUsecase {
	return &redemptionService{
		txManager:      params.TxManager,
		customerRepo:   params.CustomerRepo,
		redemptionRepo: params.RedemptionRepo,
		qrService:      params.QRService,
		exporter:       params.Exporter,
		publisher:      params.Publisher,
		newCode:        generateRedemptionCode,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *redemptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Redeem exchanges points for a prize. The balance check happens under the customer row lock,
// so concurrent redemptions by the same customer cannot overdraw.
func (srv *redemptionService) Redeem(ctx context.Context, input *usecase.RedeemInput) (*usecase.RedeemOutput, error) {
	srv.log(ctx).Info("Starting redemption", slog.Any("customerID", input.CustomerID), slog.Any("prizeID", input.PrizeID))

	var output *usecase.RedeemOutput
	var err error
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var txErr error
			output, txErr = srv.redeemInTx(ctx, repoFactory, input)

			return txErr
		})
		if !errors.Is(err, repository.ErrDuplicateRedemptionCode) {
			break
		}
		srv.log(ctx).Warn("Redemption code collision, retrying", slog.Int("attempt", attempt))
	}
	if err != nil {
		srv.log(ctx).Warn("Redemption failed", slog.Any("customerID", input.CustomerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute redemption transaction")
	}

	srv.log(ctx).Info("Redemption confirmed",
		slog.Any("redemptionID", output.Redemption.ID),
		slog.String("code", output.Redemption.Code),
		slog.Int("balance", output.Balance),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LoyaltyEvent{
		Type:         constants.EventRedemptionCreated,
		CustomerID:   input.CustomerID.String(),
		Points:       -output.Redemption.PointsCost,
		Balance:      output.Balance,
		RedemptionID: output.Redemption.ID.String(),
	})

	return output, nil
}

func (srv *redemptionService) redeemInTx(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.RedeemInput) (*usecase.RedeemOutput, error) {
	customerRepo := repoFactory.CustomerRepo()
	prizeRepo := repoFactory.PrizeRepo()

	customer, err := customerRepo.FindByIDForUpdate(ctx, input.CustomerID)
	if err != nil {
		return nil, mapCustomerError(err)
	}

	prize, err := prizeRepo.FindByIDForUpdate(ctx, input.PrizeID)
	if err != nil {
		if errors.Is(err, repository.ErrPrizeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPrizeNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to load prize")
	}
	if !prize.Active {
		return nil, errors.Wrap(domainerrors.ErrPrizeUnavailable, "prize is inactive")
	}
	if !prize.Available() {
		return nil, errors.Wrap(domainerrors.ErrPrizeOutOfStock, "prize is out of stock")
	}

	// Checked before any write so a rejected redemption leaves no trace.
	if !customer.CanAfford(prize.PointsCost) {
		return nil, errors.Wrapf(domainerrors.ErrInsufficientPoints, "balance %d, cost %d", customer.Balance, prize.PointsCost)
	}

	redemption := &entity.Redemption{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		PrizeID:    prize.ID,
		PrizeName:  prize.Name,
		PointsCost: prize.PointsCost,
		Code:       srv.newCode(),
		Status:     entity.RedemptionStatusConfirmed,
	}
	if err := repoFactory.RedemptionRepo().Create(ctx, redemption); err != nil {
		return nil, errors.Wrap(err, "failed to create redemption")
	}

	customer.Debit(prize.PointsCost)
	if err := customerRepo.UpdateBalance(ctx, customer); err != nil {
		return nil, mapBalanceError(err)
	}

	if prize.StockQuantity != nil {
		prize.TakeOne()
		if err := prizeRepo.Update(ctx, prize); err != nil {
			return nil, errors.Wrap(err, "failed to update prize stock")
		}
	}

	entry := &entity.PointsHistoryEntry{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		Type:         entity.HistoryTypeDebit,
		Points:       prize.PointsCost,
		BalanceAfter: customer.Balance,
		Description:  "Resgate: " + prize.Name,
		RedemptionID: &redemption.ID,
	}
	if err := repoFactory.HistoryRepo().Append(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to append points history")
	}

	return &usecase.RedeemOutput{Redemption: redemption, Balance: customer.Balance}, nil
}

func (srv *redemptionService) ListMine(ctx context.Context, customerID uuid.UUID, page usecase.Page) ([]*entity.Redemption, error) {
	page = page.Normalize()

	redemptions, _, err := srv.redemptionRepo.List(ctx, repository.RedemptionFilter{
		CustomerID: &customerID,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	return redemptions, nil
}

// RedemptionQR answers not found for redemptions of other customers.
func (srv *redemptionService) RedemptionQR(ctx context.Context, customerID, redemptionID uuid.UUID) ([]byte, error) {
	redemption, err := srv.findRedemption(ctx, redemptionID)
	if err != nil {
		return nil, err
	}
	if redemption.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrRedemptionNotFound, "redemption belongs to another customer")
	}

	png, err := srv.qrService.GenerateRedemptionQR(redemption.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

func (srv *redemptionService) ListRedemptions(ctx context.Context, input *usecase.ListRedemptionsInput) (*usecase.RedemptionPage, error) {
	page := input.Page.Normalize()

	redemptions, total, err := srv.redemptionRepo.List(ctx, repository.RedemptionFilter{
		CustomerID: input.CustomerID,
		Collected:  input.Collected,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	return &usecase.RedemptionPage{Redemptions: redemptions, Total: total}, nil
}

func (srv *redemptionService) MarkCollected(ctx context.Context, input *usecase.CollectInput) (*entity.Redemption, error) {
	return srv.collect(ctx, input.RedemptionID, input.AdminID)
}

func (srv *redemptionService) CollectByQR(ctx context.Context, input *usecase.CollectByQRInput) (*entity.Redemption, error) {
	code, err := srv.qrService.ParseRedemptionQR(input.QRData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidQRCode, err.Error())
	}

	redemption, err := srv.redemptionRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRedemptionNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to load redemption by code")
	}

	return srv.collect(ctx, redemption.ID, input.AdminID)
}

// collect flips the collected flag once. A second pickup of the same redemption is rejected.
func (srv *redemptionService) collect(ctx context.Context, redemptionID, adminID uuid.UUID) (*entity.Redemption, error) {
	admin, err := srv.customerRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, mapCustomerError(err)
	}
	collectedBy := admin.Name
	if collectedBy == "" {
		collectedBy = admin.Email
	}

	var redemption *entity.Redemption
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		redemptionRepo := repoFactory.RedemptionRepo()

		var findErr error
		redemption, findErr = redemptionRepo.FindByIDForUpdate(ctx, redemptionID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRedemptionNotFound) {
				return errors.Wrap(domainerrors.ErrRedemptionNotFound, findErr.Error())
			}

			return errors.Wrap(findErr, "failed to load redemption")
		}

		at := srv.now().UTC()
		if !redemption.MarkCollected(collectedBy, at) {
			return errors.Wrap(domainerrors.ErrRedemptionAlreadyCollected, redemption.Code)
		}

		return errors.Wrap(redemptionRepo.MarkCollected(ctx, redemption.ID, collectedBy, at), "failed to mark redemption collected")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to collect redemption", slog.Any("redemptionID", redemptionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute collect transaction")
	}

	srv.log(ctx).Info("Redemption collected", slog.Any("redemptionID", redemption.ID), slog.String("collectedBy", collectedBy))

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LoyaltyEvent{
		Type:         constants.EventRedemptionCollected,
		CustomerID:   redemption.CustomerID.String(),
		RedemptionID: redemption.ID.String(),
	})

	return redemption, nil
}

func (srv *redemptionService) ExportRedemptions(ctx context.Context, input *usecase.ListRedemptionsInput) (*usecase.ExportOutput, error) {
	redemptions, _, err := srv.redemptionRepo.List(ctx, repository.RedemptionFilter{
		CustomerID: input.CustomerID,
		Collected:  input.Collected,
		Limit:      exportLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions for export")
	}

	data, err := srv.exporter.Export(redemptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export redemptions")
	}

	return &usecase.ExportOutput{
		Filename:    "resgates-" + srv.now().Format("20060102") + ".xlsx",
		ContentType: srv.exporter.ContentType(),
		Data:        data,
	}, nil
}

func (srv *redemptionService) findRedemption(ctx context.Context, id uuid.UUID) (*entity.Redemption, error) {
	redemption, err := srv.redemptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRedemptionNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to load redemption")
	}

	return redemption, nil
}

// generateRedemptionCode returns CF- followed by 10 uppercase hex characters.
func generateRedemptionCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")

	return redemptionCodePrefix + strings.ToUpper(hex[:redemptionCodeLength])
}
