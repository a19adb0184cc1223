package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/constants"
	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/points"
	"clubefast/internal/domain/repository"
	"clubefast/internal/domain/service"
	"clubefast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const ocrHealthTimeout = 5 * time.Second

// invoiceService implements the InvoiceUsecase interface.
type invoiceService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	extractors service.InvoiceExtractorSelector
	calculator *points.Calculator
	imageStore service.InvoiceImageStore
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	Extractors service.InvoiceExtractorSelector
	Calculator *points.Calculator
	ImageStore service.InvoiceImageStore
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewInvoiceService is the constructor for invoiceService.
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	return &invoiceService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		extractors: params.Extractors,
		calculator: params.Calculator,
		imageStore: params.ImageStore,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *invoiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessInvoice reads the invoice, computes its points and credits them.
// Invoices without eligible products are reported but not stored.
func (srv *invoiceService) ProcessInvoice(ctx context.Context, input *usecase.ProcessInvoiceInput) (*usecase.ProcessInvoiceOutput, error) {
	if err := validateImage(input.Image, input.MimeType); err != nil {
		return nil, err
	}

	imageKey := srv.archiveImage(ctx, input)

	provider, result, err := srv.extract(ctx, input.Image, input.MimeType, input.Provider)
	if err != nil {
		return nil, err
	}

	output := &usecase.ProcessInvoiceOutput{Provider: provider, Result: result}
	if result.NoEligibleProducts {
		srv.log(ctx).Info("Invoice has no eligible products", slog.Any("customerID", input.CustomerID), slog.String("provider", provider))

		return output, nil
	}

	order := &entity.Order{
		ID:            uuid.New(),
		CustomerID:    input.CustomerID,
		OrderNumber:   result.OrderNumber,
		CustomerName:  result.CustomerName,
		OrderDate:     result.Date,
		DeclaredTotal: result.DeclaredTotal,
		EligibleTotal: result.EligibleTotal,
		TotalPoints:   result.TotalPoints,
		Provider:      provider,
		ImageKey:      imageKey,
		Fingerprint:   points.Fingerprint(input.CustomerID, result),
		Items:         result.Items,
	}

	var balance int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		balance, txErr = srv.creditOrder(ctx, repoFactory, order)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to credit invoice", slog.Any("customerID", input.CustomerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute invoice credit transaction")
	}

	srv.log(ctx).Info("Invoice credited",
		slog.Any("customerID", input.CustomerID),
		slog.Any("orderID", order.ID),
		slog.Int("points", order.TotalPoints),
		slog.Int("balance", balance),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LoyaltyEvent{
		Type:       constants.EventPointsCredited,
		CustomerID: input.CustomerID.String(),
		Points:     order.TotalPoints,
		Balance:    balance,
		OrderID:    order.ID.String(),
	})

	output.Order = order
	output.Balance = balance
	output.Credited = true

	return output, nil
}

// creditOrder runs inside the transaction: lock, dedupe, insert, credit, ledger.
func (srv *invoiceService) creditOrder(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) (int, error) {
	customerRepo := repoFactory.CustomerRepo()
	orderRepo := repoFactory.OrderRepo()

	customer, err := customerRepo.FindByIDForUpdate(ctx, order.CustomerID)
	if err != nil {
		return 0, mapCustomerError(err)
	}

	exists, err := orderRepo.ExistsByFingerprint(ctx, order.Fingerprint)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check invoice fingerprint")
	}
	if exists {
		return 0, errors.Wrap(domainerrors.ErrDuplicateInvoice, "invoice already credited")
	}

	if err := orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrder) {
			return 0, errors.Wrap(domainerrors.ErrDuplicateInvoice, "invoice already credited")
		}

		return 0, errors.Wrap(err, "failed to create order")
	}

	customer.Credit(order.TotalPoints)
	if err := customerRepo.UpdateBalance(ctx, customer); err != nil {
		return 0, mapBalanceError(err)
	}

	entry := &entity.PointsHistoryEntry{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		Type:         entity.HistoryTypeCredit,
		Points:       order.TotalPoints,
		BalanceAfter: customer.Balance,
		Description:  orderDescription(order),
		OrderID:      &order.ID,
	}
	if err := repoFactory.HistoryRepo().Append(ctx, entry); err != nil {
		return 0, errors.Wrap(err, "failed to append points history")
	}

	return customer.Balance, nil
}

func (srv *invoiceService) PreviewInvoice(ctx context.Context, input *usecase.PreviewInvoiceInput) (*usecase.PreviewInvoiceOutput, error) {
	if err := validateImage(input.Image, input.MimeType); err != nil {
		return nil, err
	}

	provider, result, err := srv.extract(ctx, input.Image, input.MimeType, input.Provider)
	if err != nil {
		return nil, err
	}

	return &usecase.PreviewInvoiceOutput{Provider: provider, Result: result}, nil
}

func (srv *invoiceService) ListOrders(ctx context.Context, customerID uuid.UUID, page usecase.Page) ([]*entity.Order, error) {
	page = page.Normalize()

	orders, err := srv.orderRepo.FindByCustomer(ctx, customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Providers lists the registered providers and probes the OCR service when it is configured.
func (srv *invoiceService) Providers(ctx context.Context) (*usecase.ProvidersOutput, error) {
	output := &usecase.ProvidersOutput{
		Providers:        srv.extractors.Providers(),
		OCRServiceHealth: "disabled",
	}

	extractor, err := srv.extractors.Select(constants.VisionProviderOCRService)
	if err != nil {
		return output, nil
	}

	checker, ok := extractor.(service.HealthChecker)
	if !ok {
		return output, nil
	}

	healthCtx, cancel := context.WithTimeout(ctx, ocrHealthTimeout)
	defer cancel()

	output.OCRServiceHealth = "ok"
	if err := checker.Health(healthCtx); err != nil {
		srv.log(ctx).Warn("OCR service health check failed", slog.Any("error", err))
		output.OCRServiceHealth = "unavailable"
	}

	return output, nil
}

// extract selects the provider, reads the invoice and runs the calculator.
func (srv *invoiceService) extract(ctx context.Context, image []byte, mimeType, providerName string) (string, *points.Result, error) {
	extractor, err := srv.extractors.Select(providerName)
	if err != nil {
		srv.log(ctx).Warn("Vision provider unavailable", slog.String("provider", providerName), slog.Any("error", err))

		return "", nil, errors.Wrap(domainerrors.ErrUnknownProvider, err.Error())
	}

	parsed, err := extractor.Extract(ctx, image, mimeType)
	if err != nil {
		srv.log(ctx).Warn("Invoice extraction failed", slog.String("provider", extractor.Name()), slog.Any("error", err))

		switch {
		case service.IsParseError(err):
			return "", nil, errors.Wrap(domainerrors.ErrInvoiceUnreadable, err.Error())
		case errors.Is(err, context.Canceled):
			return "", nil, errors.Wrap(err, "invoice extraction canceled")
		default:
			return "", nil, errors.Wrap(domainerrors.ErrExtractionUnavailable, err.Error())
		}
	}

	return extractor.Name(), srv.calculator.Calculate(parsed), nil
}

func (srv *invoiceService) archiveImage(ctx context.Context, input *usecase.ProcessInvoiceInput) string {
	if srv.imageStore == nil {
		return ""
	}

	key, err := srv.imageStore.Save(ctx, input.CustomerID, input.Image, input.MimeType)
	if err != nil {
		srv.log(ctx).Warn("Failed to archive invoice image", slog.Any("customerID", input.CustomerID), slog.Any("error", err))

		return ""
	}

	return key
}

func validateImage(image []byte, mimeType string) error {
	if len(image) == 0 {
		return errors.Wrap(domainerrors.ErrInvalidImage, "empty image")
	}
	if _, ok := constants.AllowedImageMimeTypes[mimeType]; !ok {
		return errors.Wrapf(domainerrors.ErrInvalidImage, "unsupported mime type %q", mimeType)
	}

	return nil
}

func orderDescription(order *entity.Order) string {
	if order.OrderNumber != "" {
		return "Nota fiscal " + order.OrderNumber
	}

	return "Nota fiscal de " + order.OrderDate
}

func mapBalanceError(err error) error {
	if errors.Is(err, repository.ErrConcurrentUpdate) {
		return errors.Wrap(domainerrors.ErrConcurrentUpdate, err.Error())
	}
	if errors.Is(err, repository.ErrNegativeBalance) {
		return errors.Wrap(domainerrors.ErrInsufficientPoints, err.Error())
	}

	return errors.Wrap(err, "failed to update balance")
}
