package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/repository"
	"clubefast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	prizeRepo      repository.PrizeRepository
	redemptionRepo repository.RedemptionRepository
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	PrizeRepo      repository.PrizeRepository
	RedemptionRepo repository.RedemptionRepository
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		prizeRepo:      params.PrizeRepo,
		redemptionRepo: params.RedemptionRepo,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListPrizes(ctx context.Context, input *usecase.ListPrizesInput) ([]*entity.Prize, error) {
	prizes, err := srv.prizeRepo.List(ctx, repository.PrizeFilter{
		OnlyActive:   true,
		FeaturedOnly: input.FeaturedOnly,
		Category:     strings.TrimSpace(input.Category),
		MaxPoints:    input.MaxPoints,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prizes")
	}

	return prizes, nil
}

// GetPrize hides inactive prizes from customers.
func (srv *catalogService) GetPrize(ctx context.Context, id uuid.UUID) (*entity.Prize, error) {
	prize, err := srv.findPrize(ctx, id)
	if err != nil {
		return nil, err
	}
	if !prize.Active {
		return nil, errors.Wrap(domainerrors.ErrPrizeNotFound, "prize is inactive")
	}

	return prize, nil
}

func (srv *catalogService) AdminListPrizes(ctx context.Context) ([]*entity.Prize, error) {
	prizes, err := srv.prizeRepo.List(ctx, repository.PrizeFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prizes")
	}

	return prizes, nil
}

func (srv *catalogService) CreatePrize(ctx context.Context, input *usecase.PrizeInput) (*entity.Prize, error) {
	if err := validatePrizeInput(input); err != nil {
		return nil, err
	}

	prize := &entity.Prize{ID: uuid.New(), Active: true}
	applyPrizeInput(prize, input)

	if err := srv.prizeRepo.Create(ctx, prize); err != nil {
		return nil, errors.Wrap(err, "failed to create prize")
	}
	srv.log(ctx).Info("Prize created", slog.Any("prizeID", prize.ID), slog.String("name", prize.Name))

	return prize, nil
}

func (srv *catalogService) UpdatePrize(ctx context.Context, id uuid.UUID, input *usecase.PrizeInput) (*entity.Prize, error) {
	if err := validatePrizeInput(input); err != nil {
		return nil, err
	}

	prize, err := srv.findPrize(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPrizeInput(prize, input)

	if err := srv.prizeRepo.Update(ctx, prize); err != nil {
		if errors.Is(err, repository.ErrPrizeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPrizeNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to update prize")
	}
	srv.log(ctx).Info("Prize updated", slog.Any("prizeID", prize.ID))

	return prize, nil
}

// DeletePrize keeps prizes that were already redeemed so the redemption history stays intact.
func (srv *catalogService) DeletePrize(ctx context.Context, id uuid.UUID) (*usecase.DeletePrizeOutput, error) {
	prize, err := srv.findPrize(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := srv.redemptionRepo.CountByPrize(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count prize redemptions")
	}

	if count > 0 {
		prize.Active = false
		if err := srv.prizeRepo.Update(ctx, prize); err != nil {
			return nil, errors.Wrap(err, "failed to deactivate prize")
		}
		srv.log(ctx).Info("Prize deactivated", slog.Any("prizeID", id), slog.Int64("redemptions", count))

		return &usecase.DeletePrizeOutput{Deactivated: true}, nil
	}

	if err := srv.prizeRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete prize")
	}
	srv.log(ctx).Info("Prize deleted", slog.Any("prizeID", id))

	return &usecase.DeletePrizeOutput{}, nil
}

func (srv *catalogService) findPrize(ctx context.Context, id uuid.UUID) (*entity.Prize, error) {
	prize, err := srv.prizeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPrizeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPrizeNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to load prize")
	}

	return prize, nil
}

func validatePrizeInput(input *usecase.PrizeInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "prize name is required")
	}
	if input.PointsCost <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "points cost must be positive")
	}
	if input.StockQuantity != nil && *input.StockQuantity < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "stock quantity cannot be negative")
	}

	return nil
}

func applyPrizeInput(prize *entity.Prize, input *usecase.PrizeInput) {
	prize.Name = strings.TrimSpace(input.Name)
	prize.Description = input.Description
	prize.ImageURL = input.ImageURL
	prize.Category = strings.TrimSpace(input.Category)
	prize.PointsCost = input.PointsCost
	prize.StockQuantity = input.StockQuantity
	prize.InStock = input.StockQuantity == nil || *input.StockQuantity > 0
	prize.DisplayOrder = input.DisplayOrder
	prize.Featured = input.Featured
	if input.Active != nil {
		prize.Active = *input.Active
	}
}
