// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"clubefast/config"
	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/entity"
	domainerrors "clubefast/internal/domain/errors"
	"clubefast/internal/domain/repository"
	"clubefast/internal/domain/service"
	"clubefast/internal/usecase"
	"clubefast/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const customerDetailLimit = 50

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo   repository.CustomerRepository
	historyRepo    repository.PointsHistoryRepository
	redemptionRepo repository.RedemptionRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	adminEmails    []string
	logger         *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo   repository.CustomerRepository
	HistoryRepo    repository.PointsHistoryRepository
	RedemptionRepo repository.RedemptionRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	var adminEmails []string
	if params.Config != nil && params.Config.Auth != nil {
		for _, email := range params.Config.Auth.AdminEmails {
			adminEmails = append(adminEmails, normalizeEmail(email))
		}
	}

	return &customerService{
		customerRepo:   params.CustomerRepo,
		historyRepo:    params.HistoryRepo,
		redemptionRepo: params.RedemptionRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		adminEmails:    adminEmails,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account. Emails listed in auth.adminEmails get the admin role.
func (srv *customerService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", util.MaskEmail(email)))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", util.MaskEmail(email)), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	_, err := srv.customerRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrCustomerAlreadyExists, "email already registered")
	case !errors.Is(err, repository.ErrCustomerNotFound):
		return nil, errors.Wrap(err, "failed to look up customer by email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	customer := &entity.Customer{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		CPF:          strings.TrimSpace(input.CPF),
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
	}
	if slices.Contains(srv.adminEmails, email) {
		customer.Role = entity.RoleAdmin
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return nil, errors.Wrap(domainerrors.ErrCustomerAlreadyExists, "email already registered")
		}
		srv.log(ctx).Error("Failed to create customer", slog.String("email", util.MaskEmail(email)), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCustomerCreationFailed, err.Error())
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("customerID", customer.ID), slog.String("role", customer.Role.String()))

	return &usecase.RegisterOutput{Customer: customer}, nil
}

// Login checks the credentials and issues a token pair.
func (srv *customerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting customer login", slog.String("email", util.MaskEmail(email)))

	customer, err := srv.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", util.MaskEmail(email)), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load customer for login")
	}

	// bcrypt is CPU-bound; no connection is held here.
	if !srv.hasher.Check(input.Password, customer.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", util.MaskEmail(email)), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(customer.ID, customer.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Debug("Customer logged in successfully", slog.Any("customerID", customer.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		Customer:     customer,
	}, nil
}

// RefreshToken issues a new token pair from a valid refresh token.
// Roles are reloaded so a promotion or demotion takes effect on the next refresh.
func (srv *customerService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh with invalid token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token is not a refresh token")
	}

	customer, err := srv.customerRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "customer no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load customer for refresh")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(customer.ID, customer.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
	}, nil
}

func (srv *customerService) GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, mapCustomerError(err)
	}

	return customer, nil
}

func (srv *customerService) GetHistory(ctx context.Context, customerID uuid.UUID, page usecase.Page) ([]*entity.PointsHistoryEntry, error) {
	page = page.Normalize()

	entries, err := srv.historyRepo.FindByCustomer(ctx, customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load points history")
	}

	return entries, nil
}

func (srv *customerService) ListCustomers(ctx context.Context, input *usecase.ListCustomersInput) (*usecase.CustomerPage, error) {
	page := input.Page.Normalize()

	customers, total, err := srv.customerRepo.List(ctx, repository.CustomerFilter{
		Search: strings.TrimSpace(input.Search),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return &usecase.CustomerPage{Customers: customers, Total: total}, nil
}

func (srv *customerService) GetCustomer(ctx context.Context, customerID uuid.UUID) (*usecase.CustomerDetail, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, mapCustomerError(err)
	}

	history, err := srv.historyRepo.FindByCustomer(ctx, customerID, customerDetailLimit, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load points history")
	}

	redemptions, _, err := srv.redemptionRepo.List(ctx, repository.RedemptionFilter{
		CustomerID: &customerID,
		Limit:      customerDetailLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load redemptions")
	}

	return &usecase.CustomerDetail{
		Customer:    customer,
		History:     history,
		Redemptions: redemptions,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapCustomerError(err error) error {
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return errors.Wrap(domainerrors.ErrCustomerNotFound, err.Error())
	}

	return errors.Wrap(err, "failed to load customer")
}
