package impl

import (
	"context"
	"testing"
	"time"

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

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service        usecase.CustomerUsecase
	customerRepo   *mockRepo.MockCustomerRepository
	historyRepo    *mockRepo.MockPointsHistoryRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func createTestCustomerService(t *testing.T, adminEmails ...string) customerServiceFixtures {
	fx := customerServiceFixtures{
		customerRepo:   mockRepo.NewMockCustomerRepository(t),
		historyRepo:    mockRepo.NewMockPointsHistoryRepository(t),
		redemptionRepo: mockRepo.NewMockRedemptionRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		tokenService:   mockSvc.NewMockTokenService(t),
	}
	fx.service = NewCustomerService(CustomerServiceParams{
		CustomerRepo:   fx.customerRepo,
		HistoryRepo:    fx.historyRepo,
		RedemptionRepo: fx.redemptionRepo,
		Hasher:         fx.hasher,
		TokenService:   fx.tokenService,
		Config:         newTestConfig(adminEmails...),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestCustomerService_Register(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		admins   []string
		wantRole entity.Role
	}{
		{"customer", "  Maria@Example.com ", nil, entity.RoleCustomer},
		{"configured admin", "gerente@fast.com.br", []string{"Gerente@Fast.com.br"}, entity.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomerService(t, tt.admins...)
			ctx := context.Background()
			normalized := normalizeEmail(tt.email)

			fx.hasher.EXPECT().ValidatePasswordStrength("segredo123").Return(nil)
			fx.customerRepo.EXPECT().FindByEmail(ctx, normalized).Return(nil, repository.ErrCustomerNotFound)
			fx.hasher.EXPECT().Hash("segredo123").Return("hashed", nil)
			fx.customerRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
					return c.Email == normalized && c.PasswordHash == "hashed" && c.Role == tt.wantRole && c.Balance == 0
				})).
				Return(nil)

			output, err := fx.service.Register(ctx, &usecase.RegisterInput{
				Name:     "Maria",
				Email:    tt.email,
				Password: "segredo123",
			})
			require.NoError(t, err)
			assert.Equal(t, normalized, output.Customer.Email)
			assert.Equal(t, tt.wantRole, output.Customer.Role)
			assert.NotEqual(t, uuid.Nil, output.Customer.ID)
		})
	}
}

func TestCustomerService_Register_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(fx customerServiceFixtures)
		wantErr error
	}{
		{
			name: "weak password",
			setup: func(fx customerServiceFixtures) {
				fx.hasher.EXPECT().ValidatePasswordStrength("segredo123").Return(errors.New("too short"))
			},
			wantErr: domainerrors.ErrPasswordStrength,
		},
		{
			name: "email taken",
			setup: func(fx customerServiceFixtures) {
				fx.hasher.EXPECT().ValidatePasswordStrength("segredo123").Return(nil)
				fx.customerRepo.EXPECT().FindByEmail(ctx, "maria@example.com").Return(&entity.Customer{}, nil)
			},
			wantErr: domainerrors.ErrCustomerAlreadyExists,
		},
		{
			name: "unique violation on insert",
			setup: func(fx customerServiceFixtures) {
				fx.hasher.EXPECT().ValidatePasswordStrength("segredo123").Return(nil)
				fx.customerRepo.EXPECT().FindByEmail(ctx, "maria@example.com").Return(nil, repository.ErrCustomerNotFound)
				fx.hasher.EXPECT().Hash("segredo123").Return("hashed", nil)
				fx.customerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).Return(repository.ErrDuplicateCustomer)
			},
			wantErr: domainerrors.ErrCustomerAlreadyExists,
		},
		{
			name: "hash failure",
			setup: func(fx customerServiceFixtures) {
				fx.hasher.EXPECT().ValidatePasswordStrength("segredo123").Return(nil)
				fx.customerRepo.EXPECT().FindByEmail(ctx, "maria@example.com").Return(nil, repository.ErrCustomerNotFound)
				fx.hasher.EXPECT().Hash("segredo123").Return("", errors.New("bcrypt"))
			},
			wantErr: domainerrors.ErrPasswordHashFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomerService(t)
			tt.setup(fx)

			output, err := fx.service.Register(ctx, &usecase.RegisterInput{
				Name:     "Maria",
				Email:    "maria@example.com",
				Password: "segredo123",
			})
			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCustomerService_Login(t *testing.T) {
	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New(), Email: "maria@example.com", PasswordHash: "hashed", Role: entity.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		fx := createTestCustomerService(t)

		fx.customerRepo.EXPECT().FindByEmail(ctx, "maria@example.com").Return(customer, nil)
		fx.hasher.EXPECT().Check("segredo123", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(customer.ID, []string{"customer", "admin"}).Return("access", "refresh", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Maria@example.com", Password: "segredo123"})
		require.NoError(t, err)
		assert.Equal(t, "access", output.AccessToken)
		assert.Equal(t, "refresh", output.RefreshToken)
		assert.Equal(t, int64(900), output.ExpiresIn)
		assert.Equal(t, customer, output.Customer)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestCustomerService(t)

		fx.customerRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrCustomerNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestCustomerService(t)

		fx.customerRepo.EXPECT().FindByEmail(ctx, "maria@example.com").Return(customer, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "maria@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New(), Role: entity.RoleCustomer}

	t.Run("success", func(t *testing.T) {
		fx := createTestCustomerService(t)

		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: customer.ID, Type: service.TokenTypeRefresh}, nil)
		fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.tokenService.EXPECT().GenerateTokens(customer.ID, []string{"customer"}).Return("access2", "refresh2", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Minute)

		output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
		require.NoError(t, err)
		assert.Equal(t, "access2", output.AccessToken)
		assert.Equal(t, "refresh2", output.RefreshToken)
	})

	t.Run("access token presented", func(t *testing.T) {
		fx := createTestCustomerService(t)

		fx.tokenService.EXPECT().ValidateToken("access").Return(&service.Claims{UserID: customer.ID, Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "access"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestCustomerService(t)

		fx.tokenService.EXPECT().ValidateToken("old").Return(nil, errors.New("token is expired"))

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted customer", func(t *testing.T) {
		fx := createTestCustomerService(t)

		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: customer.ID, Type: service.TokenTypeRefresh}, nil)
		fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(nil, repository.ErrCustomerNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestCustomerService_GetProfile_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.customerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.GetProfile(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_GetHistory_NormalizesPage(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	id := uuid.New()
	entries := []*entity.PointsHistoryEntry{{ID: uuid.New(), Points: 10}}

	fx.historyRepo.EXPECT().FindByCustomer(ctx, id, 100, 0).Return(entries, nil)

	got, err := fx.service.GetHistory(ctx, id, usecase.Page{Limit: 5000, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestCustomerService_ListCustomers(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	customers := []*entity.Customer{{ID: uuid.New(), Name: "Maria"}}

	fx.customerRepo.EXPECT().
		List(ctx, repository.CustomerFilter{Search: "maria", Limit: 20, Offset: 40}).
		Return(customers, int64(41), nil)

	page, err := fx.service.ListCustomers(ctx, &usecase.ListCustomersInput{Search: " maria ", Page: usecase.Page{Offset: 40}})
	require.NoError(t, err)
	assert.Equal(t, int64(41), page.Total)
	assert.Equal(t, customers, page.Customers)
}

func TestCustomerService_GetCustomer(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New()}
	history := []*entity.PointsHistoryEntry{{ID: uuid.New()}}
	redemptions := []*entity.Redemption{{ID: uuid.New()}}

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.historyRepo.EXPECT().FindByCustomer(ctx, customer.ID, customerDetailLimit, 0).Return(history, nil)
	fx.redemptionRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.RedemptionFilter) bool {
			return f.CustomerID != nil && *f.CustomerID == customer.ID && f.Limit == customerDetailLimit
		})).
		Return(redemptions, int64(1), nil)

	detail, err := fx.service.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer, detail.Customer)
	assert.Equal(t, history, detail.History)
	assert.Equal(t, redemptions, detail.Redemptions)
}
