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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockCustomerUsecase) {
	customerUC := mockUsecase.NewMockCustomerUsecase(t)

	return NewAuthHandler(AuthHandlerParams{CustomerUC: customerUC, Logger: testLogger()}), customerUC
}

func TestAuthHandler_Register(t *testing.T) {
	handler, customerUC := newAuthHandler(t)
	customer := &entity.Customer{ID: uuid.New(), Name: "Maria Silva", Email: "maria@example.com", Role: entity.RoleCustomer}

	customerUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Email == "maria@example.com" && in.CPF == "12345678901"
		})).
		Return(&usecase.RegisterOutput{Customer: customer}, nil).
		Once()

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"Maria Silva","email":"maria@example.com","password":"Senha123","cpf":"12345678901"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Customer
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, customer.ID, got.ID)
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	handler, _ := newAuthHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"M","email":"not-an-email","password":"Senha123","cpf":"123"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	details, err := json.Marshal(env.Error.Details)
	require.NoError(t, err)
	assert.Contains(t, string(details), `"field":"email"`)
	assert.Contains(t, string(details), `"field":"cpf"`)
	assert.Contains(t, string(details), `"field":"name"`)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, customerUC := newAuthHandler(t)

	customerUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrCustomerAlreadyExists, "email taken")).
		Once()

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"Maria Silva","email":"maria@example.com","password":"Senha123"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, domainerrors.ErrCustomerAlreadyExists.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrCustomerAlreadyExists.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mockUsecase.MockCustomerUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"email":"maria@example.com","password":"Senha123"}`,
			setupMock: func(m *mockUsecase.MockCustomerUsecase) {
				m.EXPECT().
					Login(mock.Anything, &usecase.LoginInput{Email: "maria@example.com", Password: "Senha123"}).
					Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"email":"maria@example.com","password":"errada"}`,
			setupMock: func(m *mockUsecase.MockCustomerUsecase) {
				m.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setupMock:  func(m *mockUsecase.MockCustomerUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, customerUC := newAuthHandler(t)
			tt.setupMock(customerUC)

			c, rec := newTestContext(http.MethodPost, "/auth/login", tt.body)

			require.NoError(t, handler.Login(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}

			var tokens TokenResponse
			require.NoError(t, json.Unmarshal(env.Data, &tokens))
			assert.Equal(t, "access", tokens.AccessToken)
			assert.Equal(t, "Bearer", tokens.TokenType)
			assert.Equal(t, int64(900), tokens.ExpiresIn)
		})
	}
}

func TestAuthHandler_RefreshToken_MissingToken(t *testing.T) {
	handler, _ := newAuthHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/refresh", `{}`)

	require.NoError(t, handler.RefreshToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}
