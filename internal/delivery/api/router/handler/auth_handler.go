package handler

import (
	"log/slog"
	"net/http"

	"clubefast/internal/delivery/api/response"
	"clubefast/internal/delivery/api/validator"
	"clubefast/internal/domain/entity"
	"clubefast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// AuthHandler serves registration, login and token refresh.
type AuthHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	CPF      string `json:"cpf" validate:"omitempty,len=11,numeric"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the body of POST /auth/refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse carries a token pair
type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	TokenType    string           `json:"token_type"`
	ExpiresIn    int64            `json:"expires_in"`
	Customer     *entity.Customer `json:"customer,omitempty"`
}

// Register creates a customer account
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	output, err := h.customerUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		CPF:      req.CPF,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output.Customer)
}

// Login exchanges credentials for a token pair
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	output, err := h.customerUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    output.ExpiresIn,
		Customer:     output.Customer,
	})
}

// RefreshToken issues a new token pair from a refresh token
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	output, err := h.customerUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    output.ExpiresIn,
	})
}
