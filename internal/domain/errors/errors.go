// Package errors defines the application errors rendered to API clients.
// Messages are user-facing and in Portuguese.
package errors

import (
	"net/http"

	"clubefast/internal/errors"
)

// AppError is an error that knows how it is presented over HTTP.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the plain AppError used for all sentinels below.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage adds internal context for logs; clients still see Message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Customers and sessions.
var (
	ErrCustomerNotFound       = newError(http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Cliente não encontrado")
	ErrCustomerAlreadyExists  = newError(http.StatusConflict, "CUSTOMER_ALREADY_EXISTS", "Este e-mail já está cadastrado")
	ErrCustomerCreationFailed = newError(http.StatusInternalServerError, "CUSTOMER_CREATION_FAILED", "Falha ao criar o cadastro")
	ErrConcurrentUpdate       = newError(http.StatusConflict, "CONCURRENT_UPDATE", "Seu saldo foi alterado por outra operação. Tente novamente.")
	ErrInvalidCredentials     = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "E-mail ou senha incorretos")
	ErrRefreshTokenInvalid    = newError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Sessão inválida ou expirada")
	ErrPasswordHashFailed     = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Erro ao processar a senha")
	ErrPasswordStrength       = newError(http.StatusBadRequest, "PASSWORD_STRENGTH", "A senha não atende aos requisitos mínimos")
)

// Invoice upload and extraction.
var (
	ErrInvalidImage          = newError(http.StatusBadRequest, "INVALID_IMAGE", "Envie uma imagem válida da nota fiscal (JPG, PNG, WEBP, HEIC ou PDF)")
	ErrUnknownProvider       = newError(http.StatusBadRequest, "UNKNOWN_PROVIDER", "Provedor de leitura desconhecido ou não configurado")
	ErrInvoiceUnreadable     = newError(http.StatusUnprocessableEntity, "INVOICE_UNREADABLE", "Não foi possível ler os dados da nota fiscal. Envie uma foto mais nítida.")
	ErrExtractionUnavailable = newError(http.StatusBadGateway, "EXTRACTION_UNAVAILABLE", "O serviço de leitura de notas está indisponível no momento. Tente novamente em instantes.")
	ErrDuplicateInvoice      = newError(http.StatusConflict, "DUPLICATE_INVOICE", "Esta nota fiscal já foi enviada e seus pontos já foram creditados")
)

// Catalog and redemptions.
var (
	ErrPrizeNotFound              = newError(http.StatusNotFound, "PRIZE_NOT_FOUND", "Prêmio não encontrado")
	ErrPrizeUnavailable           = newError(http.StatusConflict, "PRIZE_UNAVAILABLE", "Este prêmio não está disponível para resgate")
	ErrPrizeOutOfStock            = newError(http.StatusConflict, "PRIZE_OUT_OF_STOCK", "Este prêmio está esgotado")
	ErrInsufficientPoints         = newError(http.StatusUnprocessableEntity, "INSUFFICIENT_POINTS", "Saldo de pontos insuficiente para este resgate")
	ErrRedemptionNotFound         = newError(http.StatusNotFound, "REDEMPTION_NOT_FOUND", "Resgate não encontrado")
	ErrRedemptionAlreadyCollected = newError(http.StatusConflict, "REDEMPTION_ALREADY_COLLECTED", "Este resgate já foi retirado")
	ErrInvalidQRCode              = newError(http.StatusBadRequest, "INVALID_QR_CODE", "QR code de resgate inválido")
)

// General.
var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Dados de entrada inválidos")
	ErrInternalError    = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do sistema")
)

// DatabaseExecuteError hides a storage failure behind a generic 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps err; details name the failed operation for logs.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Falha ao executar operação no banco de dados" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
