package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubefast/config"
	"clubefast/internal/delivery/api/response"
	deliverycontext "clubefast/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:5173"

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowedOrigins = []string{testOrigin}

	e := newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/echo", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.String(http.StatusOK, string(body))
	})

	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestNewEcho_AssignsRequestID(t *testing.T) {
	e := newTestEcho(t)

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ping")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ping", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestNewEcho_ErrorsUseEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		req         *http.Request
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "body over limit",
			req:         httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2048))),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "Arquivo muito grande",
		},
		{
			name:        "unknown route",
			req:         httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Recurso não encontrado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newTestEcho(t), tt.req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body.Meta.RequestID)
		})
	}
}

func TestNewEcho_CORS(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "configured origin", origin: testOrigin, wantOrigin: testOrigin},
		{name: "foreign origin", origin: "https://evil.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
			req.Header.Set(echo.HeaderOrigin, tt.origin)
			req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)

			rec := serve(newTestEcho(t), req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}
