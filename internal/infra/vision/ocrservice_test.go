package vision

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubefast/config"
	"clubefast/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOCRTestExtractor(t *testing.T, handler http.HandlerFunc) *OCRServiceExtractor {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	extractor, err := NewOCRServiceExtractor(config.OCRServiceConfig{
		BaseURL:        server.URL + "/",
		HealthTimeout:  time.Second,
		ProcessTimeout: time.Second,
	}, testLogger())
	require.NoError(t, err)

	return extractor
}

func TestOCRServiceExtractor_Health(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := newOCRTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
			})

			err := extractor.Health(t.Context())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOCRServiceExtractor_Extract(t *testing.T) {
	extractor := newOCRTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/process-order", r.URL.Path)

		var req ocrProcessRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "image/jpeg", req.FileType)
		assert.Equal(t, base64.StdEncoding.EncodeToString(testImage), req.Image)

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"numeroPedido": "901",
				"totalValue": 1162,
				"totalPoints": 99999,
				"products": [
					{"codigo": "DW00057", "descricao": "PLACA ST", "quantidade": 35, "valorUnitario": 33.2, "valorTotal": 1162, "pontos": 99999}
				]
			}
		}`))
	})

	invoice, err := extractor.Extract(t.Context(), testImage, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "ocrservice", invoice.Provider)
	assert.Equal(t, ptr("901"), invoice.NumeroPedido)
	assert.Equal(t, ptr(1162.0), invoice.ValorTotal)
	require.Len(t, invoice.Produtos, 1)
	assert.Equal(t, "DW00057", invoice.Produtos[0].Code())
}

func TestOCRServiceExtractor_Extract_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   error
		wantParse bool
	}{
		{
			name:      "service rejected image",
			status:    http.StatusOK,
			body:      `{"success": false, "error": "imagem ilegível"}`,
			wantErr:   service.ErrProviderRejected,
			wantParse: true,
		},
		{
			name:      "not json",
			status:    http.StatusOK,
			body:      `<html>oops</html>`,
			wantErr:   service.ErrMalformedJSON,
			wantParse: true,
		},
		{
			name:      "no data",
			status:    http.StatusOK,
			body:      `{"success": true}`,
			wantErr:   service.ErrNoJSONObject,
			wantParse: true,
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			body:    `{"success": false}`,
			wantErr: errUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := newOCRTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := extractor.Extract(t.Context(), testImage, "image/jpeg")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantParse, service.IsParseError(err))
		})
	}
}

func TestNewOCRServiceExtractor_MissingURL(t *testing.T) {
	_, err := NewOCRServiceExtractor(config.OCRServiceConfig{}, testLogger())
	assert.ErrorIs(t, err, service.ErrProviderNotConfigured)
}
