package vision

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubefast/config"
	"clubefast/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content []struct {
					Type     string `json:"type"`
					Text     string `json:"text"`
					ImageURL struct {
						URL string `json:"url"`
					} `json:"image_url"`
				} `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		if assert.Len(t, req.Messages, 1) && assert.Len(t, req.Messages[0].Content, 2) {
			assert.Equal(t, invoicePrompt, req.Messages[0].Content[0].Text)
			assert.True(t, strings.HasPrefix(req.Messages[0].Content[1].ImageURL.URL, "data:image/jpeg;base64,"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "chatcmpl-1",
			"choices": []map[string]any{{
				"index":   0,
				"message": map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func TestOpenAIExtractor_Extract(t *testing.T) {
	server := newOpenAITestServer(t, http.StatusOK, `{"numeroPedido":"77","produtos":[{"codigo":"GX00012","quantidade":2,"valorTotal":100}]}`)

	extractor, err := NewOpenAIExtractor(config.LLMProviderConfig{APIKey: "test-key", BaseURL: server.URL}, testLogger())
	require.NoError(t, err)

	invoice, err := extractor.Extract(t.Context(), testImage, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "openai", invoice.Provider)
	assert.Equal(t, ptr("77"), invoice.NumeroPedido)
	require.Len(t, invoice.Produtos, 1)
	assert.Equal(t, "GX00012", invoice.Produtos[0].Code())
}

func TestOpenAIExtractor_ParseFailure(t *testing.T) {
	server := newOpenAITestServer(t, http.StatusOK, "Desculpe, não consigo ler esta imagem.")

	extractor, err := NewOpenAIExtractor(config.LLMProviderConfig{APIKey: "test-key", BaseURL: server.URL}, testLogger())
	require.NoError(t, err)

	_, err = extractor.Extract(t.Context(), testImage, "image/jpeg")
	assert.ErrorIs(t, err, service.ErrNoJSONObject)
}

func TestOpenAIExtractor_ServerError(t *testing.T) {
	server := newOpenAITestServer(t, http.StatusInternalServerError, "")

	extractor, err := NewOpenAIExtractor(config.LLMProviderConfig{APIKey: "test-key", BaseURL: server.URL}, testLogger())
	require.NoError(t, err)

	_, err = extractor.Extract(t.Context(), testImage, "image/jpeg")
	require.Error(t, err)
	assert.False(t, service.IsParseError(err))
}

func TestOpenAIExtractor_EmptyImage(t *testing.T) {
	extractor, err := NewOpenAIExtractor(config.LLMProviderConfig{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"}, testLogger())
	require.NoError(t, err)

	_, err = extractor.Extract(t.Context(), nil, "image/jpeg")
	assert.ErrorIs(t, err, errEmptyImage)
}

func TestNewOpenAIExtractor_MissingKey(t *testing.T) {
	extractor, err := NewOpenAIExtractor(config.LLMProviderConfig{}, testLogger())
	assert.Nil(t, extractor)
	assert.ErrorIs(t, err, service.ErrProviderNotConfigured)
}
