package vision

import (
	"testing"

	"clubefast/config"
	"clubefast/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVisionConfig() *config.VisionConfig {
	return &config.VisionConfig{
		DefaultProvider: "OpenAI",
		OpenAI:          config.LLMProviderConfig{APIKey: "sk-test", BaseURL: "http://127.0.0.1:1"},
		OCRService:      config.OCRServiceConfig{BaseURL: "http://127.0.0.1:2"},
		Retry:           config.RetryConfig{MaxAttempts: 3, Providers: []string{"ocrservice"}},
	}
}

func TestBuild_Providers(t *testing.T) {
	registry, err := Build(t.Context(), testVisionConfig(), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = registry.Close() })

	assert.Equal(t, []service.ProviderStatus{
		{Name: "gemini"},
		{Name: "openai", Configured: true, Default: true},
		{Name: "anthropic"},
		{Name: "ocrservice", Configured: true, Retried: true},
		{Name: "tesseract"},
	}, registry.Providers())
}

func TestRegistry_Select(t *testing.T) {
	registry, err := Build(t.Context(), testVisionConfig(), testLogger())
	require.NoError(t, err)

	tests := []struct {
		name     string
		provider string
		wantName string
		wantErr  error
	}{
		{name: "default", provider: "", wantName: "openai"},
		{name: "explicit", provider: "openai", wantName: "openai"},
		{name: "case insensitive", provider: " OCRService ", wantName: "ocrservice"},
		{name: "missing key", provider: "anthropic", wantErr: service.ErrProviderNotConfigured},
		{name: "unknown", provider: "tesseract-v9", wantErr: service.ErrProviderNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, err := registry.Select(tt.provider)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, extractor)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, extractor.Name())
		})
	}
}

func TestRegistry_RetriedProviderKeepsHealth(t *testing.T) {
	registry, err := Build(t.Context(), testVisionConfig(), testLogger())
	require.NoError(t, err)

	extractor, err := registry.Select("ocrservice")
	require.NoError(t, err)

	_, isRetry := extractor.(*retryHealthExtractor)
	assert.True(t, isRetry)
	_, ok := extractor.(service.HealthChecker)
	assert.True(t, ok)
}

func TestBuild_NoConfig(t *testing.T) {
	registry, err := Build(t.Context(), nil, testLogger())
	require.NoError(t, err)

	for _, status := range registry.Providers() {
		assert.False(t, status.Configured, status.Name)
	}
	_, err = registry.Select("")
	assert.ErrorIs(t, err, service.ErrProviderNotConfigured)
}

func TestBuild_UnknownDefault(t *testing.T) {
	cfg := testVisionConfig()
	cfg.DefaultProvider = "watson"

	_, err := Build(t.Context(), cfg, testLogger())
	assert.Error(t, err)
}
