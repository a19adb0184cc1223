package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"vision": map[string]any{
			"defaultProvider": "gemini",
			"ocrService": map[string]any{
				"baseUrl": "",
			},
			"gemini": map[string]any{
				"apiKey": "",
			},
		},
		"auth": map[string]any{
			"adminEmails": []any{},
		},
		"storage": map[string]any{
			"bucketUrl": "mem://",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "VISION_GEMINI_APIKEY", want: "vision.gemini.apiKey"},
		{envKey: "VISION_OCRSERVICE_BASEURL", want: "vision.ocrService.baseUrl"},
		{envKey: "VISION_DEFAULTPROVIDER", want: "vision.defaultProvider"},
		{envKey: "AUTH_ADMINEMAILS", want: "auth.adminEmails"},
		{envKey: "STORAGE__BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "VISION_OPENAI_APIKEY", want: "vision.openai.apikey"},
		{envKey: "REWARDS_PROGRAM_NAME", want: "rewards.program.name"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
