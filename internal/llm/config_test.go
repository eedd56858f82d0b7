package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.Models[TierLite])
	assert.NotEmpty(t, cfg.Models[TierStandard])
}

func TestConfig_GetModel(t *testing.T) {
	cfg := &Config{
		Models: map[ModelTier]string{
			TierLite:     "lite-model",
			TierStandard: "standard-model",
		},
	}

	assert.Equal(t, "lite-model", cfg.GetModel(TierLite))
	assert.Equal(t, "standard-model", cfg.GetModel(TierStandard))
}

func TestConfig_GetModel_Fallback(t *testing.T) {
	onlyStandard := &Config{Models: map[ModelTier]string{TierStandard: "standard-model"}}
	assert.Equal(t, "standard-model", onlyStandard.GetModel(TierLite))

	onlyLite := &Config{Models: map[ModelTier]string{TierLite: "lite-model"}}
	assert.Equal(t, "lite-model", onlyLite.GetModel(TierStandard))

	empty := &Config{Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}
