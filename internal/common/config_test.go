package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database:   DatabaseConfig{DSN: "postgres://localhost/procurement"},
		Server:     ServerConfig{GRPCAddr: ":8080"},
		LLM:        LLMConfig{APIKey: "sk-test"},
		Extraction: ExtractionConfig{DefaultCurrency: "USD"},
	}
}

func TestConfigValidatePasses(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfigValidateMissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.DSN = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestConfigValidateBadDefaultCurrency(t *testing.T) {
	cfg := validConfig()
	cfg.Extraction.DefaultCurrency = "euros"
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "DEFAULT_CURRENCY")
}
