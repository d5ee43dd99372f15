package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sehat-ai/backend/internal/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		AppPort:                4000,
		OpenAIAPIKey:           "test-key",
		DefaultModel:           "gpt-4o",
		ClassifierModel:        "gpt-4o-mini",
		JWTSecret:              "test-secret",
		LogLevel:               "DEBUG",
		CORSOrigins:            "*",
		UpstreamTimeoutSeconds: 30,
	}

	application, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, application)

	require.NotNil(t, application.Server)
	assert.Equal(t, ":4000", application.Server.Addr)
	// Streaming responses must not be cut off by a server-side write deadline.
	assert.Zero(t, application.Server.WriteTimeout)
}

func TestNewRequiresJWTSecret(t *testing.T) {
	cfg := &config.Config{
		AppPort:      4000,
		DefaultModel: "gpt-4o",
	}

	application, err := New(cfg)
	assert.Error(t, err)
	assert.Nil(t, application)
}
