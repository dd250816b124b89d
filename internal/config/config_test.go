package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PLATFORM")
	os.Unsetenv("BUCKET_NAME")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("HANDLER_TIMEOUT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "lambda", cfg.Platform)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.BucketName)
	assert.Equal(t, 30*time.Second, cfg.HandlerTimeout)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoadFromEnvironment(t *testing.T) {
	os.Setenv("PLATFORM", "http")
	os.Setenv("BUCKET_NAME", "my-bucket")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("HTTP_ADDR", ":9090")
	defer func() {
		os.Unsetenv("PLATFORM")
		os.Unsetenv("BUCKET_NAME")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("HTTP_ADDR")
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.Platform)
	assert.Equal(t, "my-bucket", cfg.BucketName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "lambda platform",
			cfg:     Config{Platform: "lambda"},
			wantErr: false,
		},
		{
			name:    "http platform with addr",
			cfg:     Config{Platform: "http", HTTP: HTTPConfig{Addr: ":8080"}},
			wantErr: false,
		},
		{
			name:    "http platform without addr",
			cfg:     Config{Platform: "http"},
			wantErr: true,
		},
		{
			name:    "unknown platform",
			cfg:     Config{Platform: "openfaas"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMissingBucketIsNotAStartupFailure(t *testing.T) {
	os.Unsetenv("BUCKET_NAME")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.BucketName)
}
