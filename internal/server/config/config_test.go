package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, ":8000", cfg.HTTPAddr)
	require.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	require.Equal(t, "*", cfg.CORSOrigin)
	require.Empty(t, cfg.SecretKey, "the secret key must have no default")
}

func TestValidate_RequiresSecret(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Error(t, cfg.Validate())

	cfg.SecretKey = "s3cret"
	require.NoError(t, cfg.Validate())
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "15")
	t.Setenv("SAGEMAKER_ENDPOINT_NAME", "snippet-scorer")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, ":9999", cfg.HTTPAddr)
	require.Equal(t, "env-secret", cfg.SecretKey)
	require.Equal(t, 15*time.Minute, cfg.TokenValidityDuration)
	require.Equal(t, "snippet-scorer", cfg.SageMakerEndpointName)
}

func TestParseEnv_IgnoresInvalidTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL_MINUTES", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
}

func TestParseJson_Overlays(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{"http_addr": ":7777", "secret_key": "json-secret", "token_validity_minutes": 45}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	oldArgs := os.Args
	os.Args = []string{"server", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, ":7777", cfg.HTTPAddr)
	require.Equal(t, "json-secret", cfg.SecretKey)
	require.Equal(t, 45*time.Minute, cfg.TokenValidityDuration)
	// untouched fields keep their defaults
	require.Equal(t, "*", cfg.CORSOrigin)
}

func TestParseFlags_Overlays(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server", "-a", ":8081", "-s", "flag-secret", "-t", "5"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, ":8081", cfg.HTTPAddr)
	require.Equal(t, "flag-secret", cfg.SecretKey)
	require.Equal(t, 5*time.Minute, cfg.TokenValidityDuration)
}
