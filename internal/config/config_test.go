package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Test defaults when no file and no environment are present
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Port)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "platform-fees", cfg.FeeAccount)
	require.Equal(t, uint64(250), cfg.PlatformFeeBps)
	require.Equal(t, uint64(1000), cfg.MaxRoyaltyBps)
	require.Equal(t, "marketplace", cfg.OperatorID)
	require.Equal(t, 5*time.Minute, cfg.ExtendWindow())
}

// Test that a config file overrides defaults
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.toml")
	content := `
port = ":9090"
platform_fee_bps = 100
operator_id = "engine-1"
extend_window_seconds = 60
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Port)
	require.Equal(t, uint64(100), cfg.PlatformFeeBps)
	require.Equal(t, "engine-1", cfg.OperatorID)
	require.Equal(t, time.Minute, cfg.ExtendWindow())
	// untouched keys keep their defaults
	require.Equal(t, "platform-fees", cfg.FeeAccount)
}

// A missing file is not an error; the defaults stand
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Port)
}

// Test environment variable overrides
func TestLoad_Environment(t *testing.T) {
	t.Setenv("MARKET_PORT", "7070")
	t.Setenv("MARKET_FEE_ACCOUNT", "treasury")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.Port) // prefix normalization applied
	require.Equal(t, "treasury", cfg.FeeAccount)
}

// Test validation failures
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "fee_bps_too_high", key: "MARKET_PLATFORM_FEE_BPS", value: "10000"},
		{name: "royalty_cap_too_high", key: "MARKET_MAX_ROYALTY_BPS", value: "12000"},
		{name: "negative_extend_window", key: "MARKET_EXTEND_WINDOW_SECONDS", value: "-5"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load("")
			require.Error(t, err)
		})
	}

	t.Run("empty_fee_account_in_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "market.toml")
		require.NoError(t, os.WriteFile(path, []byte(`fee_account = ""`), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})
}
