package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the engine's runtime settings
type Config struct {
	Port            string        `mapstructure:"port"`
	GinMode         string        `mapstructure:"gin_mode"`
	FeeAccount      string        `mapstructure:"fee_account"`
	PlatformFeeBps  uint64        `mapstructure:"platform_fee_bps"`
	MaxRoyaltyBps   uint64        `mapstructure:"max_royalty_bps"`
	OperatorID      string        `mapstructure:"operator_id"`
	ExtendWindowSec int           `mapstructure:"extend_window_seconds"`
}

// ExtendWindow returns the anti-snipe extension window as a duration
func (c *Config) ExtendWindow() time.Duration {
	return time.Duration(c.ExtendWindowSec) * time.Second
}

// Load reads configuration in priority order: defaults, then an optional
// TOML file, then MARKET_-prefixed environment variables. A missing file
// is not an error; the defaults stand.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if _, err := os.Stat(path); err == nil {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix("MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", ":8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("fee_account", "platform-fees")
	v.SetDefault("platform_fee_bps", 250)  // 2.5%
	v.SetDefault("max_royalty_bps", 1000)  // 10% cap on any royalty strategy
	v.SetDefault("operator_id", "marketplace")
	v.SetDefault("extend_window_seconds", 300)
}

func validate(cfg *Config) error {
	if cfg.PlatformFeeBps >= 10000 {
		return fmt.Errorf("platform_fee_bps %d must be below 10000", cfg.PlatformFeeBps)
	}
	if cfg.MaxRoyaltyBps >= 10000 {
		return fmt.Errorf("max_royalty_bps %d must be below 10000", cfg.MaxRoyaltyBps)
	}
	if cfg.FeeAccount == "" {
		return fmt.Errorf("fee_account must not be empty")
	}
	if cfg.OperatorID == "" {
		return fmt.Errorf("operator_id must not be empty")
	}
	if cfg.ExtendWindowSec < 0 {
		return fmt.Errorf("extend_window_seconds must not be negative")
	}
	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	return nil
}
