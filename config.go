package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "STATCALC"
	dotEnvFile = ".env"

	keyFormat   = "format"
	keyExtended = "extended"
	keyVerbose  = "verbose"
)

// Config controls how the compiled-in datasets are reported.
type Config struct {
	Format   string `mapstructure:"format"`
	Extended bool   `mapstructure:"extended"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Validate rejects settings no renderer can honor.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
}

// loadDotEnv populates the process environment from a local .env file.
// A missing file is not an error.
func loadDotEnv() {
	_ = godotenv.Load(dotEnvFile)
}

// loadConfig resolves settings with flag > STATCALC_* env > default precedence.
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(keyFormat, FormatText)
	v.SetDefault(keyExtended, false)
	v.SetDefault(keyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
