package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/phrazzld/devai/internal/ciutil"
)

// EnvPrefix is prepended to every configuration key read from the environment,
// e.g. llm.model_name is read from DEVAI_LLM_MODEL_NAME.
const EnvPrefix = "DEVAI"

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an optional YAML file merged under the environment.
	ConfigFile string

	// LogLevel overrides log.level when non-empty (e.g. from a CLI flag).
	LogLevel string
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.user_agent", DefaultUserAgent)
	v.SetDefault("llm.backend", DefaultBackend)
	v.SetDefault("llm.location", DefaultLocation)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", defaultLogFormat())
	v.SetDefault("project.id", "")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The project id keeps the unprefixed name the rest of the tooling uses.
	if err := v.BindEnv("project.id", ProjectIDEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", ProjectIDEnv, err)
	}

	if opts.LogLevel != "" {
		v.Set("log.level", opts.LogLevel)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.LLM.Backend = strings.ToLower(cfg.LLM.Backend)

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("config validation failed: %s", describe(verrs))
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// defaultLogFormat is JSON inside CI pipelines and text everywhere else.
func defaultLogFormat() string {
	if ciutil.IsCI() {
		return CILogFormat
	}
	return DefaultLogFormat
}

// describe renders validation errors without echoing field values,
// since some of them (the API key) are secrets.
func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
