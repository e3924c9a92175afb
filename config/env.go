package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the prefix of every environment variable read by ReadEnv.
const EnvPrefix = "CORSIKASUB_"

// ReadEnv overrides conf with CORSIKASUB_* environment variables which are set.
func ReadEnv(conf *Config) error {
	if err := env.ParseWithOptions(conf, env.Options{Prefix: EnvPrefix}); err != nil {
		return ConfigurationError("parse env: %v", err)
	}
	return nil
}
