package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ContextPath string
}

// Env holds process-level settings read once at startup, outside the
// application.yml property tree.
var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ContextPath: getStringOrDefault("CONTEXT_PATH", ""),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
