package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PREPSCORE"

var v = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", "PORT")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("metrics", true)
	v.SetDefault("max_body_bytes", DefaultMaxBodyBytes)
	return v
}

// Load reads .env from the current directory and sets env vars.
// Safe to call multiple times; existing env vars are not overwritten.
func Load() error {
	return godotenv.Load()
}

// Addr returns the listen address. PREPSCORE_ADDR wins over PORT; defaults to :8080.
func Addr() string {
	if addr := strings.TrimSpace(v.GetString("addr")); addr != "" {
		return addr
	}
	if port := strings.TrimSpace(v.GetString("port")); port != "" {
		if strings.HasPrefix(port, ":") {
			return port
		}
		return ":" + port
	}
	return ":8080"
}

// LogLevel returns one of debug, info, warn or error.
func LogLevel() string {
	return strings.ToLower(v.GetString("log_level"))
}

// LogFormat returns json or console.
func LogFormat() string {
	return strings.ToLower(v.GetString("log_format"))
}

// MaxBodyBytes returns the evaluate request body limit.
// Unset, invalid or non-positive values fall back to DefaultMaxBodyBytes.
func MaxBodyBytes() int64 {
	if n := v.GetInt64("max_body_bytes"); n > 0 {
		return n
	}
	return DefaultMaxBodyBytes
}

// MetricsEnabled reports whether GET /metrics is served.
func MetricsEnabled() bool {
	return v.GetBool("metrics")
}
