// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached for the lifetime of the process.
//
//	type Config struct {
//		Definition string `env:"FSM_DEFINITION,required"`
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The first Load reads .env from the working directory if it exists. Call
// LoadEnv beforehand to read other files. Values already present in the
// process environment take precedence over file values.
//
// Reload bypasses the cache for one type and ResetCache clears it, which is
// mostly useful in tests.
package config
