// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment;
//     later files override earlier ones.
//   - Load parses the environment into any struct annotated with `env` tags,
//     after loading the default `.env` file once if it exists.
//   - Each configuration type is parsed once and cached; ForceReload and
//     ResetCache refresh the cache, which is mostly useful in tests.
//
// # Usage
//
//	type CLIConfig struct {
//	    LogLevel  string `env:"FSM_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"FSM_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
//   - ErrParsingConfig – env vars could not be parsed; joined with the parser error.
//   - ErrNilPointer – nil pointer passed to Load, MustLoad or ForceReload.
package config
