package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration copies keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
	}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The default .env file, when present, is loaded once before the first parse.
// Each configuration type is parsed once; later calls return the cached copy.
//
// Example:
//
//	type CLIConfig struct {
//		LogLevel string `env:"FSM_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[typeName]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	return parse(v, typeName)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReload parses the environment again, replacing the cached copy for T.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	return parse(v, getTypeName[T]())
}

// LoadEnv loads the given .env files into the process environment. Files
// loaded later override values from earlier ones; variables already present
// in the environment before the first file keep their value.
// Without paths it loads ".env" from the working directory.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return godotenv.Load()
	}

	if err := godotenv.Load(paths[0]); err != nil {
		return fmt.Errorf("load env file %q: %w", paths[0], err)
	}
	for _, p := range paths[1:] {
		if err := godotenv.Overload(p); err != nil {
			return fmt.Errorf("load env file %q: %w", p, err)
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
}

func parse[T any](v *T, typeName string) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.mu.Lock()
	globalCache.values[typeName] = parsed
	globalCache.mu.Unlock()

	*v = parsed
	return nil
}

func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
