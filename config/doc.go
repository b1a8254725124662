// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package loads .env files on first use and parses environment
// variables into struct fields via the caarlos0/env library:
//
//	type TemplatesConfig struct {
//		Dir    string `env:"TEMPLATES_DIR" envDefault:"templates"`
//		Reload bool   `env:"TEMPLATES_RELOAD" envDefault:"false"`
//	}
//
//	var cfg TemplatesConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure, useful at startup:
//	config.MustLoad(&cfg)
package config
