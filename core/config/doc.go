// Package config loads environment variables into typed structs with
// caarlos0/env. A .env file in the working directory is read once, before
// the first load, and never overrides variables that are already set.
//
//	type Config struct {
//		Server      server.Config
//		MailPreview mailpreview.Config
//		LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each struct type is parsed once and cached; later calls with the same type
// copy the cached value. Reset clears the cache, which tests use together
// with t.Setenv.
package config
