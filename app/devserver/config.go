package devserver

import (
	"github.com/dmitrymomot/mailpreview/core/server"
	"github.com/dmitrymomot/mailpreview/mailpreview"
)

type Config struct {
	Server      server.Config
	MailPreview mailpreview.Config

	AppName  string `env:"APP_NAME" envDefault:"mailpreview"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// IsProduction reports whether APP_ENV selects production logging.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
