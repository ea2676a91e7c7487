package mailpreview

import (
	"strings"

	"github.com/dmitrymomot/mailpreview/pkg/srcscan"
)

// Config holds the plugin settings loaded from the environment.
type Config struct {
	Debug      bool     `env:"DEBUG" envDefault:"false"`
	ClassNames []string `env:"MAIL_PREVIEW_CLASS_NAMES" envSeparator:","`
	Path       string   `env:"MAIL_PREVIEW_PATH"`
	Dialect    string   `env:"MAIL_PREVIEW_DIALECT" envDefault:"php"`
	MountPath  string   `env:"MAIL_PREVIEW_MOUNT_PATH" envDefault:"/mail-preview"`
}

// classNames returns the override list without blanks.
func (c Config) classNames() []string {
	names := make([]string, 0, len(c.ClassNames))
	for _, n := range c.ClassNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// source translates c into the preview selection.
func (c Config) source(opts ...srcscan.Option) (Source, error) {
	src := Source{ClassNames: c.classNames()}
	if c.Path != "" {
		d, err := srcscan.ParseDialect(c.Dialect)
		if err != nil {
			return Source{}, err
		}
		opts = append([]srcscan.Option{srcscan.WithDialect(d)}, opts...)
		src.Dir, src.Scanner = c.Path, srcscan.New(opts...)
	}
	return src, nil
}
