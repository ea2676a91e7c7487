package mailpreview

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/mailpreview/core/debug"
	"github.com/dmitrymomot/mailpreview/pkg/srcscan"
)

// DefaultMountPath is where Routes mounts the plugin unless configured otherwise.
const DefaultMountPath = "/mail-preview"

// Plugin bundles what the preview endpoints need.
type Plugin struct {
	registry  *Registry
	flag      *debug.Flag
	mountPath string
	logger    *slog.Logger
	source    *Source
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithRegistry sets the registry (default: DefaultRegistry).
func WithRegistry(r *Registry) Option {
	return func(p *Plugin) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithFlag sets the debug flag (default: disabled).
func WithFlag(f *debug.Flag) Option {
	return func(p *Plugin) {
		if f != nil {
			p.flag = f
		}
	}
}

// WithMountPath sets the URL prefix.
func WithMountPath(path string) Option {
	return func(p *Plugin) { p.mountPath = path }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Plugin.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		registry:  DefaultRegistry,
		flag:      &debug.Flag{},
		mountPath: DefaultMountPath,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.mountPath = normalizeMount(p.mountPath)
	return p
}

// NewFromConfig creates a Plugin from cfg: it sets the debug flag and keeps
// the override list and discovery settings on the plugin. The registry itself
// is not modified, so plugins built from different configs can share it.
// Settings from cfg win over opts.
func NewFromConfig(cfg Config, opts ...Option) (*Plugin, error) {
	p := New(append(opts, WithMountPath(cfg.MountPath))...)
	p.flag.Set(cfg.Debug)

	src, err := cfg.source(srcscan.WithLogger(p.logger))
	if err != nil {
		return nil, err
	}
	p.source = &src
	return p, nil
}

// Previews lists the previews this plugin serves. Plugins built with
// NewFromConfig use their own selection; others defer to Registry.List.
func (p *Plugin) Previews(ctx context.Context) ([]Preview, error) {
	if p.source == nil {
		return p.registry.List(ctx)
	}
	return p.registry.ListFrom(ctx, *p.source)
}

// Registry returns the plugin's registry.
func (p *Plugin) Registry() *Registry {
	return p.registry
}

// Flag returns the process-wide debug flag.
func (p *Plugin) Flag() *debug.Flag {
	return p.flag
}

// MountPath returns the URL prefix the plugin is served under.
func (p *Plugin) MountPath() string {
	return p.mountPath
}

func normalizeMount(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return DefaultMountPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(path, "/")
}
