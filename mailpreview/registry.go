package mailpreview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/mailpreview/core/logger"
	"github.com/dmitrymomot/mailpreview/pkg/srcscan"
)

// Registry maps class names to preview factories and decides which previews
// a request sees. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	factories map[string]Factory

	classNames []string
	dir        string
	scanner    *srcscan.Scanner
	logger     *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClassNames sets the override list. See Registry.SetClassNames.
func WithClassNames(names ...string) RegistryOption {
	return func(r *Registry) { r.classNames = slices.Clone(names) }
}

// WithDiscovery scans dir with s to select and order previews. A nil scanner
// uses the PHP dialect.
func WithDiscovery(dir string, s *srcscan.Scanner) RegistryOption {
	return func(r *Registry) {
		if s == nil {
			s = srcscan.New()
		}
		r.dir, r.scanner = dir, s
	}
}

// WithRegistryLogger sets the logger. A nil logger is ignored.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	r.Configure(opts...)
	return r
}

// Configure applies opts to an existing registry.
func (r *Registry) Configure(opts ...RegistryOption) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, opt := range opts {
		opt(r)
	}
}

// DefaultRegistry receives registrations made with the package-level Register.
var DefaultRegistry = NewRegistry()

// Register adds a factory to DefaultRegistry.
func Register(className string, f Factory) {
	DefaultRegistry.Register(className, f)
}

// Register adds a factory under className. It panics on an empty name, a nil
// factory or a duplicate name; registration happens at init time.
func (r *Registry) Register(className string, f Factory) {
	if className == "" {
		panic("mailpreview: Register with empty class name")
	}
	if f == nil {
		panic("mailpreview: Register " + className + " with nil factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[className]; dup {
		panic("mailpreview: Register called twice for " + className)
	}
	r.factories[className] = f
	r.order = append(r.order, className)
}

// ClassNames returns the registered class names in registration order.
func (r *Registry) ClassNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// SetClassNames replaces the override list. A non-empty list is used verbatim
// by List and disables discovery.
func (r *Registry) SetClassNames(names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classNames = slices.Clone(names)
}

// New constructs the preview registered under className.
func (r *Registry) New(className string) (Preview, error) {
	r.mu.RLock()
	f, ok := r.factories[className]
	r.mu.RUnlock()
	if !ok {
		return nil, unregistered(className)
	}
	return f(), nil
}

// Source selects which registered previews are listed. A non-empty
// ClassNames wins over Dir; with neither, every registration is listed.
type Source struct {
	ClassNames []string
	Dir        string
	Scanner    *srcscan.Scanner
}

// List returns a fresh preview per class name, selected by the registry's own
// override list and discovery settings. Nothing is cached between calls.
func (r *Registry) List(ctx context.Context) ([]Preview, error) {
	r.mu.RLock()
	src := Source{ClassNames: slices.Clone(r.classNames), Dir: r.dir, Scanner: r.scanner}
	r.mu.RUnlock()
	return r.ListFrom(ctx, src)
}

// ListFrom is like List but takes the selection from src, leaving the
// registry settings untouched. The class names come from the override list
// when set, else from scanning the discovery directory, else from every
// registration in order.
func (r *Registry) ListFrom(ctx context.Context, src Source) ([]Preview, error) {
	override, dir, scanner := src.ClassNames, src.Dir, src.Scanner
	if dir != "" && scanner == nil {
		scanner = srcscan.New()
	}

	switch {
	case len(override) > 0:
		previews := make([]Preview, 0, len(override))
		for _, name := range override {
			p, err := r.New(name)
			if err != nil {
				return nil, err
			}
			previews = append(previews, p)
		}
		return previews, nil

	case dir != "":
		names, err := scanner.ScanDir(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("mailpreview: discover previews: %w", err)
		}
		previews := make([]Preview, 0, len(names))
		for _, name := range names {
			p, err := r.New(name)
			if err != nil {
				r.logger.DebugContext(ctx, "skipping unregistered preview class",
					logger.Component("mailpreview"), logger.Preview(name))
				continue
			}
			previews = append(previews, p)
		}
		return previews, nil

	default:
		names := r.ClassNames()
		previews := make([]Preview, 0, len(names))
		for _, name := range names {
			p, err := r.New(name)
			if err != nil {
				return nil, err
			}
			previews = append(previews, p)
		}
		return previews, nil
	}
}
