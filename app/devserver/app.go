package devserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mailpreview/core/config"
	"github.com/dmitrymomot/mailpreview/core/debug"
	"github.com/dmitrymomot/mailpreview/core/health"
	"github.com/dmitrymomot/mailpreview/core/logger"
	"github.com/dmitrymomot/mailpreview/core/response"
	"github.com/dmitrymomot/mailpreview/core/router"
	"github.com/dmitrymomot/mailpreview/core/server"
	"github.com/dmitrymomot/mailpreview/mailpreview"
	"github.com/dmitrymomot/mailpreview/middleware"
)

type App struct {
	config   Config
	loaded   bool
	router   router.Router[*router.Context]
	server   *server.Server
	registry *mailpreview.Registry
	plugin   *mailpreview.Plugin
	logger   *slog.Logger
}

type AppOption func(*App) error

func NewApp(opts ...AppOption) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.loaded {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		l, err := newLogger(app.config)
		if err != nil {
			return nil, err
		}
		app.logger = l
	}

	if app.registry == nil {
		app.registry = mailpreview.DefaultRegistry
	}

	if app.plugin == nil {
		p, err := mailpreview.NewFromConfig(app.config.MailPreview,
			mailpreview.WithRegistry(app.registry),
			mailpreview.WithLogger(app.logger),
		)
		if err != nil {
			return nil, err
		}
		app.plugin = p
	}

	if app.router == nil {
		app.router = router.New[*router.Context](
			router.WithErrorHandler[*router.Context](response.NegotiatedErrorHandler[*router.Context]),
			router.WithLogger[*router.Context](app.logger),
		)
	}
	app.router.Use(
		middleware.RequestID[*router.Context](),
		middleware.LoggingWithLogger[*router.Context](app.logger),
		debug.Middleware[*router.Context](app.plugin.Flag()),
		middleware.DebugHeaders[*router.Context](),
	)
	app.router.Get("/health/live", health.Liveness[*router.Context])
	app.router.Get("/health/ready", health.Readiness[*router.Context](app.logger, app.previewsReady))
	mailpreview.Routes(app.router, app.plugin)

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

func newLogger(cfg Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	env := logger.WithDevelopment(cfg.AppName)
	if cfg.IsProduction() {
		env = logger.WithProduction(cfg.AppName)
	}
	return logger.New(
		env,
		logger.WithLevel(level),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	), nil
}

// previewsReady fails when the configured previews cannot be listed, for
// example an override naming an unregistered class.
func (app *App) previewsReady(ctx context.Context) error {
	_, err := app.plugin.Previews(ctx)
	return err
}

// Handler returns the root HTTP handler.
func (app *App) Handler() http.Handler {
	return app.router
}

// Plugin returns the mounted mail preview plugin.
func (app *App) Plugin() *mailpreview.Plugin {
	return app.plugin
}

// Logger returns the application logger.
func (app *App) Logger() *slog.Logger {
	return app.logger
}

// Run serves until ctx is canceled and then shuts the server down.
func (app *App) Run(ctx context.Context) error {
	app.logger.InfoContext(ctx, "mail preview available",
		logger.Component("app"),
		slog.String("url", "http://"+app.config.Server.Addr+app.plugin.MountPath()+"/"),
		slog.Bool("debug", app.plugin.Flag().Enabled()),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.server.Run(ctx, app.router))
	return g.Wait()
}

// WithConfig uses cfg instead of loading the configuration from the environment.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		app.loaded = true
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithRouter(router router.Router[*router.Context]) AppOption {
	return func(app *App) error {
		if router == nil {
			return errors.New("router cannot be nil")
		}
		app.router = router
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

func WithRegistry(registry *mailpreview.Registry) AppOption {
	return func(app *App) error {
		if registry == nil {
			return errors.New("registry cannot be nil")
		}
		app.registry = registry
		return nil
	}
}
