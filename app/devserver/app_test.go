package devserver_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/app/devserver"
	"github.com/dmitrymomot/mailpreview/core/server"
	"github.com/dmitrymomot/mailpreview/internal/demo"
	"github.com/dmitrymomot/mailpreview/mailpreview"
)

func testConfig(debug bool) devserver.Config {
	cfg := devserver.Config{
		Server:   server.DefaultConfig(),
		AppName:  "mailpreview-test",
		Env:      "development",
		LogLevel: "debug",
		MailPreview: mailpreview.Config{
			Debug:     debug,
			Dialect:   "php",
			MountPath: mailpreview.DefaultMountPath,
		},
	}
	cfg.Server.Addr = "127.0.0.1:0"
	return cfg
}

func newApp(t *testing.T, debug bool, out io.Writer) *devserver.App {
	t.Helper()

	reg := mailpreview.NewRegistry()
	demo.Register(reg)

	app, err := devserver.NewApp(
		devserver.WithConfig(testConfig(debug)),
		devserver.WithRegistry(reg),
		devserver.WithLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	require.NoError(t, err)
	return app
}

func TestAppServesRawPart(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	app := newApp(t, true, &logs)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mail-preview/OrderMailer/confirmation?part=text/html", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<b>hi</b>", rec.Body.String())
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Empty(t, rec.Header().Get("X-Debug-Elapsed"))
	assert.Contains(t, logs.String(), "/mail-preview/OrderMailer/confirmation")
}

func TestAppEmailPageCarriesDebugHeaders(t *testing.T) {
	t.Parallel()

	app := newApp(t, true, io.Discard)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mail-preview/UserMailer/welcome", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mailer Preview for UserMailer::welcome")
	assert.NotEmpty(t, rec.Header().Get("X-Debug-Elapsed"))
}

func TestAppForbiddenWithoutDebug(t *testing.T) {
	t.Parallel()

	app := newApp(t, false, io.Discard)
	assert.False(t, app.Plugin().Flag().Enabled())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/mail-preview/", nil)
	req.Header.Set("Accept", "application/json")
	app.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden")
}

func TestAppRejectsBadLogLevel(t *testing.T) {
	t.Parallel()

	cfg := testConfig(true)
	cfg.LogLevel = "chatty"

	_, err := devserver.NewApp(devserver.WithConfig(cfg), devserver.WithRegistry(mailpreview.NewRegistry()))
	assert.Error(t, err)
}

func TestAppRejectsNilOptions(t *testing.T) {
	t.Parallel()

	_, err := devserver.NewApp(devserver.WithConfig(testConfig(true)), devserver.WithLogger(nil))
	assert.Error(t, err)

	_, err = devserver.NewApp(devserver.WithConfig(testConfig(true)), devserver.WithRegistry(nil))
	assert.Error(t, err)
}

func TestAppRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	reg := mailpreview.NewRegistry()
	app, err := devserver.NewApp(
		devserver.WithConfig(testConfig(true)),
		devserver.WithRegistry(reg),
		devserver.WithServer(srv),
		devserver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		return srv.Addr() != "127.0.0.1:0"
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr() + "/mail-preview/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestAppHealth(t *testing.T) {
	t.Parallel()

	app := newApp(t, false, io.Discard)

	for target, body := range map[string]string{
		"/health/live":  "ALIVE",
		"/health/ready": "READY",
	} {
		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, body, rec.Body.String(), target)
	}
}

func TestAppNotReadyWithUnknownOverride(t *testing.T) {
	t.Parallel()

	cfg := testConfig(true)
	cfg.MailPreview.ClassNames = []string{"demo.MissingPreview"}

	app, err := devserver.NewApp(
		devserver.WithConfig(cfg),
		devserver.WithRegistry(mailpreview.NewRegistry()),
		devserver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
