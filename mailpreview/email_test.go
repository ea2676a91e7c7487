package mailpreview_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/mailpreview"
)

func TestNewEmail(t *testing.T) {
	t.Parallel()

	e := mailpreview.NewEmail("Order",
		mailpreview.WithHeader("From", "shop@example.com"),
		mailpreview.WithHTML("<b>old</b>"),
		mailpreview.WithText("hi"),
		mailpreview.WithPart("text/html", "<b>hi</b>"),
		mailpreview.WithHeader("To", "a@example.com"),
	)

	assert.Equal(t, "Order", e.Title())
	assert.Equal(t, []string{"text/html", "text/plain"}, e.PartTypes())
	assert.Equal(t, []mailpreview.Part{
		{Type: "text/html", Content: "<b>hi</b>"},
		{Type: "text/plain", Content: "hi"},
	}, e.Parts())
	assert.Equal(t, []mailpreview.Header{
		{Name: "From", Value: "shop@example.com"},
		{Name: "To", Value: "a@example.com"},
	}, e.Headers())

	content, ok := e.Part("text/plain")
	assert.True(t, ok)
	assert.Equal(t, "hi", content)

	_, ok = e.Part("text/markdown")
	assert.False(t, ok)
}

func TestEmailIsImmutable(t *testing.T) {
	t.Parallel()

	e := mailpreview.NewEmail("x", mailpreview.WithText("a"), mailpreview.WithHeader("To", "b"))
	parts := e.Parts()
	parts[0].Content = "changed"
	headers := e.Headers()
	headers[0].Value = "changed"

	content, _ := e.Part("text/plain")
	assert.Equal(t, "a", content)
	assert.Equal(t, "b", e.Headers()[0].Value)
}

func TestEmptyEmail(t *testing.T) {
	t.Parallel()

	e := mailpreview.NewEmail("empty")
	assert.Empty(t, e.Parts())
	assert.Empty(t, e.PartTypes())
	assert.Empty(t, e.Headers())
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>Thanks!</p>")
		return err
	})
	html, err := mailpreview.RenderHTML(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "<p>Thanks!</p>", html)

	boom := errors.New("boom")
	_, err = mailpreview.RenderHTML(context.Background(), templ.ComponentFunc(func(context.Context, io.Writer) error {
		return boom
	}))
	assert.ErrorIs(t, err, boom)
}

func TestPreferredPart(t *testing.T) {
	t.Parallel()

	e := mailpreview.NewEmail("Order",
		mailpreview.WithHTML("<b>hi</b>"),
		mailpreview.WithText("hi"),
	)

	tests := []struct {
		name      string
		email     *mailpreview.Email
		requested string
		want      string
		wantOK    bool
	}{
		{name: "no request picks first part", email: e, want: "text/html", wantOK: true},
		{name: "requested part found", email: e, requested: "text/plain", want: "text/plain", wantOK: true},
		{name: "requested part missing falls back to first", email: e, requested: "image/png", want: "text/html", wantOK: true},
		{name: "empty email has none", email: mailpreview.NewEmail("empty"), want: "", wantOK: false},
		{name: "empty email with request has none", email: mailpreview.NewEmail("empty"), requested: "text/html", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := mailpreview.PreferredPart(tt.email, tt.requested)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
