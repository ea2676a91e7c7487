package mailpreview_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/mailpreview"
)

func TestNewFromConfigKeepsSelectionPerPlugin(t *testing.T) {
	t.Parallel()

	reg := mailpreview.NewRegistry()
	reg.Register(`App\OrderMailerPreview`, func() mailpreview.Preview { return mailpreview.NewMailer("Order") })
	reg.Register(`App\UserMailerPreview`, func() mailpreview.Preview { return mailpreview.NewMailer("User") })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.php"),
		[]byte(`<?php namespace App; class UserMailerPreview {}`), 0o644))

	overridden, err := mailpreview.NewFromConfig(mailpreview.Config{
		Debug:      true,
		ClassNames: []string{` App\OrderMailerPreview `},
	}, mailpreview.WithRegistry(reg))
	require.NoError(t, err)

	discovered, err := mailpreview.NewFromConfig(mailpreview.Config{
		Debug:   true,
		Path:    dir,
		Dialect: "php",
	}, mailpreview.WithRegistry(reg))
	require.NoError(t, err)

	ctx := context.Background()

	previews, err := overridden.Previews(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Order"}, names(previews))

	previews, err = discovered.Previews(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, names(previews))

	previews, err = reg.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Order", "User"}, names(previews))
}

func TestNewFromConfigRejectsUnknownDialect(t *testing.T) {
	t.Parallel()

	_, err := mailpreview.NewFromConfig(mailpreview.Config{Path: t.TempDir(), Dialect: "ruby"},
		mailpreview.WithRegistry(mailpreview.NewRegistry()))
	assert.Error(t, err)
}

func TestPluginWithoutConfigUsesRegistrySettings(t *testing.T) {
	t.Parallel()

	reg := mailpreview.NewRegistry(mailpreview.WithClassNames(`App\UserMailerPreview`))
	reg.Register(`App\OrderMailerPreview`, func() mailpreview.Preview { return mailpreview.NewMailer("Order") })
	reg.Register(`App\UserMailerPreview`, func() mailpreview.Preview { return mailpreview.NewMailer("User") })

	previews, err := mailpreview.New(mailpreview.WithRegistry(reg)).Previews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, names(previews))
}
