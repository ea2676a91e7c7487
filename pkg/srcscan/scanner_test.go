package srcscan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/srcscan"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanDir(t *testing.T) {
	t.Parallel()

	t.Run("symlinked directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "previews/a.php", "<?php namespace App; class A {}")
		link := filepath.Join(dir, "link")
		require.NoError(t, os.Symlink(filepath.Join(dir, "previews"), link))

		direct, err := srcscan.New().ScanDir(context.Background(), filepath.Join(dir, "previews"))
		require.NoError(t, err)
		viaLink, err := srcscan.New().ScanDir(context.Background(), link)
		require.NoError(t, err)

		assert.Equal(t, []string{`App\A`}, direct)
		assert.Equal(t, direct, viaLink)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		names, err := srcscan.New().ScanDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("no matching files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "README.md", "class Nope {}")
		writeFile(t, dir, "view.phtml", "<?php class Nope {}")

		names, err := srcscan.New().ScanDir(context.Background(), dir)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("recursive lexical order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "z.php", "<?php namespace App; class ZMailerPreview {}")
		writeFile(t, dir, "a.php", "<?php namespace App; class AMailerPreview {} class AOtherPreview {}")
		writeFile(t, dir, "sub/m.php", "<?php namespace App\\Sub; class MMailerPreview {}")

		names, err := srcscan.New().ScanDir(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			`App\AMailerPreview`,
			`App\AOtherPreview`,
			`App\Sub\MMailerPreview`,
			`App\ZMailerPreview`,
		}, names)
	})

	t.Run("go dialect skips tests and other languages", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "order.go", "package preview\n\ntype OrderMailerPreview struct{}\n")
		writeFile(t, dir, "order_test.go", "package preview\n\ntype fakePreview struct{}\n")
		writeFile(t, dir, "legacy.php", "<?php class Legacy {}")

		names, err := srcscan.New(srcscan.WithDialect(srcscan.Go)).ScanDir(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"preview.OrderMailerPreview"}, names)
	})

	t.Run("unreadable file is skipped", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "ok.php", "<?php class Ok {}")
		require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "broken.php")))

		names, err := srcscan.New().ScanDir(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{`\Ok`}, names)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "a.php", "<?php class A {}")

		_, err := srcscan.New().ScanDir(context.Background(), filepath.Join(dir, "a.php"))
		assert.ErrorIs(t, err, srcscan.ErrNotDirectory)
	})

	t.Run("canceled context stops the walk", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "a.php", "<?php class A {}")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := srcscan.New().ScanDir(ctx, dir)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestScanFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "p.php", "<?php namespace Foo\\Bar; class A {} class B {}")

	s := srcscan.New()
	names, err := s.ScanFile(filepath.Join(dir, "p.php"))
	require.NoError(t, err)
	assert.Equal(t, []string{`Foo\Bar\A`, `Foo\Bar\B`}, names)

	_, err = s.ScanFile(filepath.Join(dir, "missing.php"))
	assert.Error(t, err)
	assert.Equal(t, "php", s.Dialect().Name)
}
