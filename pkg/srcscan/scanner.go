package srcscan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/mailpreview/core/logger"
)

// Scanner walks directory trees and extracts type declarations from the
// files that belong to its dialect.
type Scanner struct {
	dialect Dialect
	logger  *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDialect sets the source dialect (default: PHP).
func WithDialect(d Dialect) Option {
	return func(s *Scanner) { s.dialect = d }
}

// WithLogger sets the logger used for skipped files. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		dialect: PHP,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dialect returns the scanner's dialect.
func (s *Scanner) Dialect() Dialect {
	return s.dialect
}

// ScanDir returns the declarations of every matching file under dir, walking
// files in lexical order. A missing dir yields an empty result. Unreadable
// files and subdirectories are logged and skipped.
func (s *Scanner) ScanDir(ctx context.Context, dir string) ([]string, error) {
	names := []string{}

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return names, nil
	case err != nil:
		return nil, fmt.Errorf("srcscan: stat %s: %w", dir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	// WalkDir does not descend into a symlinked root.
	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("srcscan: resolve %s: %w", dir, err)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			s.logger.WarnContext(ctx, "skipping unreadable path",
				logger.Component("srcscan"), logger.File(path), logger.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !s.dialect.Matches(d.Name()) {
			return nil
		}

		decls, err := s.ScanFile(path)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unreadable file",
				logger.Component("srcscan"), logger.File(path), logger.Error(err))
			return nil
		}
		names = append(names, decls...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("srcscan: walk %s: %w", dir, err)
	}

	s.logger.DebugContext(ctx, "scanned directory",
		logger.Component("srcscan"), logger.File(dir), logger.Count("declarations", len(names)))
	return names, nil
}

// ScanFile returns the declarations in a single file.
func (s *Scanner) ScanFile(path string) ([]string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Declarations(src, s.dialect), nil
}
