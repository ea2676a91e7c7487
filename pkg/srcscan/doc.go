// Package srcscan discovers type declarations in source trees without
// compiling or loading them.
//
// A tolerant lexer skips strings, comments and embedded text, then a single
// pass over the tokens tracks the current namespace and emits every type
// declared after it:
//
//	names := srcscan.Declarations([]byte("<?php namespace App\\Mailer; class OrderMailer {}"), srcscan.PHP)
//	// ["App\\Mailer\\OrderMailer"]
//
// Two dialects are built in. PHP reads namespace and class declarations and
// matches keywords case-insensitively. Go reads the package clause and
// top-level type declarations, including grouped ones.
//
// Scanner applies Declarations to a directory tree:
//
//	s := srcscan.New(srcscan.WithDialect(srcscan.Go), srcscan.WithLogger(log))
//	names, err := s.ScanDir(ctx, "internal/mailer/preview")
//
// Results are best-effort. Unterminated strings or comments end the scan of
// that file and whatever was found before them is returned.
package srcscan
