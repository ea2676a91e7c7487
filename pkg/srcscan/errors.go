package srcscan

import "errors"

var (
	ErrUnknownDialect = errors.New("srcscan: unknown dialect")
	ErrNotDirectory   = errors.New("srcscan: not a directory")
)
