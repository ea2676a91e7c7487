package codegen

import "errors"

var (
	ErrMissingDir     = errors.New("codegen: source directory is required")
	ErrMissingPackage = errors.New("codegen: output package name is required")
	ErrNoPreviews     = errors.New("codegen: no preview types found")
	ErrFormat         = errors.New("codegen: generated source does not format")
	ErrParse          = errors.New("codegen: cannot parse preview source")
)
