// Package codegen writes the registration file for a package of Go mail
// previews.
//
// It scans the package with the Go dialect of srcscan, keeps the types whose
// names end in the configured suffix and emits one mailpreview.Register call
// per type, keyed by the same qualified name the runtime scanner reports:
//
//	src, err := codegen.Generate(ctx, codegen.Options{
//		Dir:        "internal/mailer/preview",
//		ImportPath: "example.com/app/internal/mailer/preview",
//		Package:    "main",
//	})
//
// Generated types are instantiated as &T{}, so only struct types declared
// directly in the directory are registered; T or *T must implement
// mailpreview.Preview. Func, map, interface and alias types are skipped.
package codegen
