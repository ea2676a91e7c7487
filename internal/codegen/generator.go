package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/dmitrymomot/mailpreview/pkg/srcscan"
)

// DefaultSuffix selects which scanned types are previews.
const DefaultSuffix = "Preview"

// Options controls Generate.
type Options struct {
	// Dir is the directory of the preview package.
	Dir string
	// ImportPath is the import path of the preview package. Leave it empty
	// when the generated file lives in that package.
	ImportPath string
	// Package is the package clause of the generated file.
	Package string
	// SourcePackage is the package name declared in Dir. Defaults to the
	// last element of ImportPath, or Package when ImportPath is empty.
	SourcePackage string
	// Suffix defaults to DefaultSuffix.
	Suffix string
}

// Entry is one generated registration.
type Entry struct {
	ClassName string
	TypeName  string
}

type fileData struct {
	Package    string
	ImportPath string
	Alias      string
	Qualifier  string
	Entries    []Entry
}

var fileTemplate = template.Must(template.New("register").Parse(`// Code generated by mailpreview gen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/dmitrymomot/mailpreview/mailpreview"
{{- if .ImportPath}}
	{{.Alias}} {{printf "%q" .ImportPath}}
{{- end}}
)

func init() {
{{- range .Entries}}
	mailpreview.Register({{printf "%q" .ClassName}}, func() mailpreview.Preview { return &{{$.Qualifier}}{{.TypeName}}{} })
{{- end}}
}
`))

// Entries scans opts.Dir and returns the preview types to register, in scan
// order and without duplicates. Only struct types declared directly in
// opts.Dir are kept, since the generated code instantiates them as &T{}.
func Entries(ctx context.Context, opts Options, scanOpts ...srcscan.Option) ([]Entry, error) {
	opts = opts.withDefaults()
	if opts.Dir == "" {
		return nil, ErrMissingDir
	}

	s := srcscan.New(append(scanOpts, srcscan.WithDialect(srcscan.Go))...)
	names, err := s.ScanDir(ctx, opts.Dir)
	if err != nil {
		return nil, err
	}

	structs, err := structTypes(opts.Dir)
	if err != nil {
		return nil, err
	}

	prefix := opts.SourcePackage + srcscan.Go.Separator
	seen := make(map[string]struct{}, len(names))
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		typeName, ok := strings.CutPrefix(name, prefix)
		if !ok || !strings.HasSuffix(typeName, opts.Suffix) || !structs[typeName] {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		entries = append(entries, Entry{ClassName: name, TypeName: typeName})
	}
	return entries, nil
}

// structTypes returns the names of the struct types declared in the non-test
// Go files directly inside dir. Aliases are excluded.
func structTypes(dir string) (map[string]bool, error) {
	structs := make(map[string]bool)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return structs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("codegen: read %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	for _, e := range entries {
		if e.IsDir() || !srcscan.Go.Matches(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Assign.IsValid() {
					continue
				}
				if _, isStruct := ts.Type.(*ast.StructType); isStruct {
					structs[ts.Name.Name] = true
				}
			}
		}
	}
	return structs, nil
}

// Generate returns the gofmt'ed registration file for the previews in opts.Dir.
func Generate(ctx context.Context, opts Options, scanOpts ...srcscan.Option) ([]byte, error) {
	opts = opts.withDefaults()
	if opts.Package == "" {
		return nil, ErrMissingPackage
	}

	entries, err := Entries(ctx, opts, scanOpts...)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPreviews, opts.Dir)
	}

	data := fileData{
		Package:    opts.Package,
		ImportPath: opts.ImportPath,
		Entries:    entries,
	}
	if opts.ImportPath != "" {
		data.Alias = opts.SourcePackage
		if data.Alias == "mailpreview" {
			data.Alias = "previews"
		}
		data.Qualifier = data.Alias + "."
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("codegen: execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return src, nil
}

func (o Options) withDefaults() Options {
	if o.Suffix == "" {
		o.Suffix = DefaultSuffix
	}
	if o.SourcePackage == "" {
		if o.ImportPath != "" {
			o.SourcePackage = path.Base(o.ImportPath)
		} else {
			o.SourcePackage = o.Package
		}
	}
	return o
}
