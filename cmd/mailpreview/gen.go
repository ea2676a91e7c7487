package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailpreview/core/logger"
	"github.com/dmitrymomot/mailpreview/internal/codegen"
	"github.com/dmitrymomot/mailpreview/pkg/srcscan"
)

func newGenCmd(root *rootOptions) *cobra.Command {
	var (
		opts codegen.Options
		out  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate registration code for Go previews",
		Long: `Gen scans a Go package and writes a file that registers every type whose
name ends in the suffix with mailpreview.Register. The class names match
what "scan --dialect go" reports, so MAIL_PREVIEW_PATH discovery finds them.
Only struct types declared directly in --dir are registered; each is
instantiated as &T{}, so T or *T must implement mailpreview.Preview.

Examples:
  mailpreview gen --dir internal/mailer/preview --package preview --out register_gen.go
  mailpreview gen --dir internal/mailer/preview --import example.com/app/internal/mailer/preview --package main`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.cliLogger(cmd)
			if err != nil {
				return err
			}

			src, err := codegen.Generate(cmd.Context(), opts, srcscan.WithLogger(log))
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return err
			}
			log.InfoContext(cmd.Context(), "generated preview registrations", logger.File(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "directory of the preview package")
	cmd.Flags().StringVar(&opts.ImportPath, "import", "", "import path of the preview package (empty when generating into it)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of the generated file")
	cmd.Flags().StringVar(&opts.SourcePackage, "source-package", "", "package name declared in --dir (default: last element of --import)")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", codegen.DefaultSuffix, "type name suffix that marks a preview")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("package")
	return cmd
}
