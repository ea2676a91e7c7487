package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mailpreview/pkg/srcscan"
)

type scanResult struct {
	Dir     string   `json:"dir" yaml:"dir"`
	Dialect string   `json:"dialect" yaml:"dialect"`
	Classes []string `json:"classes" yaml:"classes"`
}

func newScanCmd(root *rootOptions) *cobra.Command {
	var (
		dialect string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List the preview classes declared under a directory",
		Long: `Scan walks a directory and prints the fully qualified name of every
class (or Go type) it declares, in the order the preview index lists them.

Examples:
  mailpreview scan src/Mailer/Preview
  mailpreview scan --dialect go internal/mailer/preview
  mailpreview scan -f json src/Mailer/Preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			d, err := srcscan.ParseDialect(dialect)
			if err != nil {
				return err
			}
			log, err := root.cliLogger(cmd)
			if err != nil {
				return err
			}

			names, err := srcscan.New(srcscan.WithDialect(d), srcscan.WithLogger(log)).ScanDir(cmd.Context(), dir)
			if err != nil {
				return err
			}

			return writeScanResult(cmd, format, scanResult{Dir: dir, Dialect: d.String(), Classes: names})
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", srcscan.PHP.Name, "source dialect (php, go)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")
	return cmd
}

func writeScanResult(cmd *cobra.Command, format string, res scanResult) error {
	out := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case "text", "":
		for _, name := range res.Classes {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q (want text, json or yaml)", format)
}
