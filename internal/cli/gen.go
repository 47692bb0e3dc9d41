package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ha1tch/fsmviz/pkg/codegen"
)

func (c *CLI) genCommand() *cobra.Command {
	var src sourceOpts
	var output, lang string
	var opts codegen.Options

	cmd := &cobra.Command{
		Use:   "gen [pattern]",
		Short: "Generate a standalone matcher in Go, C or Rust",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, used, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			if used > 0 {
				opts.Pattern = args[0]
			}

			var code string
			switch lang {
			case "go":
				code, err = codegen.GenerateGo(a, opts)
			case "rust":
				code, err = codegen.GenerateRust(a, opts)
			case "c":
				code, err = codegen.GenerateC(a, opts)
			default:
				return fmt.Errorf("unknown language %q (use go, c or rust)", lang)
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, func(w io.Writer) error {
				_, err := io.WriteString(w, code)
				return err
			})
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "go", "target language: go, c, rust")
	cmd.Flags().StringVar(&opts.Name, "name", "", "name of the generated matcher")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Go package name")
	return cmd
}
