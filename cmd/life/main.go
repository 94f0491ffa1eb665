// Command life is the front end of the life language compiler: it parses
// a single file or a directory of modules and prints the resulting
// syntax tree, or the diagnostics that prevented one.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lifec/internal/diagfmt"
	"lifec/internal/modload"
	"lifec/internal/parser"
	"lifec/internal/sexp"
	"lifec/internal/version"
)

var errDiagnostics = errors.New("life: one or more modules failed to load")

var colorMode string

var rootCmd = &cobra.Command{
	Use:   "life [- | directory]",
	Short: "life language compiler front end",
	Long: "life parses a single module (or \"-\" for one read from standard\n" +
		"input) or a directory of .life source files, and prints the parsed\n" +
		"syntax tree on success, or diagnostics on failure.",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "print version information")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize diagnostic output (auto|on|off)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	showVersion, err := cmd.Flags().GetBool("version")
	if err != nil {
		return err
	}
	if showVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "life compiler version %s\n", version.Version)
		return nil
	}

	useColor := shouldColor(colorMode, cmd.ErrOrStderr())
	target := args[0]

	if target == "-" {
		return runStdin(cmd, useColor)
	}
	return runDirectory(cmd, target, useColor)
}

func runStdin(cmd *cobra.Command, useColor bool) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading standard input: %w", err)
	}

	mod, engine := parser.ParseModule("<stdin>", src)
	if engine.HasErrors() {
		diagfmt.Fprint(cmd.ErrOrStderr(), engine, diagfmt.Options{Color: useColor})
		return errDiagnostics
	}
	fmt.Fprintln(cmd.OutOrStdout(), sexp.Render(mod, 2))
	return nil
}

func runDirectory(cmd *cobra.Command, dir string, useColor bool) error {
	results, err := modload.LoadAll(context.Background(), dir)
	if err != nil {
		return fmt.Errorf("discovering modules under %s: %w", dir, err)
	}

	failed := false
	for _, r := range results {
		for _, eng := range r.Engines {
			if eng != nil && eng.HasErrors() {
				failed = true
				diagfmt.Fprint(cmd.ErrOrStderr(), eng, diagfmt.Options{Color: useColor})
			}
		}
		if r.OK {
			fmt.Fprintln(cmd.OutOrStdout(), sexp.Render(r.Module, 2))
		}
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

// shouldColor resolves the --color flag against the target writer: "on"
// and "off" are explicit, "auto" colorizes only when w is a terminal.
func shouldColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return term.IsTerminal(int(f.Fd()))
	}
}
