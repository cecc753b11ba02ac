// Command calc evaluates infix arithmetic with exact decimal arithmetic.
package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("Error: ", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate infix arithmetic expressions",
		Long: `calc evaluates arithmetic expressions with + - * / ^, parentheses, and
unary minus, using exact decimal arithmetic.

With arguments, calc joins them with spaces and prints the value of the
resulting expression. Use -- before an expression that starts with -.
Without arguments, calc reads one expression per line from standard input.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.Int32("places", 0, "digits kept after the decimal point by division (default 28)")
	flags.Bool("big-pow", false, "compute ^ with arbitrary precision instead of float64")
	flags.Uint("prec", 0, "precision in bits of fractional powers with --big-pow (default 128)")
	flags.Bool("postfix", false, "print the postfix form of each expression")
	flags.Bool("no-color", false, "disable coloured error messages")
	flags.String("config", "", "config file (default $CALC_CONFIG or $XDG_CONFIG_HOME/calc/config.yaml)")
	flags.BoolP("verbose", "v", false, "log each calculation to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfgflag, _ := cmd.Flags().GetString("config")
	s, err := loadSettings(configPath(cfgflag))
	if err != nil {
		return err
	}
	s = applyFlags(cmd, s)

	level := slog.LevelWarn
	if s.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	in := cmd.InOrStdin()
	sh := newShell(s, cmd.OutOrStdout(), logger, len(args) == 0 && isTerminal(in))
	if len(args) > 0 {
		return sh.eval(strings.Join(args, " "))
	}
	return sh.run(in)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
