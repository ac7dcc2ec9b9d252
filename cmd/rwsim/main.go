// rwsim compares random-walk agents on generated graphs.
//
// Usage:
//
//	rwsim compare [-s seed] [-N trials] [-n vertices] [-k degree] [-a agents] [-g graphs] [-A interval]
//	rwsim sample  [-s seed] [-N trials] [-n vertices] [-g graphs]
//
// Settings are resolved from defaults, then --config (YAML), then RW_*
// environment variables (optionally read from --env-file), then flags.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "rwsim",
		Short: "Cover and hitting times of random-walk agents",
		Long: "rwsim runs random-walk agents over generated graph topologies and reports\n" +
			"mean cover time, target hitting time and mean hitting time with 95% intervals.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every trial at debug level")

	cmd.AddCommand(newCompareCmd(&flags))
	cmd.AddCommand(newSampleCmd(&flags))

	return cmd
}

// newLogger writes text logs to w; progress goes to stderr so stdout stays
// machine readable.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "rwsim:", err)
		stop()
		os.Exit(1)
	}
}
