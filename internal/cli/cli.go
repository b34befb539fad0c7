// Package cli wires the demonstration catalog to a cobra command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/charmingruby/fpidioms/internal/catalog"
	"github.com/charmingruby/fpidioms/internal/config"
)

// ErrDemosFailed is returned by the run command when at least one demo fails.
var ErrDemosFailed = errors.New("cli: demos failed")

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree writing results to stdout and logs
// to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "fpidioms",
		Short:         "Run functional programming idioms as self-checking demos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newListCommand(), newRunCommand())
	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range catalog.All() {
				fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Description)
			}
			return w.Flush()
		},
	}
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run all demos, or only the named ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			demos, err := catalog.Select(args)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			return runDemos(cmd.OutOrStdout(), logger, demos, cfg.FailFast)
		},
	}
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func runDemos(out io.Writer, logger *slog.Logger, demos []catalog.Demo, failFast bool) error {
	var failures []error
	passed := 0
	for _, d := range demos {
		logger.Debug("running demo", "demo", d.Name)
		if err := d.Run(); err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", d.Name, err)
			logger.Error("demo failed", "demo", d.Name, "status", "fail", "err", err)
			failures = append(failures, fmt.Errorf("%s: %w", d.Name, err))
			if failFast {
				break
			}
			continue
		}
		passed++
		fmt.Fprintf(out, "PASS %s\n", d.Name)
		logger.Info("demo passed", "demo", d.Name, "status", "pass")
	}
	logger.Info("demos finished", "passed", passed, "failed", len(failures))
	if len(failures) > 0 {
		summary := fmt.Errorf("%w: %d of %d", ErrDemosFailed, len(failures), len(demos))
		return errors.Join(append([]error{summary}, failures...)...)
	}
	return nil
}
