// Package main provides the CLI entry point for u2bench, a suite of
// single-primitive micro-benchmark payloads sharing one timing harness.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/weiihann/u2bench/bench/crypto"
	"github.com/weiihann/u2bench/bench/db"
	"github.com/weiihann/u2bench/bench/micro"
	"github.com/weiihann/u2bench/bench/science"
	"github.com/weiihann/u2bench/bench/sys"
	"github.com/weiihann/u2bench/bench/vm"
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/report"
	"github.com/weiihann/u2bench/workload"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	root := newRootCmd(logger, level)
	err := root.ExecuteContext(ctx)

	stop()

	if err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "u2bench",
		Short: "Single-primitive micro-benchmark suite",
		Long: `u2bench runs fixed-workload payloads that each time one primitive
operation (a hash, a syscall, a sort, an interpreter loop) and print the
elapsed time as a single "Time: X.XXX ms" line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("parse --log-level: %w", err)
			}

			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())
	root.AddCommand(newStreamCmd(logger))

	return root
}

// newRegistry collects every payload group built for this platform.
func newRegistry() (*harness.Registry, error) {
	return harness.NewRegistry(
		crypto.Benchmarks(),
		db.Benchmarks(),
		micro.Benchmarks(),
		science.Benchmarks(),
		sys.Benchmarks(),
		vm.Benchmarks(),
	)
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var resultPath string

	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Run one payload and print its time",
		Long: `Run exactly one payload in-process. Stdout receives the
"Time: X.XXX ms" line, or the payload's diagnostic if it fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPayload(cmd.Context(), logger, runConfig{
				name:       args[0],
				out:        cmd.OutOrStdout(),
				resultPath: resultPath,
			})
		},
	}

	cmd.Flags().StringVar(&resultPath, "result-json", "",
		"Also write the structured result as JSON to this file")

	return cmd
}

type runConfig struct {
	name       string
	out        io.Writer
	resultPath string
}

func runPayload(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
) error {
	registry, err := newRegistry()
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	b, err := registry.Lookup(cfg.name)
	if err != nil {
		return err
	}

	runner := harness.NewRunner(logger)

	result, err := runner.Run(ctx, b, harness.RunConfig{Out: cfg.out})
	if err != nil {
		// Payload diagnostics share stdout with the time line.
		fmt.Fprintln(cfg.out, err)

		return fmt.Errorf("run %s: %w", cfg.name, err)
	}

	if cfg.resultPath == "" {
		return nil
	}

	if err := writeResult(cfg.resultPath, result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	logger.InfoContext(ctx, "result written",
		slog.String("path", cfg.resultPath),
	)

	return nil
}

func writeResult(path string, result *harness.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func newListCmd() *cobra.Command {
	var (
		kind       string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered payloads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, listConfig{
				kind:       kind,
				outputJSON: outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kind, "kind", "",
		"Only list payloads of this kind (e.g. syscall_dense)")
	flags.BoolVar(&outputJSON, "json", false,
		"Output the catalogue as JSON instead of a table")

	return cmd
}

type listConfig struct {
	kind       string
	outputJSON bool
}

func runList(cmd *cobra.Command, cfg listConfig) error {
	var kind harness.Kind
	if cfg.kind != "" {
		k, ok := harness.ParseKind(cfg.kind)
		if !ok {
			return fmt.Errorf("unknown kind %q", cfg.kind)
		}

		kind = k
	}

	registry, err := newRegistry()
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	benchmarks := registry.List(kind)
	out := cmd.OutOrStdout()

	if cfg.outputJSON {
		if err := report.GenerateJSON(out, benchmarks); err != nil {
			return fmt.Errorf("generate JSON catalogue: %w", err)
		}

		return nil
	}

	if err := report.Generate(out, benchmarks); err != nil {
		return fmt.Errorf("generate catalogue: %w", err)
	}

	return nil
}

func newStreamCmd(logger *slog.Logger) *cobra.Command {
	var (
		gen   string
		seed  uint64
		count int
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Print a generator's output stream as JSONL",
		Long: `Write the first --count outputs of a harness generator as JSON lines
and log an xxhash64 fingerprint of the stream, so two implementations can
be compared bit-for-bit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStream(cmd, logger, workload.Config{
				Generator: gen,
				Seed:      seed,
				Count:     count,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&gen, "gen", workload.GenSplitMix64,
		"Generator: xorshift32, splitmix64")
	flags.Uint64Var(&seed, "seed", 1,
		"Initial generator state")
	flags.IntVar(&count, "count", 16,
		"Number of outputs to write")

	return cmd
}

func runStream(cmd *cobra.Command, logger *slog.Logger, cfg workload.Config) error {
	gen, err := workload.NewGenerator(cfg)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	summary, err := gen.Generate(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("generate stream: %w", err)
	}

	logger.InfoContext(cmd.Context(), "stream generated",
		slog.String("generator", summary.Generator),
		slog.Uint64("seed", cfg.Seed),
		slog.Int("count", summary.Count),
		slog.String("fingerprint", fmt.Sprintf("%016x", summary.Fingerprint)),
	)

	return nil
}
