// proseamp analyzes prose text and produces heuristic expansions of
// it. See the analyze, enhance, serve, and batch subcommands.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/proseamp/proseamp/internal/analyzer"
	"github.com/proseamp/proseamp/internal/batch"
	"github.com/proseamp/proseamp/internal/config"
	"github.com/proseamp/proseamp/internal/enhancer"
	"github.com/proseamp/proseamp/internal/server"
	"github.com/proseamp/proseamp/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "proseamp",
		Short:         "Heuristic prose analysis and expansion",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newEnhanceCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newBatchCmd())
	return root
}

// readInput reads the named file, or stdin for "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Print the Markdown analysis report for a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			report := analyzer.New().Analyze(text)
			fmt.Fprint(cmd.OutOrStdout(), report.Render())
			return nil
		},
	}
}

type techniqueFlags struct {
	noGoldenShadow   bool
	noEnvironmental  bool
	noActionScene    bool
	noProseSmoothing bool
	noRepetition     bool
}

func (f *techniqueFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noGoldenShadow, "no-golden-shadow", false, "disable character development")
	cmd.Flags().BoolVar(&f.noEnvironmental, "no-environmental", false, "disable environmental detail")
	cmd.Flags().BoolVar(&f.noActionScene, "no-action-scene", false, "disable action intensification")
	cmd.Flags().BoolVar(&f.noProseSmoothing, "no-prose-smoothing", false, "disable transition smoothing")
	cmd.Flags().BoolVar(&f.noRepetition, "no-repetition", false, "disable repetition elimination")
}

func (f *techniqueFlags) options(defaults config.TechniquesConfig) enhancer.Options {
	return enhancer.Options{
		GoldenShadow:          defaults.GoldenShadow && !f.noGoldenShadow,
		Environmental:         defaults.Environmental && !f.noEnvironmental,
		ActionScene:           defaults.ActionScene && !f.noActionScene,
		ProseSmoothing:        defaults.ProseSmoothing && !f.noProseSmoothing,
		RepetitionElimination: defaults.RepetitionElimination && !f.noRepetition,
	}
}

func newEnhanceCmd() *cobra.Command {
	var target int
	var flags techniqueFlags

	cmd := &cobra.Command{
		Use:   "enhance [file|-]",
		Short: "Expand a text and print the result with its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if target == 0 {
				target = cfg.Enhance.TargetPercent
			}
			if target < 100 || target > 500 {
				return fmt.Errorf("target must be between 100 and 500, got %d", target)
			}

			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			result := enhancer.New().CustomEnhance(text, target, flags.options(cfg.Enhance.Techniques))
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "expansion target percent (100-500)")
	flags.register(cmd)
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve analyze/enhance requests as JSON lines over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			slog.Info("serving on stdio",
				"rate_limit_per_minute", cfg.Server.RateLimit.RequestsPerMinute)
			return server.New(cfg).Serve(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}

func newBatchCmd() *cobra.Command {
	var target int
	var outDir string
	var flags techniqueFlags

	cmd := &cobra.Command{
		Use:   "batch <pattern>",
		Short: "Enhance every file matching a glob, concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if target == 0 {
				target = cfg.Enhance.TargetPercent
			}
			if target < 100 || target > 500 {
				return fmt.Errorf("target must be between 100 and 500, got %d", target)
			}

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}

			runner := batch.New(storage.NewFileStore(wd), enhancer.New(), cfg.Batch.MaxConcurrent)
			results, err := runner.Run(cmd.Context(), args[0], outDir, target, flags.options(cfg.Enhance.Techniques))
			if err != nil {
				return err
			}

			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", res.Path, res.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK %s -> %s (%d -> %d words)\n",
					res.Path, res.OutPath, res.OriginalWords, res.EnhancedWords)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "expansion target percent (100-500)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "enhanced", "output directory (relative)")
	flags.register(cmd)
	return cmd
}
