// Command brokenline finds the global minimum of a Lipschitz function from
// the test catalog with the broken-line method and optionally plots it.
package main

import (
	"fmt"
	"os"

	"github.com/Grenka054/Optimization-Methods/functions"
	"github.com/Grenka054/Optimization-Methods/render"
	"github.com/Grenka054/Optimization-Methods/univariate"
	"github.com/Grenka054/Optimization-Methods/write"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// newLogger builds the application logger, replaced in tests
var newLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		// flag values, copied onto the loaded config only when set
		flagged = DefaultConfig()
	)

	root := &cobra.Command{
		Use:   "brokenline",
		Short: "Global minimization of Lipschitz functions with the broken-line method",
		Long: `brokenline builds a piecewise-linear lower bound of a Lipschitz function
from cones of slope ±L and refines it at its lowest point until the gap
between the bound and the function is at most sigma.

The interval and Lipschitz constant default to the catalog values of the
chosen function (see "brokenline list").`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			// flags given on the command line win over the file
			applyFlags(cmd, flagged, cfg)
			return run(cmd, cfg)
		},
	}

	var lower, upper, lipschitz float64
	flagged.Lower, flagged.Upper, flagged.Lipschitz = &lower, &upper, &lipschitz

	flags := root.Flags()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVarP(&configPath, "config", "c", "", "YAML file describing the search")
	flags.StringVarP(&flagged.Function, "function", "f", flagged.Function, "Catalog function to minimize")
	flags.Float64Var(flagged.Lower, "lower", 0, "Lower bound of the interval")
	flags.Float64Var(flagged.Upper, "upper", 0, "Upper bound of the interval")
	flags.Float64VarP(flagged.Lipschitz, "lipschitz", "L", 0, "Lipschitz constant of the function on the interval")
	flags.Float64VarP(&flagged.Sigma, "sigma", "s", flagged.Sigma, "Precision of the minimum")
	flags.IntVar(&flagged.MaxIterations, "max-iterations", flagged.MaxIterations, "Maximum number of iterations, -1 for none")
	flags.IntVar(&flagged.Samples, "samples", flagged.Samples, "Grid points used to draw the function")
	flags.BoolVarP(&flagged.Debug, "debug", "d", flagged.Debug, "Print every iteration")
	flags.StringVarP(&flagged.Plot, "plot", "p", flagged.Plot, "Write a plot of the result to this file (png, svg, pdf)")
	flags.StringVar(&flagged.Frames, "frames", flagged.Frames, "Write a plot of every iteration to this directory (implies --debug)")

	root.AddCommand(newListCmd())
	return root
}

// applyFlags copies the flags that were set explicitly from flagged to cfg.
func applyFlags(cmd *cobra.Command, flagged, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("function") {
		cfg.Function = flagged.Function
	}
	if flags.Changed("lower") {
		cfg.Lower = flagged.Lower
	}
	if flags.Changed("upper") {
		cfg.Upper = flagged.Upper
	}
	if flags.Changed("lipschitz") {
		cfg.Lipschitz = flagged.Lipschitz
	}
	if flags.Changed("sigma") {
		cfg.Sigma = flagged.Sigma
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations = flagged.MaxIterations
	}
	if flags.Changed("samples") {
		cfg.Samples = flagged.Samples
	}
	if flags.Changed("debug") {
		cfg.Debug = flagged.Debug
	}
	if flags.Changed("plot") {
		cfg.Plot = flagged.Plot
	}
	if flags.Changed("frames") {
		cfg.Frames = flagged.Frames
	}
}

func run(cmd *cobra.Command, cfg *Config) error {
	problem, err := cfg.Problem()
	if err != nil {
		return err
	}
	logger.Info("Starting broken line search",
		zap.String("function", problem.Name),
		zap.Float64("lower", problem.Lower),
		zap.Float64("upper", problem.Upper),
		zap.Float64("sigma", cfg.Sigma),
		zap.Float64("lipschitz", problem.Lipschitz),
	)

	search, err := univariate.NewSearch(problem, problem.Lower, problem.Upper)
	if err != nil {
		return err
	}
	settings := univariate.DefaultSettings()
	settings.MaximumIterations = cfg.MaxIterations

	var frames *render.FrameWriter
	if cfg.Frames != "" {
		frames = &render.FrameWriter{
			Dir:     cfg.Frames,
			F:       problem,
			Lower:   problem.Lower,
			Upper:   problem.Upper,
			Samples: cfg.Samples,
		}
		settings.Observer = univariate.Observers(univariate.LogObserver(logger), frames)
	} else {
		settings.Observer = univariate.LogObserver(logger)
	}
	debug := cfg.Debug || cfg.Frames != ""
	if debug {
		settings.WriteSettings = &write.WriteSettings{
			DisplayWriters: []write.Writer{{Writer: cmd.OutOrStdout(), T: write.Displayer}},
		}
	}
	search.Settings = settings

	result, err := search.FindMin(cfg.Sigma, problem.Lipschitz, debug)
	if result == nil {
		return err
	}
	if err != nil {
		logger.Warn("Search stopped before converging", zap.Error(err))
	}
	if frames != nil {
		if ferr := frames.Err(); ferr != nil {
			logger.Error("Failed to write frames", zap.Error(ferr))
		}
		logger.Info("Wrote frames", zap.Int("count", frames.Written()), zap.String("dir", cfg.Frames))
	}

	logger.Info("Search finished",
		zap.Stringer("status", result.Status),
		zap.Int("iterations", result.Iterations),
		zap.Int("evaluations", result.FunctionEvaluations),
		zap.Duration("runtime", result.Runtime),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "minimum: (%.6g, %.6g)\n", result.Loc, result.Obj)

	if cfg.Plot != "" {
		p, perr := render.ResultFigure(problem, problem.Lower, problem.Upper, result, cfg.Samples)
		if perr != nil {
			return perr
		}
		if perr := render.Save(p, cfg.Plot); perr != nil {
			return fmt.Errorf("failed to save plot: %w", perr)
		}
		logger.Info("Wrote plot", zap.String("file", cfg.Plot))
	}
	return err
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range functions.Catalog() {
				fmt.Fprintf(out, "%-8s [%g, %g]  L = %.6g  min f(%.6g) = %.6g\n",
					p.Name, p.Lower, p.Upper, p.Lipschitz, p.OptLoc, p.OptVal)
			}
			return nil
		},
	}
}
