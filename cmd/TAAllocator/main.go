package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rhyrak/ta-allocator/internal/allocator"
	"github.com/rhyrak/ta-allocator/internal/batch"
	"github.com/rhyrak/ta-allocator/internal/config"
	"github.com/rhyrak/ta-allocator/internal/csvio"
	"github.com/rhyrak/ta-allocator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configFile string
	envFile    string
	verbose    bool
	jsonLogs   bool

	// run flags
	outputFile string
	delimiter  string
	workers    int

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "TAAllocator",
	Short: "Calculate teaching assistant allocations for a term's courses",
	Long: `TAAllocator reads a table of courses (code, instructor, enrollment,
lecture sections, lab sections, unit weight), applies the TA hour rules and
course special cases, and writes a table of TA allocations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, jsonLogs || cfg.Logging.JSON)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [courses.csv]",
	Short: "Compute TA allocations and export them as CSV",
	Long: `Computes the TA allocation of every course in the input file.

Courses whose code cannot be classified are reported and skipped; the rest
of the batch is still exported.

Example:
  TAAllocator run courses.csv -o TA-Allocations.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAllocations,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the rule catalog and special case tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc := newCalculator()
		valid, msg := allocator.ValidateCatalog(calc.Catalog(), calc.Overrides(), calc.LabOnlyRegistry())
		fmt.Fprint(cmd.OutOrStdout(), msg)
		if !valid {
			return fmt.Errorf("catalog is invalid")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "ta-allocator.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace every allocation step")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "log as JSON")

	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV (default from config)")
	runCmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "input/output delimiter (default from config)")
	runCmd.Flags().IntVarP(&workers, "workers", "w", 0, "courses evaluated concurrently (default from config)")

	rootCmd.AddCommand(runCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newCalculator() *allocator.Calculator {
	return allocator.NewCalculator(
		cfg.AllocatorConfiguration(),
		allocator.DefaultCatalog(),
		allocator.NewOverrideTable(allocator.DefaultSpecialCases()),
		allocator.NewLabOnlyRegistry(allocator.DefaultLabOnlyCourses()),
		logger,
	)
}

func runAllocations(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfg.InputFile = args[0]
	}
	if outputFile != "" {
		cfg.ExportFile = outputFile
	}
	if delimiter != "" {
		cfg.Delimiter = delimiter
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	calc := newCalculator()
	if valid, msg := allocator.ValidateCatalog(calc.Catalog(), calc.Overrides(), calc.LabOnlyRegistry()); !valid {
		return fmt.Errorf("catalog is invalid:\n%s", msg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return allocate(ctx, calc, cmd.OutOrStdout())
}

func allocate(ctx context.Context, calc *allocator.Calculator, out io.Writer) error {
	courses, err := csvio.LoadCourses(cfg.InputFile, cfg.DelimiterRune(), cfg.IgnoredCourses)
	if err != nil {
		return err
	}
	logger.Info("loaded courses", zap.String("path", cfg.InputFile), zap.Int("courses", len(courses)))
	for _, ignored := range cfg.IgnoredCourses {
		logger.Info("course ignored", zap.String("course", ignored))
	}

	start := time.Now()
	results, err := batch.Run(ctx, calc, courses, batch.Options{Workers: cfg.Workers, Logger: logger})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := csvio.ExportAllocations(results, cfg.ExportFile, cfg.DelimiterRune()); err != nil {
		return err
	}

	csvio.PrintAllocations(out, results)
	fmt.Fprintf(out, "Timer: %f ms\n", float64(elapsed.Microseconds())/1000.0)
	fmt.Fprintln(out, "Exported output to: "+cfg.ExportFile)
	return nil
}
