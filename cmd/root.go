// Package cmd provides the root command and CLI setup for dbgc.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dbgc/internal/adapter"
	"github.com/mouse-blink/dbgc/internal/controller"
	"github.com/mouse-blink/dbgc/internal/domain"
	m "github.com/mouse-blink/dbgc/internal/model"
)

const defaultReportsDir = ".dbgc-reports"

var fsAdapter adapter.SourceFSAdapter
var profileStore adapter.ProfileStore
var reportStore adapter.ReportStore
var applier domain.Applier
var workflow domain.Workflow
var ui controller.UI
var logLevel = new(slog.LevelVar)
var logger *slog.Logger

func init() {
	logLevel.Set(slog.LevelWarn)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	profileStore = adapter.NewLocalProfileStore()
	reportStore = adapter.NewReportStore()
	applier = domain.NewApplier(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		profileStore,
		reportStore,
		ui,
		applier,
		logger,
	)
}

var configFlag string
var reportsOutputDirFlag string
var verboseFlag bool
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dbgc [paths...]",
		Short: "Find, comment out and remove debug print statements",
		Long: `dbgc finds debug print statements in C, C++, Go, Java, Rust,
JavaScript/TypeScript and Python sources, and can comment them out,
restore them or delete them.

A statement counts as debug output when it calls a dedicated debug
function (println, dbg!, console.debug, ...) or when an output call
carries a debug marker such as "debug:" in one of its string literals.

Without a subcommand dbgc lists what it finds, like "dbgc list".

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				ScanArgs: scanArgs(args, nil, false, true),
				Reports:  m.Path(reportsOutputDirFlag),
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "profile config file (.yaml, .yml or .toml); defaults to .dbgc.yaml or .dbgc.toml when present")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", defaultReportsDir, "directory for saved reports")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", runtime.NumCPU(), "number of files analyzed in parallel")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// parsePaths converts command arguments into paths. No arguments means the
// current directory.
func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func scanArgs(args, exclude []string, all, recursive bool) domain.ScanArgs {
	return domain.ScanArgs{
		Paths:     parsePaths(args),
		Exclude:   exclude,
		Recursive: recursive,
		All:       all,
		Config:    m.Path(configFlag),
		Threads:   parallelFlag,
	}
}
