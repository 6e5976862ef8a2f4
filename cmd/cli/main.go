package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ewanlister/shopfloor-scheduler/cmd/cli/commands"
	"github.com/ewanlister/shopfloor-scheduler/internal/config"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring/constraints"
	"github.com/ewanlister/shopfloor-scheduler/pkg/utils/logging"
)

var app = &commands.AppContext{}

func main() {
	rootCmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Shop-floor order scheduler",
		Long:  `Assigns production orders to employees, lines and start times, scored by a set of scheduling constraints.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.SolveCmd(app))
	rootCmd.AddCommand(commands.AnalyzeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, and the scoring engine
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(app.Cfg.Logging.Level, app.Cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("configuration loaded", zap.String("environment", app.Cfg.Environment))

	app.Engine = scoring.NewEngine(constraints.Default())
	return nil
}
