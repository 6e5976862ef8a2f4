package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ewanlister/shopfloor-scheduler/internal/config"
	"github.com/ewanlister/shopfloor-scheduler/pkg/api"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/solver"
	"github.com/ewanlister/shopfloor-scheduler/pkg/jobs"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduling HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := solverParameters(app.Cfg)
			if err != nil {
				return err
			}

			s := solver.New(app.Engine, params, app.Logger)
			manager := jobs.NewManager(s, app.Cfg.Jobs.CacheLimit, app.Logger)
			defer manager.Close()

			handler := api.NewHandler(manager, app.Engine, app.Logger)

			ctx, stop := signal.NotifyContext(app.Ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app.Logger.Info("starting server",
				zap.String("addr", app.Cfg.Addr()),
				zap.String("environment", app.Cfg.Environment))

			return handler.Serve(ctx, api.ServerConfig{
				Addr:            app.Cfg.Addr(),
				ReadTimeout:     app.Cfg.Server.ReadTimeout,
				WriteTimeout:    app.Cfg.Server.WriteTimeout,
				IdleTimeout:     app.Cfg.Server.IdleTimeout,
				ShutdownTimeout: app.Cfg.Server.ShutdownTimeout,
			})
		},
	}
}

// solverParameters maps the solver section of the config onto search
// parameters.
func solverParameters(cfg *config.Config) (solver.Parameters, error) {
	params := solver.Parameters{
		TimeLimit: cfg.Solver.TimeLimit,
		MaxSteps:  cfg.Solver.MaxSteps,
		Seed:      cfg.Solver.Seed,
	}
	if cfg.Solver.BestScoreLimit != "" {
		limit, err := schedule.ParseScore(cfg.Solver.BestScoreLimit)
		if err != nil {
			return solver.Parameters{}, fmt.Errorf("invalid best score limit: %w", err)
		}
		params.BestScoreLimit = &limit
	}
	return params, nil
}
