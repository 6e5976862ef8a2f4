package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/solver"
	"github.com/ewanlister/shopfloor-scheduler/pkg/problem"
)

// SolveCmd creates the solve command
func SolveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve a problem file and print the resulting schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := problem.LoadFile(args[0])
			if err != nil {
				return err
			}
			resolved, err := problem.Resolve(def)
			if err != nil {
				return err
			}

			params, err := solverParameters(app.Cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(app.Ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := solver.New(app.Engine, params, app.Logger)
			best, score, err := s.Solve(ctx, resolved, nil)
			if err != nil {
				return err
			}

			fmt.Printf("\nScore: %s\n\n", score)
			for _, o := range best.Orders {
				employee := "<unassigned>"
				if o.Employee != nil {
					employee = o.Employee.Name
				}
				line := "<unassigned>"
				if o.Line != nil {
					line = o.Line.Name
				}
				start := "<unassigned>"
				if o.Start != nil {
					start = o.Start.Format("2006-01-02 15:04")
				}
				fmt.Printf("  %-12s -> %-8s @ %-4s on %s\n", o.ProductName, employee, line, start)
			}
			fmt.Println()

			return nil
		},
	}
}
