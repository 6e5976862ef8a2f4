package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewanlister/shopfloor-scheduler/pkg/problem"
)

// AnalyzeCmd creates the analyze command
func AnalyzeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <problem.yaml>",
		Short: "Print the per-constraint penalty breakdown for a problem file",
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

			analysis := app.Engine.Analyze(resolved)

			fmt.Printf("\nScore: %s\n\n", analysis.Score)
			fmt.Printf("  %-32s %-8s %s\n", "Constraint", "Tier", "Penalty")
			for _, c := range analysis.Constraints {
				fmt.Printf("  %-32s %-8s %d\n", c.Name, c.Tier, c.Penalty)
			}
			fmt.Println()

			return nil
		},
	}
}
