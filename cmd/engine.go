package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/spf13/cobra"
)

var engineCmd = &cobra.Command{
	Use:   "engine",
	Short: "Probe the configured analysis engine",
	Long:  "Launches the engine from PAWNFORGE_ENGINE configuration, runs a short search on the starting position, and reports the result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := oracle.ConfigFromEnv()
		fmt.Printf("Engine:  %s\n", cfg.Path)

		eng, err := oracle.NewEngine(cfg, nil)
		if err != nil {
			return fmt.Errorf("launch engine: %w", err)
		}
		defer eng.Close()

		start := time.Now()
		res, err := eng.Analyze(cmd.Context(), oracle.Request{
			Position:   rules.StartingPosition(),
			Depth:      cfg.Depth,
			TimeBudget: time.Second,
		})
		if err != nil {
			return fmt.Errorf("probe search: %w", err)
		}

		fmt.Printf("Status:  ok (%s)\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Best:    %s\n", rules.UCI(res.BestMove))
		fmt.Printf("Depth:   %d\n", res.Depth)
		switch res.Eval.Type {
		case oracle.EvalMate:
			fmt.Printf("Eval:    mate in %d\n", res.Eval.Value)
		default:
			fmt.Printf("Eval:    %+d cp\n", res.Eval.Value)
		}
		return nil
	},
}
