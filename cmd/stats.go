package cmd

import (
	"fmt"

	"github.com/abhisek/pawnforge/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated analysis engine usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().EngineUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if stats.Calls == 0 {
			fmt.Println("No engine usage recorded yet.")
			return nil
		}

		avgMs := stats.TotalTimeMs / int64(stats.Calls)
		fmt.Printf("Engine calls:  %d\n", stats.Calls)
		fmt.Printf("Failures:      %d\n", stats.Failures)
		fmt.Printf("Total time:    %dms\n", stats.TotalTimeMs)
		fmt.Printf("Avg latency:   %dms\n", avgMs)
		return nil
	},
}
