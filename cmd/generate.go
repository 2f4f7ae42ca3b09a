package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/pawnforge/internal/catalog"
	"github.com/abhisek/pawnforge/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [category]",
	Short: "Generate puzzle sets from the user's imported games",
	Long:  "Generates and caches puzzle sets for all three difficulty tiers of a category, or of every category when none is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		categories := catalog.Categories()
		if len(args) == 1 {
			if err := validCategory(args[0]); err != nil {
				return err
			}
			categories = []string{args[0]}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		mgr := newManager(s)
		ctx := cmd.Context()
		for _, category := range categories {
			start := time.Now()
			fmt.Printf("Generating %s puzzles for %s...\n", category, userID)
			if err := mgr.Generate(ctx, userID, category); err != nil {
				return fmt.Errorf("generate %s: %w", category, err)
			}
			fmt.Printf("Done in %s.\n", time.Since(start).Round(time.Second))
		}
		return nil
	},
}

func validCategory(category string) error {
	for _, c := range catalog.Categories() {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q (want one of %v)", category, catalog.Categories())
}
