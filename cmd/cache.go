package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pawnforge/internal/store"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clear cached puzzle sets",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the user's cached puzzle sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
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

		entries, err := s.CacheRepo().List(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("list cache: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No cached puzzle sets.")
			return nil
		}

		fmt.Printf("%-10s  %-8s  %-8s  %-19s  %s\n",
			"Category", "Tier", "Schema", "Generated", "Bytes")
		fmt.Println(strings.Repeat("─", 64))
		for _, e := range entries {
			fmt.Printf("%-10s  %-8s  %-8s  %-19s  %d\n",
				e.Category,
				e.Difficulty,
				e.SchemaVersion,
				e.GeneratedAt.Local().Format("2006-01-02 15:04:05"),
				len(e.Puzzles),
			)
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [category]",
	Short: "Remove cached puzzle sets, forcing regeneration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		category := ""
		if len(args) == 1 {
			if err := validCategory(args[0]); err != nil {
				return err
			}
			category = args[0]
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

		removed, err := newManager(s).ClearCache(cmd.Context(), userID, category)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d cached set(s).\n", removed)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
