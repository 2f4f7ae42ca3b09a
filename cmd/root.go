package cmd

import (
	"github.com/abhisek/pawnforge/internal/catalog"
	"github.com/abhisek/pawnforge/internal/oracle"
	"github.com/abhisek/pawnforge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pawnforge",
	Short: "Personal chess puzzle generator",
	Long:  "Pawnforge — mines your own games for mistakes and opening deviations and forges them into practice puzzles.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PAWNFORGE_DB env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "", "User whose games and puzzles to operate on")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(puzzlesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(engineCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PAWNFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newManager wires a catalog Manager over an open store. The engine is
// opened lazily per difficulty tier from environment configuration.
func newManager(st *store.Store) *catalog.Manager {
	engineCfg := oracle.ConfigFromEnv()
	factory := func() (oracle.Engine, error) {
		return oracle.NewEngine(engineCfg, st.EventRepo())
	}
	return catalog.NewManager(st.CacheRepo(), st.GameRepo(), st.EventRepo(), factory, nil, catalog.DefaultConfig())
}
