package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pawnforge/internal/puzzlegen"
	"github.com/abhisek/pawnforge/internal/store"
	"github.com/spf13/cobra"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles <category>",
	Short: "Show the puzzle set for a category and difficulty",
	Long:  "Prints the cached puzzle set, generating it first if no current set exists.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		if err := validCategory(args[0]); err != nil {
			return err
		}
		band, err := parseBand(cmd)
		if err != nil {
			return err
		}
		solutions, _ := cmd.Flags().GetBool("solutions")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		puzzles, err := newManager(s).Puzzles(cmd.Context(), userID, args[0], band)
		if err != nil {
			return err
		}
		if len(puzzles) == 0 {
			fmt.Println("No puzzles available.")
			return nil
		}

		for i, p := range puzzles {
			fmt.Printf("%d. [%s/%s, ~%d] %s\n", i+1, p.Category, p.Difficulty, p.Rating, p.Objective)
			fmt.Printf("   FEN:  %s\n", p.StartFEN)
			fmt.Printf("   Hint: %s\n", p.Hint)
			if solutions {
				fmt.Printf("   Line: %s\n", strings.Join(p.SolutionLine, " "))
				fmt.Printf("   %s\n", p.Explanation)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	puzzlesCmd.Flags().StringP("difficulty", "d", string(puzzlegen.BandMedium), "Difficulty tier (easy, medium, hard)")
	puzzlesCmd.Flags().Bool("solutions", false, "Show solution lines and explanations")
}

func parseBand(cmd *cobra.Command) (puzzlegen.DifficultyBand, error) {
	raw, _ := cmd.Flags().GetString("difficulty")
	band := puzzlegen.DifficultyBand(strings.ToLower(raw))
	for _, b := range puzzlegen.Bands() {
		if b == band {
			return band, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty %q (want easy, medium, or hard)", raw)
}
