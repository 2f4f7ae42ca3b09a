package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/pawnforge/internal/store"
	"github.com/notnil/chess"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.pgn>",
	Short: "Import games from a PGN file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		colorFlag, _ := cmd.Flags().GetString("color")

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open PGN file: %w", err)
		}
		defer f.Close()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		scanner := chess.NewScanner(f)
		var imported, skipped int
		for scanner.Scan() {
			game := scanner.Next()
			rec, err := recordFromGame(game, userID, colorFlag)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping game: %v\n", err)
				skipped++
				continue
			}
			if err := s.GameRepo().Save(ctx, rec); err != nil {
				return fmt.Errorf("save game %s: %w", rec.GameID, err)
			}
			imported++
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read PGN: %w", err)
		}

		fmt.Printf("Imported %d game(s)", imported)
		if skipped > 0 {
			fmt.Printf(", skipped %d", skipped)
		}
		fmt.Println(".")
		return nil
	},
}

func init() {
	importCmd.Flags().String("color", "", "Side the user played (white or black); inferred from player tags when omitted")
}

// recordFromGame converts one parsed PGN game into a store record, inferring
// which side the user played from the White/Black tags.
func recordFromGame(game *chess.Game, userID, colorFlag string) (*store.GameRecord, error) {
	white := tagValue(game, "White")
	black := tagValue(game, "Black")

	color, err := playerColor(userID, colorFlag, white, black)
	if err != nil {
		return nil, err
	}

	positions := game.Positions()
	moves := game.Moves()
	if len(moves) == 0 {
		return nil, fmt.Errorf("game %s vs %s has no moves", white, black)
	}

	san := make([]string, len(moves))
	notation := chess.AlgebraicNotation{}
	for i, m := range moves {
		san[i] = notation.Encode(positions[i], m)
	}

	return &store.GameRecord{
		GameID:      gameFingerprint(white, black, tagValue(game, "Date"), san),
		UserID:      userID,
		PlayerColor: color,
		White:       white,
		Black:       black,
		Result:      string(game.Outcome()),
		Moves:       san,
		ImportedAt:  time.Now().UTC(),
	}, nil
}

// playerColor resolves which side the user played. An explicit flag wins;
// otherwise the user name must match exactly one of the player tags.
func playerColor(userID, colorFlag, white, black string) (string, error) {
	switch strings.ToLower(colorFlag) {
	case "w", "white":
		return "w", nil
	case "b", "black":
		return "b", nil
	case "":
	default:
		return "", fmt.Errorf("invalid --color %q (want white or black)", colorFlag)
	}

	matchesWhite := strings.EqualFold(userID, white)
	matchesBlack := strings.EqualFold(userID, black)
	switch {
	case matchesWhite && matchesBlack:
		return "", fmt.Errorf("user %q matches both players; pass --color", userID)
	case matchesWhite:
		return "w", nil
	case matchesBlack:
		return "b", nil
	default:
		return "", fmt.Errorf("user %q is neither %q nor %q; pass --color", userID, white, black)
	}
}

// gameFingerprint derives a stable ID so re-importing the same PGN upserts
// rather than duplicates.
func gameFingerprint(white, black, date string, moves []string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", white, black, date, strings.Join(moves, " "))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func tagValue(game *chess.Game, key string) string {
	if tp := game.GetTagPair(key); tp != nil {
		return tp.Value
	}
	return ""
}
