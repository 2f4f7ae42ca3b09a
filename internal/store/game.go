package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pawnforge/ent"
	"github.com/abhisek/pawnforge/ent/game"
)

// gameRepo implements GameRepo using the ent client.
type gameRepo struct {
	client *ent.Client
}

func (r *gameRepo) Save(ctx context.Context, rec *GameRecord) error {
	existing, err := r.client.Game.Query().
		Where(game.GameID(rec.GameID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query game %s: %w", rec.GameID, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetPlayerColor(rec.PlayerColor).
			SetWhite(rec.White).
			SetBlack(rec.Black).
			SetResult(rec.Result).
			SetMoves(rec.Moves).
			SetJudgments(rec.Judgments).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update game %s: %w", rec.GameID, err)
		}
		return nil
	}

	_, err = r.client.Game.Create().
		SetGameID(rec.GameID).
		SetUserID(rec.UserID).
		SetPlayerColor(rec.PlayerColor).
		SetWhite(rec.White).
		SetBlack(rec.Black).
		SetResult(rec.Result).
		SetMoves(rec.Moves).
		SetJudgments(rec.Judgments).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save game %s: %w", rec.GameID, err)
	}
	return nil
}

func (r *gameRepo) UserGames(ctx context.Context, userID string, limit int) ([]*GameRecord, error) {
	q := r.client.Game.Query().
		Where(game.UserID(userID)).
		Order(ent.Desc(game.FieldImportedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query games for %s: %w", userID, err)
	}

	recs := make([]*GameRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, &GameRecord{
			GameID:      row.GameID,
			UserID:      row.UserID,
			PlayerColor: row.PlayerColor,
			White:       row.White,
			Black:       row.Black,
			Result:      row.Result,
			Moves:       row.Moves,
			Judgments:   row.Judgments,
			ImportedAt:  row.ImportedAt,
		})
	}
	return recs, nil
}
