package game

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/merev/ds-scorekeeper/internal/stats"
)

// Repository is the Postgres ResultStore.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateMatchRecord inserts the match header and returns its id.
func (r *Repository) CreateMatchRecord(ctx context.Context, rec MatchRecord) (string, error) {
	var winner *string
	if id := strings.TrimSpace(rec.WinnerID); id != "" {
		winner = &id
	}

	var matchID string
	err := r.db.QueryRow(ctx, `
INSERT INTO matches (starting_score, mode, unit, target, track_doubles, winner_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text;
`, rec.Config.StartingScore, string(rec.Config.Mode), string(rec.Config.Unit), rec.Config.Target,
		rec.Config.TrackDoubles, winner).Scan(&matchID)
	if err != nil {
		return "", err
	}
	return matchID, nil
}

// SavePlayerStats inserts one player's final record. A second insert for the
// same match and player is ignored.
func (r *Repository) SavePlayerStats(ctx context.Context, matchID, playerID string, rec stats.FinalStatsRecord) error {
	if strings.TrimSpace(playerID) == "" {
		return errors.New("playerId is required")
	}

	_, err := r.db.Exec(ctx, `
INSERT INTO dart_stats (
    game_id, player_id, three_dart_avg, first9_avg, finish, highest_finish,
    doubles_hit, doubles_thrown, checkout_percentage, double_percentage,
    highest_score, one_eighties, scores_140_plus, scores_100_plus, scores_80_plus,
    total_turns, total_darts, leg_darts, best_leg, worst_leg, legs_played
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
ON CONFLICT (game_id, player_id) DO NOTHING;
`,
		matchID, playerID, rec.ThreeDartAvg, rec.First9Avg, rec.Finish, rec.HighestFinish,
		rec.DoublesHit, rec.DoublesThrown, rec.CheckoutPercentage, rec.DoublePercentage,
		rec.HighestScore, rec.OneEighties, rec.Scores140Plus, rec.Scores100Plus, rec.Scores80Plus,
		rec.TotalTurns, rec.TotalDarts, toInt32s(rec.LegDarts), rec.BestLeg, rec.WorstLeg, rec.LegsPlayed,
	)
	return err
}

// PlayerHistory returns every stored record of a player, newest first.
func (r *Repository) PlayerHistory(ctx context.Context, playerID string) ([]stats.FinalStatsRecord, error) {
	rows, err := r.db.Query(ctx, `
SELECT three_dart_avg, first9_avg, finish, highest_finish, doubles_hit, doubles_thrown,
       checkout_percentage, double_percentage, highest_score, one_eighties,
       scores_140_plus, scores_100_plus, scores_80_plus, total_turns, total_darts,
       leg_darts, best_leg, worst_leg, legs_played
FROM dart_stats
WHERE player_id = $1
ORDER BY created_at DESC;
`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stats.FinalStatsRecord, 0)
	for rows.Next() {
		var rec stats.FinalStatsRecord
		var legDarts []int32
		if err := rows.Scan(
			&rec.ThreeDartAvg, &rec.First9Avg, &rec.Finish, &rec.HighestFinish,
			&rec.DoublesHit, &rec.DoublesThrown, &rec.CheckoutPercentage, &rec.DoublePercentage,
			&rec.HighestScore, &rec.OneEighties, &rec.Scores140Plus, &rec.Scores100Plus, &rec.Scores80Plus,
			&rec.TotalTurns, &rec.TotalDarts, &legDarts, &rec.BestLeg, &rec.WorstLeg, &rec.LegsPlayed,
		); err != nil {
			return nil, err
		}
		rec.LegDarts = fromInt32s(legDarts)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func toInt32s(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

func fromInt32s(in []int32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
