package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/merev/ds-scorekeeper/internal/game"
	"github.com/merev/ds-scorekeeper/internal/stats"
)

const schema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS matches (
    id             TEXT PRIMARY KEY,
    starting_score INTEGER NOT NULL,
    mode           TEXT NOT NULL,
    unit           TEXT NOT NULL,
    target         INTEGER NOT NULL,
    track_doubles  INTEGER NOT NULL DEFAULT 0,
    winner_id      TEXT,
    created_at     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS dart_stats (
    game_id             TEXT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
    player_id           TEXT NOT NULL,
    three_dart_avg      REAL NOT NULL,
    first9_avg          REAL NOT NULL,
    finish              INTEGER NOT NULL,
    highest_finish      INTEGER NOT NULL,
    doubles_hit         INTEGER NOT NULL,
    doubles_thrown      INTEGER NOT NULL,
    checkout_percentage REAL NOT NULL,
    double_percentage   REAL NOT NULL,
    highest_score       INTEGER NOT NULL,
    one_eighties        INTEGER NOT NULL,
    scores_140_plus     INTEGER NOT NULL,
    scores_100_plus     INTEGER NOT NULL,
    scores_80_plus      INTEGER NOT NULL,
    total_turns         INTEGER NOT NULL,
    total_darts         INTEGER NOT NULL,
    leg_darts           TEXT NOT NULL DEFAULT '[]',
    best_leg            INTEGER,
    worst_leg           INTEGER,
    legs_played         INTEGER NOT NULL,
    created_at          INTEGER NOT NULL,
    PRIMARY KEY (game_id, player_id)
);

CREATE INDEX IF NOT EXISTS dart_stats_player_idx ON dart_stats (player_id, created_at);
`

// Store is a ResultStore backed by an SQLite file.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ game.ResultStore = (*Store)(nil)

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// ":memory:" databases live per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) CreateMatchRecord(ctx context.Context, rec game.MatchRecord) (string, error) {
	id := uuid.NewString()
	created := rec.CreatedAt
	if created.IsZero() {
		created = s.now()
	}

	var winner sql.NullString
	if w := strings.TrimSpace(rec.WinnerID); w != "" {
		winner = sql.NullString{String: w, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO matches (id, starting_score, mode, unit, target, track_doubles, winner_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`, id, rec.Config.StartingScore, string(rec.Config.Mode), string(rec.Config.Unit), rec.Config.Target,
		rec.Config.TrackDoubles, winner, created.UnixNano())
	if err != nil {
		return "", fmt.Errorf("insert match: %w", err)
	}
	return id, nil
}

func (s *Store) SavePlayerStats(ctx context.Context, matchID, playerID string, rec stats.FinalStatsRecord) error {
	if strings.TrimSpace(playerID) == "" {
		return errors.New("playerId is required")
	}
	legDarts, err := json.Marshal(nonNil(rec.LegDarts))
	if err != nil {
		return fmt.Errorf("encode leg darts: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO dart_stats (
    game_id, player_id, three_dart_avg, first9_avg, finish, highest_finish,
    doubles_hit, doubles_thrown, checkout_percentage, double_percentage,
    highest_score, one_eighties, scores_140_plus, scores_100_plus, scores_80_plus,
    total_turns, total_darts, leg_darts, best_leg, worst_leg, legs_played, created_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (game_id, player_id) DO NOTHING;
`,
		matchID, playerID, rec.ThreeDartAvg, rec.First9Avg, rec.Finish, rec.HighestFinish,
		rec.DoublesHit, rec.DoublesThrown, rec.CheckoutPercentage, rec.DoublePercentage,
		rec.HighestScore, rec.OneEighties, rec.Scores140Plus, rec.Scores100Plus, rec.Scores80Plus,
		rec.TotalTurns, rec.TotalDarts, string(legDarts), nullInt(rec.BestLeg), nullInt(rec.WorstLeg),
		rec.LegsPlayed, s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert stats: %w", err)
	}
	return nil
}

func (s *Store) PlayerHistory(ctx context.Context, playerID string) ([]stats.FinalStatsRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT three_dart_avg, first9_avg, finish, highest_finish, doubles_hit, doubles_thrown,
       checkout_percentage, double_percentage, highest_score, one_eighties,
       scores_140_plus, scores_100_plus, scores_80_plus, total_turns, total_darts,
       leg_darts, best_leg, worst_leg, legs_played
FROM dart_stats
WHERE player_id = ?
ORDER BY created_at DESC;
`, playerID)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	out := make([]stats.FinalStatsRecord, 0)
	for rows.Next() {
		var rec stats.FinalStatsRecord
		var legDarts string
		var best, worst sql.NullInt64
		if err := rows.Scan(
			&rec.ThreeDartAvg, &rec.First9Avg, &rec.Finish, &rec.HighestFinish,
			&rec.DoublesHit, &rec.DoublesThrown, &rec.CheckoutPercentage, &rec.DoublePercentage,
			&rec.HighestScore, &rec.OneEighties, &rec.Scores140Plus, &rec.Scores100Plus, &rec.Scores80Plus,
			&rec.TotalTurns, &rec.TotalDarts, &legDarts, &best, &worst, &rec.LegsPlayed,
		); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		if err := json.Unmarshal([]byte(legDarts), &rec.LegDarts); err != nil {
			return nil, fmt.Errorf("decode leg darts: %w", err)
		}
		rec.BestLeg = intPtr(best)
		rec.WorstLeg = intPtr(worst)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
