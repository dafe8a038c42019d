package database

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	const enablePgcrypto = `CREATE EXTENSION IF NOT EXISTS pgcrypto;`

	const matchesTable = `
CREATE TABLE IF NOT EXISTS matches (
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    starting_score INT NOT NULL,
    mode           TEXT NOT NULL,
    unit           TEXT NOT NULL,
    target         INT NOT NULL,
    track_doubles  BOOLEAN NOT NULL DEFAULT FALSE,
    winner_id      TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

	const dartStatsTable = `
CREATE TABLE IF NOT EXISTS dart_stats (
    id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    game_id             UUID NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
    player_id           TEXT NOT NULL,
    three_dart_avg      DOUBLE PRECISION NOT NULL,
    first9_avg          DOUBLE PRECISION NOT NULL,
    finish              INT NOT NULL,
    highest_finish      INT NOT NULL,
    doubles_hit         INT NOT NULL,
    doubles_thrown      INT NOT NULL,
    checkout_percentage DOUBLE PRECISION NOT NULL,
    double_percentage   DOUBLE PRECISION NOT NULL,
    highest_score       INT NOT NULL,
    one_eighties        INT NOT NULL,
    scores_140_plus     INT NOT NULL,
    scores_100_plus     INT NOT NULL,
    scores_80_plus      INT NOT NULL,
    total_turns         INT NOT NULL,
    total_darts         INT NOT NULL,
    leg_darts           INT[] NOT NULL DEFAULT '{}',
    best_leg            INT,
    worst_leg           INT,
    legs_played         INT NOT NULL,
    created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (game_id, player_id)
);
`

	const playerIndex = `CREATE INDEX IF NOT EXISTS dart_stats_player_idx ON dart_stats (player_id, created_at DESC);`

	for _, stmt := range []string{enablePgcrypto, matchesTable, dartStatsTable, playerIndex} {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("scorekeeper migrations applied")
	return nil
}
