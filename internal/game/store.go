package game

import (
	"context"
	"time"

	"github.com/merev/ds-scorekeeper/internal/match"
	"github.com/merev/ds-scorekeeper/internal/stats"
)

// MatchRecord is the header row written once per completed match.
type MatchRecord struct {
	Config    match.Config
	Players   []match.Player
	WinnerID  string
	CreatedAt time.Time
}

// ResultStore receives final results. CreateMatchRecord is called once per
// match, then SavePlayerStats once per player.
type ResultStore interface {
	CreateMatchRecord(ctx context.Context, rec MatchRecord) (string, error)
	SavePlayerStats(ctx context.Context, matchID, playerID string, rec stats.FinalStatsRecord) error
	PlayerHistory(ctx context.Context, playerID string) ([]stats.FinalStatsRecord, error)
}
