package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/merev/ds-scorekeeper/internal/display"
	"github.com/merev/ds-scorekeeper/internal/match"
	"github.com/merev/ds-scorekeeper/internal/storage/sqlite"
)

func main() {
	var (
		start   = flag.Int("start", 501, "starting score (301, 501 or 701)")
		mode    = flag.String("mode", string(match.FirstTo), "first-to or best-of")
		unit    = flag.String("unit", string(match.Legs), "legs or sets")
		target  = flag.Int("target", 1, "legs or sets to play for")
		doubles = flag.Bool("doubles", false, "ask for darts at a double")
		players = flag.String("players", "Player 1", "comma separated player names")
		starter = flag.Int("starter", 0, "index of the player who throws first")
		dbPath  = flag.String("db", "", "sqlite file to keep results in (in memory when empty)")
		lang    = flag.String("lang", os.Getenv("LANG"), "language for the stat tables (en, nl)")
	)
	flag.Parse()

	opts := options{
		Config: match.Config{
			StartingScore: *start,
			Mode:          match.Mode(*mode),
			Unit:          match.Unit(*unit),
			Target:        *target,
			TrackDoubles:  *doubles,
		},
		Players: parsePlayers(*players),
		Starter: *starter,
		Career:  *dbPath != "",
	}

	path := *dbPath
	if path == "" {
		path = ":memory:"
	}
	store, err := sqlite.Open(path)
	if err != nil {
		log.Fatalf("failed to open result store: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc := newScorer(store, display.New(display.ParseTag(*lang)), 5*time.Second)
	if err := sc.run(ctx, os.Stdin, os.Stdout, opts); err != nil {
		log.Fatalf("dart-scorer: %v", err)
	}
}

// parsePlayers turns "Anna, Bert" into players. The lowercased name is the
// id, so results in a -db file add up per name across runs.
func parsePlayers(list string) []match.Player {
	var out []match.Player
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, match.Player{ID: strings.ToLower(name), Name: name})
	}
	return out
}
