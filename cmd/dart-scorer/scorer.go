package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/merev/ds-scorekeeper/internal/display"
	"github.com/merev/ds-scorekeeper/internal/game"
	"github.com/merev/ds-scorekeeper/internal/match"
)

const undoCommand = "u"

var errInputEnded = errors.New("input ended before the match was decided")

type options struct {
	Config  match.Config
	Players []match.Player
	Starter int
	Career  bool
}

// scorer plays one match read line by line: a visit score, an answer to a
// dart count prompt, or "u" to take the last visit back.
type scorer struct {
	svc *game.Service
	f   *display.Formatter
}

func newScorer(store game.ResultStore, f *display.Formatter, persistTimeout time.Duration) *scorer {
	return &scorer{svc: game.NewService(store, persistTimeout), f: f}
}

func (s *scorer) run(ctx context.Context, in io.Reader, out io.Writer, opts options) error {
	view, err := s.svc.CreateMatch(ctx, game.CreateMatchRequest{
		Players: opts.Players,
		Config:  opts.Config,
		Start:   match.StartOrder{Winner: opts.Starter},
	})
	if err != nil {
		return err
	}
	defer func() { _ = s.svc.Discard(view.ID) }()

	lines := bufio.NewScanner(in)
	for view.Phase != match.Complete {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, prompt(view))
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				return err
			}
			return errInputEnded
		}

		next, err := s.step(ctx, view, strings.TrimSpace(lines.Text()))
		if err != nil {
			if errors.Is(err, game.ErrMatchNotFound) {
				return err
			}
			fmt.Fprintf(out, "! %v\n", err)
			continue
		}
		view = next
		if line := describe(view); line != "" {
			fmt.Fprintln(out, line)
		}
	}

	return s.report(ctx, out, view, opts.Career)
}

func (s *scorer) step(ctx context.Context, view game.MatchView, line string) (game.MatchView, error) {
	if line == undoCommand {
		return s.svc.Undo(ctx, view.ID)
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return view, fmt.Errorf("%q is not a number", line)
	}

	switch view.Pending.Kind {
	case match.PendingCheckoutDarts:
		return s.svc.ConfirmCheckout(ctx, view.ID, n)
	case match.PendingDoubles:
		return s.svc.ConfirmDoubles(ctx, view.ID, n)
	default:
		return s.svc.SubmitTurn(ctx, view.ID, n)
	}
}

func (s *scorer) report(ctx context.Context, out io.Writer, view game.MatchView, career bool) error {
	if view.Winner != nil {
		fmt.Fprintln(out, s.f.WinnerLine(view.Winner.Name))
	}
	fmt.Fprintln(out)
	if err := s.f.WriteResults(out, view.Results); err != nil {
		return err
	}

	if view.Persistence.Status != match.PersistDone {
		// auto-save failed; one explicit retry before giving up
		retried, err := s.svc.Persist(ctx, view.ID)
		if err != nil {
			return err
		}
		view = retried
	}
	if !career {
		return nil
	}

	for _, p := range view.Players {
		c, err := s.svc.Career(ctx, p.ID)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err := s.f.WriteCareer(out, p.Name, c); err != nil {
			return err
		}
	}
	return nil
}

func prompt(v game.MatchView) string {
	p := v.Players[v.Current]
	remaining := v.Scores[v.Current].Remaining
	switch v.Pending.Kind {
	case match.PendingCheckoutDarts:
		return fmt.Sprintf("%s checked out %d, darts at the double %v? ", p.Name, v.Pending.Score, v.Pending.Options)
	case match.PendingDoubles:
		return fmt.Sprintf("%s scored %d, darts at a double %v? ", p.Name, v.Pending.Score, v.Pending.Options)
	default:
		return fmt.Sprintf("%s (%d) > ", p.Name, remaining)
	}
}

// describe summarises the last transition, or returns "" when the scoreboard
// prompt already says it all.
func describe(v game.MatchView) string {
	o := v.LastOutcome
	if o == nil {
		return ""
	}
	name := v.Players[o.Player].Name
	switch {
	case o.MatchWon:
		return fmt.Sprintf("Game shot, and the match, %s!", name)
	case o.SetWon:
		return fmt.Sprintf("Game shot, and the set, %s.", name)
	case o.LegWon:
		return fmt.Sprintf("Game shot, %s.", name)
	case o.Kind == match.OutcomeBust:
		return fmt.Sprintf("%s bust on %d.", name, o.Score)
	case o.Kind == match.OutcomeUndone:
		return "Last visit undone."
	default:
		return ""
	}
}
