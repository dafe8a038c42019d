package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/merev/ds-scorekeeper/internal/match"
	"github.com/merev/ds-scorekeeper/internal/stats"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrPersistFailed = errors.New("saving match result failed")
)

const subscriberBuffer = 16

// Service hosts live matches. Every match is a session whose state only
// changes by swapping in the value returned from a match transition, under
// the session mutex.
type Service struct {
	store          ResultStore
	persistTimeout time.Duration
	tracer         trace.Tracer

	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	mu        sync.Mutex
	id        string
	state     match.State
	last      *match.Outcome
	recordID  string // set once CreateMatchRecord succeeded, reused on retries
	createdAt time.Time
	subs      map[chan MatchView]struct{}
	discarded bool
}

func NewService(store ResultStore, persistTimeout time.Duration) *Service {
	if persistTimeout <= 0 {
		persistTimeout = 5 * time.Second
	}
	return &Service{
		store:          store,
		persistTimeout: persistTimeout,
		tracer:         otel.Tracer("github.com/merev/ds-scorekeeper/internal/game"),
		sessions:       make(map[string]*session),
	}
}

// CreateMatch sets up a match and seats the players in starting order.
func (sv *Service) CreateMatch(ctx context.Context, req CreateMatchRequest) (MatchView, error) {
	state, err := match.New(req.Players, req.Config)
	if err != nil {
		return MatchView{}, err
	}
	state, out, err := state.Start(req.Start)
	if err != nil {
		return MatchView{}, err
	}

	sess := &session{
		id:        uuid.NewString(),
		state:     state,
		last:      &out,
		createdAt: time.Now().UTC(),
		subs:      make(map[chan MatchView]struct{}),
	}

	sv.mu.Lock()
	sv.sessions[sess.id] = sess
	sv.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked(), nil
}

// Get returns the current view of a match.
func (sv *Service) Get(id string) (MatchView, error) {
	sess, err := sv.lookup(id)
	if err != nil {
		return MatchView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked(), nil
}

// Discard drops a match from memory and closes its streams.
func (sv *Service) Discard(id string) error {
	sv.mu.Lock()
	sess, ok := sv.sessions[id]
	delete(sv.sessions, id)
	sv.mu.Unlock()
	if !ok {
		return ErrMatchNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.discarded = true
	for ch := range sess.subs {
		close(ch)
		delete(sess.subs, ch)
	}
	return nil
}

func (sv *Service) SubmitTurn(ctx context.Context, id string, score int) (MatchView, error) {
	return sv.apply(ctx, id, func(s match.State) (match.State, match.Outcome, error) {
		return s.SubmitTurn(score)
	})
}

func (sv *Service) ConfirmCheckout(ctx context.Context, id string, darts int) (MatchView, error) {
	return sv.apply(ctx, id, func(s match.State) (match.State, match.Outcome, error) {
		return s.ConfirmCheckoutDartCount(darts)
	})
}

func (sv *Service) ConfirmDoubles(ctx context.Context, id string, darts int) (MatchView, error) {
	return sv.apply(ctx, id, func(s match.State) (match.State, match.Outcome, error) {
		return s.ConfirmDoubleDisambiguation(darts)
	})
}

func (sv *Service) Undo(ctx context.Context, id string) (MatchView, error) {
	return sv.apply(ctx, id, func(s match.State) (match.State, match.Outcome, error) {
		return s.Undo()
	})
}

// Persist saves a completed match. Calling it again after a successful save,
// or while one is running, is a no-op.
func (sv *Service) Persist(ctx context.Context, id string) (MatchView, error) {
	sess, err := sv.lookup(id)
	if err != nil {
		return MatchView{}, err
	}
	return sv.persist(ctx, sess)
}

// Career aggregates every stored match of a player.
func (sv *Service) Career(ctx context.Context, playerID string) (stats.Career, error) {
	history, err := sv.store.PlayerHistory(ctx, playerID)
	if err != nil {
		return stats.Career{}, err
	}
	return stats.Aggregate(history), nil
}

// Subscribe streams a view after every change of the match. The returned
// cancel func must be called once the caller stops reading.
func (sv *Service) Subscribe(id string) (<-chan MatchView, func(), error) {
	sess, err := sv.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	return sess.subscribe()
}

// subscribe refuses a session discarded after it was looked up: its streams
// are already closed and nothing feeds it any more.
func (s *session) subscribe() (<-chan MatchView, func(), error) {
	s.mu.Lock()
	if s.discarded {
		s.mu.Unlock()
		return nil, nil, ErrMatchNotFound
	}
	ch := make(chan MatchView, subscriberBuffer)
	s.subs[ch] = struct{}{}
	ch <- s.viewLocked()
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
	return ch, cancel, nil
}

func (sv *Service) lookup(id string) (*session, error) {
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	sess, ok := sv.sessions[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return sess, nil
}

type transition func(match.State) (match.State, match.Outcome, error)

func (sv *Service) apply(ctx context.Context, id string, fn transition) (MatchView, error) {
	sess, err := sv.lookup(id)
	if err != nil {
		return MatchView{}, err
	}

	sess.mu.Lock()
	next, out, err := fn(sess.state)
	if err != nil {
		view := sess.viewLocked()
		sess.mu.Unlock()
		return view, err
	}
	sess.state = next
	sess.last = &out
	view := sess.viewLocked()
	sess.broadcastLocked(view)
	sess.mu.Unlock()

	if out.MatchWon {
		// a failed save is logged and left for a retry; the finished match is still shown
		view, _ = sv.persist(ctx, sess)
	}
	return view, nil
}

func (sv *Service) persist(ctx context.Context, sess *session) (MatchView, error) {
	sess.mu.Lock()
	next, err := sess.state.BeginPersist()
	if err != nil {
		view := sess.viewLocked()
		sess.mu.Unlock()
		if errors.Is(err, match.ErrAlreadyPersisted) || errors.Is(err, match.ErrPersistInFlight) {
			return view, nil
		}
		return view, err
	}
	sess.state = next
	results, err := next.FinalStats()
	if err != nil {
		sess.state = sess.state.FailPersist()
		view := sess.viewLocked()
		sess.mu.Unlock()
		return view, err
	}
	rec := MatchRecord{
		Config:    next.Config,
		Players:   next.Players,
		WinnerID:  next.Players[next.Winner].ID,
		CreatedAt: sess.createdAt,
	}
	recordID := sess.recordID
	sess.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sv.persistTimeout)
	defer cancel()
	ctx, span := sv.tracer.Start(ctx, "game.persist", trace.WithAttributes(
		attribute.String("match.session_id", sess.id),
		attribute.Int("match.players", len(results)),
	))
	defer span.End()

	recordID, err = sv.save(ctx, recordID, rec, results)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if recordID != "" {
		sess.recordID = recordID
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("persist match %s: %v", sess.id, err)

		sess.state = sess.state.FailPersist()
		view := sess.viewLocked()
		sess.broadcastLocked(view)
		return view, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	sess.state = sess.state.FinishPersist(recordID)
	view := sess.viewLocked()
	sess.broadcastLocked(view)
	log.Printf("match %s saved as %s", sess.id, recordID)
	return view, nil
}

// save writes the match header (unless an earlier attempt already did) and
// every player's record. It returns the record id even when a player fails.
func (sv *Service) save(ctx context.Context, recordID string, rec MatchRecord, results []match.PlayerResult) (string, error) {
	if recordID == "" {
		id, err := sv.store.CreateMatchRecord(ctx, rec)
		if err != nil {
			return "", fmt.Errorf("create match record: %w", err)
		}
		recordID = id
	}
	for _, r := range results {
		if err := sv.store.SavePlayerStats(ctx, recordID, r.Player.ID, r.Stats); err != nil {
			return recordID, fmt.Errorf("save stats for %s: %w", r.Player.ID, err)
		}
	}
	return recordID, nil
}

func (s *session) viewLocked() MatchView {
	st := s.state
	v := MatchView{
		ID:          s.id,
		Config:      st.Config,
		Players:     st.Players,
		Scores:      st.Scores,
		Averages:    make([]float64, len(st.Scores)),
		Current:     st.Current,
		Phase:       st.Phase,
		Pending:     st.Pending,
		CanUndo:     st.CanUndo(),
		Persistence: st.Persistence,
		LastOutcome: s.last,
		CreatedAt:   s.createdAt,
	}
	for i, ps := range st.Scores {
		v.Averages[i] = stats.ThreeDartAverage(ps.TotalScore, ps.TotalDarts)
	}
	if st.Winner >= 0 {
		w := st.Players[st.Winner]
		v.Winner = &w
	}
	if results, err := st.FinalStats(); err == nil {
		v.Results = results
	}
	return v
}

// broadcastLocked never blocks: a subscriber that falls behind misses views.
func (s *session) broadcastLocked(v MatchView) {
	for ch := range s.subs {
		select {
		case ch <- v:
		default:
		}
	}
}
