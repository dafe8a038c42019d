package game

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/merev/ds-scorekeeper/internal/checkout"
	"github.com/merev/ds-scorekeeper/internal/match"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// POST /api/matches
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	view, err := h.svc.CreateMatch(ctx, req)
	if err != nil {
		http.Error(w, "failed to create match: "+err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// GET /api/matches/{id}
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing match id", http.StatusBadRequest)
		return
	}

	view, err := h.svc.Get(id)
	if err != nil {
		writeError(w, "failed to load match", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// DELETE /api/matches/{id}
func (h *Handler) DiscardMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Discard(id); err != nil {
		writeError(w, "failed to discard match", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/matches/{id}/turns
func (h *Handler) PostTurn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score == nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	view, err := h.svc.SubmitTurn(ctx, chi.URLParam(r, "id"), *req.Score)
	if err != nil {
		writeError(w, "failed to register turn", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// POST /api/matches/{id}/checkout
func (h *Handler) PostCheckoutDarts(w http.ResponseWriter, r *http.Request) {
	h.postDarts(w, r, h.svc.ConfirmCheckout)
}

// POST /api/matches/{id}/doubles
func (h *Handler) PostDoubleAttempts(w http.ResponseWriter, r *http.Request) {
	h.postDarts(w, r, h.svc.ConfirmDoubles)
}

func (h *Handler) postDarts(w http.ResponseWriter, r *http.Request, confirm func(context.Context, string, int) (MatchView, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var req DartsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Darts == nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	view, err := confirm(ctx, chi.URLParam(r, "id"), *req.Darts)
	if err != nil {
		writeError(w, "failed to register darts", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// POST /api/matches/{id}/undo
func (h *Handler) UndoLastTurn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	view, err := h.svc.Undo(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "failed to undo turn", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// POST /api/matches/{id}/persist
func (h *Handler) PersistMatch(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Persist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "failed to save match", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GET /api/checkout/{score}
func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.Atoi(chi.URLParam(r, "score"))
	if err != nil {
		http.Error(w, "score must be a number", http.StatusBadRequest)
		return
	}

	info := checkout.Analyze(score)
	writeJSON(w, http.StatusOK, struct {
		Score int `json:"score"`
		checkout.Info
		Band []int `json:"band,omitempty"`
	}{
		Score: score,
		Info:  info,
		Band:  finishBand(score),
	})
}

// finishBand lists the dart counts asked for when score is checked out, nil
// when score is not a finish.
func finishBand(score int) []int {
	if score < checkout.MinFinish || score > checkout.MaxFinish || checkout.SetupDarts(score) < 0 {
		return nil
	}
	return checkout.BandFor(score).Options()
}

// GET /api/players/{id}/career
func (h *Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	career, err := h.svc.Career(ctx, chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "failed to load career: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, career)
}

// statusFor maps engine and service errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, match.ErrInvalidScore), errors.Is(err, match.ErrInvalidDartCount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, match.ErrAwaitingInput),
		errors.Is(err, match.ErrNoPendingInput),
		errors.Is(err, match.ErrNotInProgress),
		errors.Is(err, match.ErrNothingToUndo),
		errors.Is(err, match.ErrNotComplete):
		return http.StatusConflict
	case errors.Is(err, ErrPersistFailed):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, msg string, err error) {
	http.Error(w, msg+": "+err.Error(), statusFor(err))
}

// Helper to write JSON responses.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
