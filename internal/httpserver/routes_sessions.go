// HTTP routes for solving sessions.
// Exposes:
//   - POST   /sessions               → create a session, returns token + first guess
//   - GET    /sessions/{id}          → current view
//   - POST   /sessions/{id}/feedback → apply one round of feedback
//   - DELETE /sessions/{id}          → abandon and forget the session
//
// A rejected feedback row (bad symbols, bad word) leaves the session exactly
// as it was. Once a session is solved, exhausted or abandoned, further
// feedback answers 409.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-assist/internal/session"
	"github.com/robalobadob/wordle-assist/internal/solver"
	"github.com/robalobadob/wordle-assist/internal/store"
)

type createRes struct {
	SessionID string       `json:"sessionId"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	View      session.View `json:"view"`
}

type feedbackReq struct {
	Result string `json:"result"`         // "bgyyb", or "w" for a win
	Word   string `json:"word,omitempty"` // the word actually entered, if it differs from the proposal
}

type errorRes struct {
	Error string        `json:"error"`
	View  *session.View `json:"view,omitempty"`
}

// mountSessions registers all /sessions routes.
func (s *Server) mountSessions(r chi.Router) {
	r.With(s.requireAPIKey).Post("/sessions", s.handleCreate)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleGet)
		r.Post("/feedback", s.handleFeedback)
		r.Delete("/", s.handleDelete)
	})
}

// handleCreate starts a session and proposes its first guess.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.newSession()
	if err != nil {
		log.Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if _, err := sess.Next(); err != nil {
		v := sess.View()
		writeSessionError(w, err, &v)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	tok, exp, err := s.signToken(sess.ID())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusCreated, createRes{
		SessionID: sess.ID(),
		Token:     tok,
		ExpiresAt: exp.UTC(),
		View:      sess.View(),
	})
}

// handleGet returns the current view.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	var v session.View
	err := s.store.Update(r.Context(), sessionID(r), func(sess *session.Session) error {
		v = sess.View()
		return nil
	})
	if err != nil {
		writeSessionError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleFeedback applies one round and proposes the next guess.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}

	// Validate everything before touching the session.
	in, err := session.ParseInput(req.Result)
	if err != nil || in.Kind == session.InputChange {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}
	word := strings.ToLower(strings.TrimSpace(req.Word))
	if word != "" && !solver.ValidWord(word) {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	// The view is built under the session lock; a concurrent request may
	// change the session as soon as Update returns.
	var v *session.View
	err = s.store.Update(r.Context(), sessionID(r), func(sess *session.Session) error {
		err := applyFeedback(sess, word, in)
		view := sess.View()
		v = &view
		return err
	})
	if err != nil {
		writeSessionError(w, err, v)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// applyFeedback substitutes word (if any), applies in and proposes the next guess.
func applyFeedback(sess *session.Session, word string, in session.Input) error {
	if word != "" && word != sess.Guess() {
		if err := sess.Submit(session.Input{Kind: session.InputChange, Word: word}); err != nil {
			return err
		}
	}
	if err := sess.Submit(in); err != nil {
		return err
	}
	if sess.State().Terminal() {
		return nil
	}
	_, err := sess.Next()
	return err
}

// handleDelete abandons the session and removes it from the store.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	var v session.View
	err := s.store.Update(r.Context(), id, func(sess *session.Session) error {
		sess.Abandon()
		v = sess.View()
		return nil
	})
	if err == nil {
		err = s.store.Delete(r.Context(), id)
	}
	if err != nil {
		writeSessionError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// writeSessionError maps domain errors to HTTP statuses. When v is
// non-nil it is included so clients can render the final state.
func writeSessionError(w http.ResponseWriter, err error, v *session.View) {
	res := errorRes{}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status, res.Error = http.StatusNotFound, "not_found"
	case errors.Is(err, solver.ErrInvalidFeedback), errors.Is(err, solver.ErrInvalidWord):
		status, res.Error = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, solver.ErrNoCandidates):
		status, res.Error = http.StatusConflict, "no_candidates"
	case errors.Is(err, session.ErrFinished), errors.Is(err, session.ErrNoGuess):
		status, res.Error = http.StatusConflict, "finished"
	default:
		log.Error().Err(err).Msg("session request failed")
		res.Error = "server_error"
	}
	if status != http.StatusNotFound {
		res.View = v
	}
	writeJSON(w, status, res)
}
