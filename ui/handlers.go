package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"lrslens/domain/core"
	"lrslens/internal/errors"
	"lrslens/ports"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"snapshot_id": snap.ID,
		"loaded_at":   snap.LoadedAt,
	})
}

func (s *Server) handleAdminView(w http.ResponseWriter, r *http.Request) {
	overview := s.reports.AdminOverview(s.snapshot())
	s.archiveView(r.Context(), "admin", overview)
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleLearnerView(w http.ResponseWriter, r *http.Request) {
	overview, err := s.reports.LearnerOverview(s.snapshot())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.archiveView(r.Context(), "learner", overview)
	writeJSON(w, http.StatusOK, overview)
}

// handleRefresh reloads the four extracts and swaps the snapshot in, the
// dashboard's data-refresh trigger. The old snapshot stays valid for
// requests already composing from it.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	snap, err := s.loader.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.swapSnapshot(snap)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot_id": snap.ID,
		"loaded_at":   snap.LoadedAt,
		"statements":  len(snap.Statements),
	})
}

func (s *Server) handleRecentRuns(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.writeError(w, errors.NotFound("run archive"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.archive.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// archiveView stores a composed view best-effort; archiving failures never
// fail the request.
func (s *Server) archiveView(ctx context.Context, view string, payload interface{}) {
	if s.archive == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Warn("failed to marshal %s view for archiving: %v", view, err)
		return
	}
	run := ports.ArchivedRun{
		ID:        core.NewRunID(),
		View:      view,
		Payload:   body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.archive.Save(ctx, run); err != nil {
		s.log.Warn("failed to archive %s view: %v", view, err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeSchemaMismatch, errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeMalformedScore:
		status = http.StatusUnprocessableEntity
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	s.log.Error("request failed: %v", err)
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already written; an encode failure can only be dropped.
	_ = json.NewEncoder(w).Encode(payload)
}
