package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"github.com/trialworks/protodraft/pkg/utils/errutil"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // header already committed
}

// handleError maps domain errors to HTTP status codes
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidProfile):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
	case errors.Is(err, types.ErrNotFound):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
	case errors.Is(err, types.ErrRetrievalUnavailable):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusServiceUnavailable)
	default:
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrInvalidProfile, "failed to decode request body", goerr.V("error", err.Error()))
	}
	return nil
}

// queryInt reads an integer query parameter, falling back on absence
// or garbage.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var profile model.TrialProfile
	if err := decodeBody(r, &profile); err != nil {
		handleError(w, r, err)
		return
	}

	outcome, err := s.uc.Generate(r.Context(), &profile)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, outcome)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var profile model.TrialProfile
	if err := decodeBody(r, &profile); err != nil {
		handleError(w, r, err)
		return
	}

	outcome, err := s.uc.ValidateProfile(r.Context(), &profile)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

type exportRequest struct {
	ProtocolID string `json:"protocol_id"`
	Format     string `json:"format"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	format, err := types.ParseExportFormat(req.Format)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	result, err := s.uc.Export(r.Context(), model.ProtocolID(req.ProtocolID), format)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleListProtocols(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)

	outcomes, err := s.uc.ListOutcomes(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"protocols": outcomes,
		"count":     len(outcomes),
	})
}

func (s *Server) handleGetProtocol(w http.ResponseWriter, r *http.Request) {
	id := model.ProtocolID(chi.URLParam(r, "protocolID"))

	outcome, err := s.uc.GetOutcome(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleDeleteProtocol(w http.ResponseWriter, r *http.Request) {
	id := model.ProtocolID(chi.URLParam(r, "protocolID"))

	if err := s.uc.DeleteOutcome(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"protocol_id": id.String(),
		"status":      "deleted",
	})
}

type addExampleRequest struct {
	ProtocolID string `json:"protocol_id"`
}

func (s *Server) handleAddExample(w http.ResponseWriter, r *http.Request) {
	var req addExampleRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	example, err := s.uc.AddExample(r.Context(), model.ProtocolID(req.ProtocolID))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, example)
}

func (s *Server) handleSearchExamples(w http.ResponseWriter, r *http.Request) {
	var profile model.TrialProfile
	if err := decodeBody(r, &profile); err != nil {
		handleError(w, r, err)
		return
	}
	k := queryInt(r, "k", 3)

	results, err := s.uc.SearchExamples(r.Context(), &profile, k)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

func (s *Server) handleListExamples(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)

	examples, err := s.uc.ListExamples(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"examples": examples,
		"count":    len(examples),
	})
}

func (s *Server) handleGetExample(w http.ResponseWriter, r *http.Request) {
	id := model.ExampleID(chi.URLParam(r, "exampleID"))

	example, err := s.uc.GetExample(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, example)
}

func (s *Server) handleDeleteExample(w http.ResponseWriter, r *http.Request) {
	id := model.ExampleID(chi.URLParam(r, "exampleID"))

	if err := s.uc.DeleteExample(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"example_id": id.String(),
		"status":     "deleted",
	})
}

func (s *Server) handleSeedExamples(w http.ResponseWriter, r *http.Request) {
	count, err := s.uc.SeedExamples(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"seeded": count,
	})
}

func (s *Server) handleExampleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.uc.GetExampleStats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
