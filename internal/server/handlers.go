package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/cv-tailor/internal/arbiter"
	"github.com/jonathan/cv-tailor/internal/generation"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/jonathan/cv-tailor/internal/scoring"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

// ArbitrateRequest represents the request body for /arbitrate
type ArbitrateRequest struct {
	Original  string `json:"original" validate:"required"`
	Candidate string `json:"candidate" validate:"required"`
}

// BatchRequest represents the request body for /batch. Empty slices are
// valid and produce an empty, methodology-preserving result.
type BatchRequest struct {
	Originals  []string `json:"originals"`
	Candidates []string `json:"candidates"`
}

// TailorRequest represents the request body for /tailor. When Candidate is
// empty the server's generator produces one per section.
type TailorRequest struct {
	Document  string `json:"document" validate:"required"`
	JobText   string `json:"job_text,omitempty"`
	Candidate string `json:"candidate,omitempty"`
}

// ProfileResponse describes one registered weight profile.
type ProfileResponse struct {
	Name       string             `json:"name"`
	Dimensions map[string]float64 `json:"dimensions"`
	Fallback   map[string]float64 `json:"fallback,omitempty"`
}

// decodeAndValidate parses a JSON request body and applies validation tags.
// It writes the error response itself and reports whether to proceed.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleAnalyze scores one text unit across all four stages.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	result := scoring.Analyze(req.Text)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleArbitrate decides between an original and a rewritten text unit.
func (s *Server) handleArbitrate(w http.ResponseWriter, r *http.Request) {
	var req ArbitrateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	decision := arbiter.Arbitrate(req.Original, req.Candidate)
	s.jsonResponse(w, http.StatusOK, decision)
}

// handleBatch arbitrates whole slices of text units pairwise.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	result := arbiter.RunBatch(req.Originals, req.Candidates)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleTailor runs the full document pipeline.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if req.Candidate == "" && s.generator == nil {
		s.errorResponse(w, http.StatusBadRequest,
			"candidate is required when the server has no generator configured")
		return
	}

	var gen generation.Generator
	if req.Candidate == "" {
		gen = s.generator
	}
	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		Document:  req.Document,
		JobText:   req.JobText,
		Candidate: req.Candidate,
		Generator: gen,
		Logger:    s.logger,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "tailoring failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleProfiles lists the registered weight profiles.
func (s *Server) handleProfiles(w http.ResponseWriter, _ *http.Request) {
	profiles := make([]ProfileResponse, 0)
	for _, name := range scoring.ProfileNames() {
		profile, err := scoring.Profile(name)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp := ProfileResponse{Name: name, Dimensions: weightMap(profile.Dimensions)}
		if profile.Fallback != nil {
			resp.Fallback = weightMap(profile.Fallback.Dimensions)
		}
		profiles = append(profiles, resp)
	}
	s.jsonResponse(w, http.StatusOK, profiles)
}

func weightMap(dims []scoring.DimensionWeight) map[string]float64 {
	m := make(map[string]float64, len(dims))
	for _, d := range dims {
		m[d.ID] = d.Weight
	}
	return m
}
