package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/rpgo/compound-interest/internal/config"
	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/internal/output"
)

const maxBodyBytes = 1 << 20

// ProjectionResponse wraps a single projection with an identifier.
type ProjectionResponse struct {
	ID     string                  `json:"id"`
	Input  domain.ProjectionInput  `json:"input"`
	Result domain.ProjectionResult `json:"result"`
}

// ScenariosResponse wraps a scenario comparison with an identifier.
type ScenariosResponse struct {
	ID string `json:"id"`
	*domain.ScenarioComparison
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string                `json:"error"`
	Kind      domain.ValidationKind `json:"kind,omitempty"`
	Field     string                `json:"field,omitempty"`
	RequestID string                `json:"request_id,omitempty"`
}

var contentTypes = map[string]string{
	"console":      "text/plain; charset=utf-8",
	"csv":          "text/csv",
	"detailed-csv": "text/csv",
	"yaml":         "application/yaml",
	"chart-json":   "application/json",
	"json":         "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, domain.DefaultProjectionInput())
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{
		"formats": output.AvailableFormatterNames(),
		"aliases": output.AvailableFormatAliases(),
	})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !s.decode(w, r, &input) {
		return
	}

	result, err := s.engine.Calculate(input)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, ProjectionResponse{
		ID:     uuid.New().String(),
		Input:  input,
		Result: *result,
	})
}

// handleScenarios runs a whole configuration. ?format= selects any registered formatter.
func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	format := output.NormalizeFormatName(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	if output.GetFormatterByName(format) == nil {
		s.writeError(w, r, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("%v: %q (available: %s)", output.ErrUnsupportedFormat, format, strings.Join(output.AvailableFormatterNames(), ", ")),
		})
		return
	}

	var cfg domain.Configuration
	if !s.decode(w, r, &cfg) {
		return
	}
	if err := s.parser.ValidateConfiguration(&cfg); err != nil {
		s.writeFailure(w, r, err)
		return
	}

	comparison, err := s.engine.RunScenarios(&cfg)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	if format == "json" {
		s.writeJSON(w, http.StatusOK, ScenariosResponse{ID: uuid.New().String(), ScenarioComparison: comparison})
		return
	}
	body, err := output.Render(comparison, format)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.log.Error().Err(err).Msg("Failed to write report response")
	}
}

// decode reads a JSON body. Unknown compounding frequencies fail here and map to 422.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if _, ok := domain.AsValidationError(err); ok {
			s.writeFailure(w, r, err)
			return false
		}
		s.writeError(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// writeFailure maps engine and configuration errors to 422; anything else is a 500.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		s.writeError(w, r, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: ve.Kind, Field: ve.Field})
		return
	}
	if errors.Is(err, config.ErrInvalidConfiguration) {
		s.writeError(w, r, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	s.log.Error().Err(err).Msg("Projection failed")
	s.writeError(w, r, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, body ErrorResponse) {
	body.RequestID = middleware.GetReqID(r.Context())
	s.writeJSON(w, status, body)
}
