package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ovtools/ovmcp/internal/envelope"
)

// HealthzResponse is the body of GET /healthz.
type HealthzResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	InFlight      int    `json:"in_flight"`
}

// OperationInfo is one entry of the GET /v1/operations listing.
type OperationInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// handleHealthz handles GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthzResponse{
		Status:        "ok",
		Version:       s.version,
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		InFlight:      len(s.dispatcher.InFlight()),
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleListOperations handles GET /v1/operations.
func (s *Server) handleListOperations(w http.ResponseWriter, r *http.Request) {
	ops := s.dispatcher.Operations()
	infos := make([]OperationInfo, 0, len(ops))
	for _, op := range ops {
		infos = append(infos, OperationInfo{
			Name:        op.Name,
			Description: op.Description,
			InputSchema: op.InputSchema,
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"operations": infos,
		"count":      len(infos),
	})
}

// handleInvoke handles POST /v1/operations/{name}. The body is the
// operation's parameter object; the response body is always the result
// envelope, with the HTTP status derived from the error category.
func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var args map[string]any
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			res := envelope.Fail(envelope.InvalidParameters, "request body must be a JSON object")
			s.writeJSON(w, http.StatusBadRequest, res)
			return
		}
	}

	result := s.dispatcher.Invoke(r.Context(), name, args)
	s.writeJSON(w, statusFor(result), result)
}

// handleInFlight handles GET /v1/inflight.
func (s *Server) handleInFlight(w http.ResponseWriter, r *http.Request) {
	invocations := s.dispatcher.InFlight()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"in_flight": invocations,
		"count":     len(invocations),
	})
}

// statusFor maps an envelope to an HTTP status code.
func statusFor(res envelope.Result) int {
	if res.Success {
		return http.StatusOK
	}
	switch res.Error.Category {
	case envelope.UnknownOperation:
		return http.StatusNotFound
	case envelope.InvalidParameters, envelope.InvalidInput:
		return http.StatusBadRequest
	case envelope.DisallowedOperation:
		return http.StatusForbidden
	case envelope.NotInstalled, envelope.NotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
