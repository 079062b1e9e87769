package server

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/jrsteele09/go-seller-bootstrap/bootstrap"
)

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	App           string            `json:"app"`
	Env           string            `json:"env"`
	Bootstrap     *bootstrap.Result `json:"bootstrap,omitempty"`
	CurrentUser   string            `json:"current_user,omitempty"`
	StorageBucket string            `json:"storage_bucket,omitempty"`
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}

// StatusHandler reports 503 until the startup bootstrap has finished.
func (s *Server) StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{
			App:           s.config.GetAppName(),
			Env:           s.env,
			StorageBucket: s.bucket,
		}
		if current := s.auth.CurrentUser(); current != nil {
			resp.CurrentUser = current.Email
		}

		result, ok := s.status.LastResult()
		if !ok {
			writeJSON(w, resp, http.StatusServiceUnavailable)
			return
		}
		resp.Bootstrap = &result
		writeJSON(w, resp, http.StatusOK)
	}
}

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	data, err := sonic.Marshal(v)
	if err != nil {
		writeJSONError(w, "internal_error", err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(data)
}

func writeJSONError(w http.ResponseWriter, errorCode, description string, statusCode int) {
	data, _ := sonic.Marshal(map[string]string{
		"error":             errorCode,
		"error_description": description,
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(data)
}
