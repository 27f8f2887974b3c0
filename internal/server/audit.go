package server

import (
	"time"
)

// AccessLogEntry describes one handled API call.
type AccessLogEntry struct {
	Timestamp       time.Time     `json:"timestamp"`
	Route           string        `json:"route"`
	Method          string        `json:"method"`
	Path            string        `json:"path"`
	StatusCode      int           `json:"status_code"`
	Duration        time.Duration `json:"duration"`
	Actor           string        `json:"actor,omitempty"`
	ReturnRequestID string        `json:"return_request_id,omitempty"`
	Request         string        `json:"request,omitempty"`
	Response        string        `json:"response,omitempty"`
}
