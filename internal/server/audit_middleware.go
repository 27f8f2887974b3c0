package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/lifecycle"
)

const maxLoggedBody = 2048

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		entry := AccessLogEntry{
			Timestamp: start,
			Method:    r.Method,
			Path:      r.URL.Path,
			Route:     routeName(r),
			Actor:     actorFrom(r, ""),
		}
		if strings.HasPrefix(entry.Route, "/api/v1/return_requests/{id") {
			entry.ReturnRequestID = mux.Vars(r)["id"]
		}
		if strings.HasPrefix(entry.Route, "/api/v1/webhooks/") {
			entry.Actor = lifecycle.ActorCarrierWebhook
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = truncate(string(requestBody))
		}

		cw := capture(w)
		next.ServeHTTP(cw, r)

		entry.StatusCode = cw.Status()
		entry.Duration = time.Since(start)
		entry.Response = cw.Body()

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func routeName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unknown"
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return "unknown"
	}
	return tpl
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:runeCut(s, maxLoggedBody)] + "..."
}

// runeCut moves n back to the start of the rune it falls inside.
func runeCut[T string | []byte](s T, n int) int {
	for n > 0 && n < len(s) && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}
