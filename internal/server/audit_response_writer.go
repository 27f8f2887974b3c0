package server

import (
	"bytes"
	"net/http"
)

// capturingWriter records the status and up to maxLoggedBody bytes of the
// response for the access log, cut on a rune boundary.
type capturingWriter struct {
	http.ResponseWriter
	status    int
	body      bytes.Buffer
	truncated bool
}

func capture(w http.ResponseWriter) *capturingWriter {
	return &capturingWriter{ResponseWriter: w}
}

func (w *capturingWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if !w.truncated && len(b) > 0 {
		if room := maxLoggedBody - w.body.Len(); len(b) > room {
			w.body.Write(b[:runeCut(b, room)])
			w.truncated = true
		} else {
			w.body.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

// Status defaults to 200 when the handler wrote nothing.
func (w *capturingWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *capturingWriter) Body() string {
	if w.truncated {
		return w.body.String() + "..."
	}
	return w.body.String()
}
