package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditManager_FlushesOnBatchSizeAndShutdown(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewAuditManager(2, 2, time.Hour, zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	for i := 0; i < 3; i++ {
		m.LogEntry(ctx, AccessLogEntry{Route: "/api/v1/return_requests", Method: "POST", StatusCode: 201})
	}

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("API call").Len() >= 2
	}, time.Second, 10*time.Millisecond)

	shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
	defer done()
	m.Shutdown(shutdownCtx)

	assert.Equal(t, 3, logs.FilterMessage("API call").Len())
	assert.Zero(t, m.Pending())
}

func TestAuditManager_FlushesOnTimeout(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewAuditManager(1, 10, 20*time.Millisecond, zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	m.LogEntry(ctx, AccessLogEntry{Route: "/api/v1/webhooks/carrier", Actor: "webhook:carrier"})

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("API call").Len() == 1
	}, time.Second, 10*time.Millisecond)

	entry := logs.FilterMessage("API call").All()[0]
	assert.Equal(t, "webhook:carrier", entry.ContextMap()["actor"])

	m.Shutdown(context.Background())
}

func TestCapturingWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	cw := capture(rr)

	_, _ = cw.Write(bytes.Repeat([]byte("a"), maxLoggedBody+10))
	cw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, cw.Status())
	assert.Len(t, cw.Body(), maxLoggedBody+3)
	assert.Equal(t, maxLoggedBody+10, rr.Body.Len())
}

func TestTruncate(t *testing.T) {
	pad := strings.Repeat("a", maxLoggedBody-1)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short body kept", in: "привет", want: "привет"},
		{name: "ascii cut at limit", in: strings.Repeat("a", maxLoggedBody+5), want: strings.Repeat("a", maxLoggedBody) + "..."},
		{name: "multibyte rune straddling the limit is dropped", in: pad + "ééé", want: pad + "..."},
		{name: "four byte rune", in: pad[:maxLoggedBody-2] + "😀", want: pad[:maxLoggedBody-2] + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestCapturingWriter_CutsOnRuneBoundary(t *testing.T) {
	rr := httptest.NewRecorder()
	cw := capture(rr)

	body := strings.Repeat("a", maxLoggedBody-1) + "ёж"
	_, _ = cw.Write([]byte(body))
	_, _ = cw.Write([]byte("tail"))

	assert.Equal(t, strings.Repeat("a", maxLoggedBody-1)+"...", cw.Body())
	assert.True(t, utf8.ValidString(cw.Body()))
	assert.Equal(t, body+"tail", rr.Body.String())
}
