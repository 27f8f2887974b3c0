package server

import (
	"net/http"
	"strings"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/lifecycle"
)

const (
	headerActor         = "X-Actor"
	headerCustomerEmail = "X-Customer-Email"
)

// actorFrom resolves who is acting on the request: an explicit X-Actor wins,
// then a customer email, then fallback. System actors are reserved for
// in-process workers and are never taken from a header.
func actorFrom(r *http.Request, fallback string) string {
	if actor := strings.TrimSpace(r.Header.Get(headerActor)); actor != "" && !reservedActor(actor) {
		return actor
	}
	if email := strings.TrimSpace(r.Header.Get(headerCustomerEmail)); email != "" {
		return lifecycle.CustomerActor(email)
	}
	return fallback
}

func reservedActor(actor string) bool {
	actor = strings.ToLower(actor)
	return actor == lifecycle.ActorSystem || strings.HasPrefix(actor, lifecycle.ActorSystem+":")
}
