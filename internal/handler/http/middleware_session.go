package http

import (
	"net/http"

	"github.com/ashmarin/vault-serve/internal/logger"
)

// sessionHeader is the HTTP header carrying the session token.
const sessionHeader = "Session"

// withSession adopts the session token carried by an inbound request as
// the active session token for the whole process. Adoption is global, not
// per-request-scoped: a token adopted here affects every concurrently
// in-flight request on other connections. That is adequate for a
// single-user local daemon and is a documented scope limitation, not a
// multi-tenant mechanism.
//
// A request without the header leaves the previously active session in
// effect.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.Header.Get(sessionHeader); token != "" {
			h.state.AdoptToken(token)
			logger.FromRequest(r).Debug().Msg("session token adopted from request header")
		}

		next.ServeHTTP(w, r)
	})
}
