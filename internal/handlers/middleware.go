package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// Recover converts panics into the same uniform 500 payload every other
// failure kind uses, instead of chi's plain-text recoverer output.
func (h *Handler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("panic recovered")
				h.writeErrorResponse(w, r, http.StatusInternalServerError,
					h.resolve(r, "internal.server.error", nil), nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
