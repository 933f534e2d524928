// Package middleware holds the func(http.Handler) http.Handler wrappers
// mounted on the router: the authorization gate, login throttling and
// request logging.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/talker-api/internal/utils/response"
	"github.com/aanand-mishra/talker-api/internal/validation"
)

// RequireToken rejects requests whose Authorization header fails
// validation.AuthorizationChecks. Only the presence and the length of the
// header are inspected; any 16-character value is accepted.
func RequireToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")

			if f := validation.Run(token, validation.AuthorizationChecks...); f != nil {
				slog.Debug("authorization rejected",
					slog.String("path", r.URL.Path),
					slog.String("reason", f.Message))
				response.WriteMessage(w, f.Status, f.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
