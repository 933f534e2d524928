package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aanand-mishra/talker-api/internal/utils/response"
	"github.com/go-chi/httprate"
)

// MsgTooManyRequests is sent with 429 responses.
const MsgTooManyRequests = "too many requests"

// RateLimit allows limit requests per window for each client IP, using
// httprate's sliding window counter. A limit of 0 or less disables it.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			response.WriteMessage(w, http.StatusTooManyRequests, MsgTooManyRequests)
		}),
	)
}
