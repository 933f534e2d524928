// Package login serves POST /login.
//
// There is no user database: any body that passes validation.LoginChecks
// gets a fresh token. Nothing about the token is remembered.
package login

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/talker-api/internal/types"
	"github.com/aanand-mishra/talker-api/internal/utils/request"
	"github.com/aanand-mishra/talker-api/internal/utils/response"
	"github.com/aanand-mishra/talker-api/internal/validation"
)

// TokenFunc produces a new session token. token.New in production.
type TokenFunc func() (string, error)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /login
//
// Request body (JSON):
//
//	{ "email": "email@email.com", "password": "123456" }
//
// Success response (200 OK):
//
//	{ "token": "7f3a9c01d2e4b865" }
//
// ─────────────────────────────────────────────────────────────────────────────
func New(newToken TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LoginRequest
		if err := request.DecodeJSON(w, r, &req); err != nil {
			slog.Debug("rejecting login body", slog.String("error", err.Error()))
			response.WriteMessage(w, http.StatusBadRequest, response.MsgInvalidBody)
			return
		}

		if f := validation.Run(req, validation.LoginChecks...); f != nil {
			response.WriteMessage(w, f.Status, f.Message)
			return
		}

		tok, err := newToken()
		if err != nil {
			slog.Error("error generating token", slog.String("error", err.Error()))
			response.WriteInternalError(w)
			return
		}

		slog.Info("login issued token")
		response.WriteJSON(w, http.StatusOK, types.Token{Token: tok})
	}
}
