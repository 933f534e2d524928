// Package talker contains all HTTP handlers related to the Talker resource.
//
// Every handler is produced by a factory that receives the storage and
// returns the http.HandlerFunc the router mounts:
//
//	r.Get("/talker/{id}", talker.GetByID(store))
//
// The authorization gate is NOT applied here; the router wraps the
// mutating routes with middleware.RequireToken.
package talker

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aanand-mishra/talker-api/internal/storage"
	"github.com/aanand-mishra/talker-api/internal/types"
	"github.com/aanand-mishra/talker-api/internal/utils/request"
	"github.com/aanand-mishra/talker-api/internal/utils/response"
	"github.com/aanand-mishra/talker-api/internal/validation"
)

// MsgNotFound is returned by GET /talker/{id} for an unknown id.
const MsgNotFound = "Pessoa palestrante não encontrada"

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /talker
// Returns the whole collection in stored order; [] when it is empty.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all talkers")

		talkers, err := store.GetTalkers(r.Context())
		if err != nil {
			slog.Error("error getting talkers", slog.String("error", err.Error()))
			response.WriteInternalError(w)
			return
		}

		response.WriteJSON(w, http.StatusOK, talkers)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /talker/{id}
//
// Error responses:
//
//	404 Not Found: no talker with that id (also for a non-numeric id)
//	500 Internal : the file is missing or corrupt
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		slog.Info("getting a talker", slog.String("id", id))

		intID, err := parseID(id)
		if err != nil {
			response.WriteMessage(w, http.StatusNotFound, MsgNotFound)
			return
		}

		talker, err := store.GetTalkerByID(r.Context(), intID)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteMessage(w, http.StatusNotFound, MsgNotFound)
			return
		}
		if err != nil {
			slog.Error("error getting talker",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteInternalError(w)
			return
		}

		response.WriteJSON(w, http.StatusOK, talker)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /talker
//
// Request body (JSON):
//
//	{ "name": "Danielle Santos", "age": 56,
//	  "talk": { "watchedAt": "22/10/2019", "rate": 5 } }
//
// Success response (201 Created): the stored talker, including its new id.
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a talker")

		in, ok := decodeTalker(w, r)
		if !ok {
			return
		}

		created, err := store.CreateTalker(r.Context(), in)
		if err != nil {
			slog.Error("error creating talker", slog.String("error", err.Error()))
			response.WriteInternalError(w)
			return
		}

		slog.Info("talker created", slog.Int("id", created.ID))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /talker/{id}
// Replaces ALL fields of the talker. When no talker has that id one is
// created with it; the response is 200 either way.
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		slog.Info("updating a talker", slog.String("id", id))

		in, ok := decodeTalker(w, r)
		if !ok {
			return
		}

		intID, err := parseID(id)
		if err != nil {
			response.WriteMessage(w, http.StatusBadRequest, response.MsgInvalidID)
			return
		}

		updated, err := store.ReplaceTalkerByID(r.Context(), intID, in)
		if err != nil {
			slog.Error("error updating talker",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteInternalError(w)
			return
		}

		slog.Info("talker updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /talker/{id}
// Always answers 204 with an empty body, whether or not the id existed.
// ─────────────────────────────────────────────────────────────────────────────
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		slog.Info("deleting a talker", slog.String("id", id))

		intID, err := parseID(id)
		if err != nil {
			// no talker can have a non-numeric id: nothing to remove
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := store.DeleteTalkerByID(r.Context(), intID); err != nil {
			slog.Error("error deleting talker",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteInternalError(w)
			return
		}

		slog.Info("talker deleted", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeTalker reads the body and runs validation.TalkerChecks. On failure
// it has already written the response and returns ok == false.
func decodeTalker(w http.ResponseWriter, r *http.Request) (types.TalkerInput, bool) {
	var req types.TalkerRequest
	if err := request.DecodeJSON(w, r, &req); err != nil {
		slog.Debug("rejecting talker body", slog.String("error", err.Error()))
		response.WriteMessage(w, http.StatusBadRequest, response.MsgInvalidBody)
		return types.TalkerInput{}, false
	}

	if f := validation.Run(req, validation.TalkerChecks...); f != nil {
		response.WriteMessage(w, f.Status, f.Message)
		return types.TalkerInput{}, false
	}

	return req.Input(), true
}

// parseID reads a path id the lenient way clients have always been able to
// send it: surrounding spaces, "1.0" and "1e0" all mean 1. Anything that is
// not a whole number cannot match a stored id and is an error.
func parseID(raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", raw, err)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("parse id %q: not a whole number", raw)
	}
	return int(f), nil
}
