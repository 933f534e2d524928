package talker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/talker-api/internal/storage"
	"github.com/aanand-mishra/talker-api/internal/types"
)

// brokenStorage fails every call, like a missing or corrupt file would.
type brokenStorage struct{}

var errBroken = errors.New("loadAll: read talker.json: no such file or directory")

func (brokenStorage) GetTalkers(context.Context) ([]types.Talker, error) { return nil, errBroken }
func (brokenStorage) GetTalkerByID(context.Context, int) (types.Talker, error) {
	return types.Talker{}, errBroken
}
func (brokenStorage) CreateTalker(context.Context, types.TalkerInput) (types.Talker, error) {
	return types.Talker{}, errBroken
}
func (brokenStorage) ReplaceTalkerByID(context.Context, int, types.TalkerInput) (types.Talker, error) {
	return types.Talker{}, errBroken
}
func (brokenStorage) DeleteTalkerByID(context.Context, int) error { return errBroken }

var _ storage.Storage = brokenStorage{}

func routes(store storage.Storage) http.Handler {
	r := chi.NewRouter()
	r.Get("/talker", GetList(store))
	r.Get("/talker/{id}", GetByID(store))
	r.Post("/talker", New(store))
	r.Put("/talker/{id}", Update(store))
	r.Delete("/talker/{id}", Delete(store))
	return r
}

func TestHandlers_StorageFailureIs500(t *testing.T) {
	h := routes(brokenStorage{})
	body := `{"name":"Danielle Santos","age":56,"talk":{"watchedAt":"22/10/2019","rate":5}}`

	tests := []struct {
		method, target, body string
	}{
		{http.MethodGet, "/talker", ""},
		{http.MethodGet, "/talker/1", ""},
		{http.MethodPost, "/talker", body},
		{http.MethodPut, "/talker/1", body},
		{http.MethodDelete, "/talker/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "talker.json")
		})
	}
}

func TestDelete_NonNumericIDSkipsStorage(t *testing.T) {
	h := routes(brokenStorage{})

	req := httptest.NewRequest(http.MethodDelete, "/talker/abc", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetByID_NonNumericIDIsNotFound(t *testing.T) {
	h := routes(brokenStorage{})

	req := httptest.NewRequest(http.MethodGet, "/talker/abc", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"`+MsgNotFound+`"}`, w.Body.String())
}

func TestParseID(t *testing.T) {
	accepted := map[string]int{
		"1":   1,
		"42":  42,
		"1.0": 1,
		"1e0": 1,
		" 1":  1,
		"-3":  -3,
	}
	for raw, want := range accepted {
		got, err := parseID(raw)
		if assert.NoError(t, err, raw) {
			assert.Equal(t, want, got, raw)
		}
	}

	for _, raw := range []string{"abc", "1.5", "", "Inf", "NaN", "1e20"} {
		_, err := parseID(raw)
		assert.Error(t, err, raw)
	}
}
