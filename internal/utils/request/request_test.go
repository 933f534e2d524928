package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aanand-mishra/talker-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@a.com","password":"123456"}`))

	var got types.LoginRequest
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &got))
	assert.Equal(t, types.LoginRequest{Email: "a@a.com", Password: "123456"}, got)
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/talker", http.NoBody)

	var got types.TalkerRequest
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &got))
	assert.Nil(t, got.Name)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/talker", strings.NewReader(`{"name":`))

	var got types.TalkerRequest
	assert.Error(t, DecodeJSON(httptest.NewRecorder(), r, &got))
}

func TestDecodeJSON_WrongType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/talker", strings.NewReader(`{"age":"twenty"}`))

	var got types.TalkerRequest
	assert.Error(t, DecodeJSON(httptest.NewRecorder(), r, &got))
}
