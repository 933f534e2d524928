package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_PasswordForms(t *testing.T) {
	tests := []struct {
		body string
		want StringOrNumber
	}{
		{`{"password":"123456"}`, "123456"},
		{`{"password":123456}`, "123456"},
		{`{"password":null}`, ""},
		{`{}`, ""},
	}

	for _, tt := range tests {
		var req LoginRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req), tt.body)
		assert.Equal(t, tt.want, req.Password, tt.body)
	}
}

func TestLoginRequest_PasswordRejectsOtherTypes(t *testing.T) {
	for _, body := range []string{`{"password":true}`, `{"password":[1]}`, `{"password":{}}`} {
		var req LoginRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestTalkRequest_Rate(t *testing.T) {
	tests := []struct {
		body string
		want OptionalInt
	}{
		{`{"watchedAt":"22/10/2019"}`, OptionalInt{}},
		{`{"rate":null}`, OptionalInt{Set: true, Null: true}},
		{`{"rate":0}`, OptionalInt{Set: true, Value: 0}},
		{`{"rate":4}`, NewOptionalInt(4)},
	}

	for _, tt := range tests {
		var talk TalkRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &talk), tt.body)
		assert.Equal(t, tt.want, talk.Rate, tt.body)
	}
}

func TestTalkRequest_RateRejectsNonInteger(t *testing.T) {
	var talk TalkRequest
	assert.Error(t, json.Unmarshal([]byte(`{"rate":"five"}`), &talk))
}
