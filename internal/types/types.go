// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, storage, and validation can all import types without
// depending on each other.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Talker represents a speaker profile as it is persisted in the JSON file.
//
// The json:"..." tags match the keys of the stored document exactly
// (note the camelCase "watchedAt" inside Talk).
type Talker struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	ID   int    `json:"id"`
	Talk Talk   `json:"talk"`
}

// Talk records when a talk was watched and how it was rated.
type Talk struct {
	// WatchedAt is a date in the dd/mm/yyyy format.
	WatchedAt string `json:"watchedAt"`
	// Rate is an integer between 1 and 5.
	Rate int `json:"rate"`
}

// TalkerInput is the part of a Talker the client controls. The id is
// always assigned by the server (POST) or taken from the URL (PUT).
type TalkerInput struct {
	Name string
	Age  int
	Talk Talk
}

// TalkerRequest is the decoded body of POST /talker and PUT /talker/{id}.
//
// Every field is a pointer so the validation chain can tell a field that
// was never sent (nil) apart from one that was sent with a bad value.
type TalkerRequest struct {
	Name *string      `json:"name"`
	Age  *int         `json:"age"`
	Talk *TalkRequest `json:"talk"`
}

// TalkRequest is the nested "talk" object of a TalkerRequest.
//
// Rate is not a pointer: an explicit "rate": null is present (and out of
// range), while an absent rate is missing.
type TalkRequest struct {
	WatchedAt *string     `json:"watchedAt"`
	Rate      OptionalInt `json:"rate"`
}

// OptionalInt is an integer JSON field that remembers whether it was sent
// at all and whether it was sent as null.
type OptionalInt struct {
	Set   bool
	Null  bool
	Value int
}

// NewOptionalInt returns an OptionalInt holding v.
func NewOptionalInt(v int) OptionalInt {
	return OptionalInt{Set: true, Value: v}
}

// UnmarshalJSON is only called when the key is present, null included.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return fmt.Errorf("optional int: %w", err)
	}
	return nil
}

// Input converts a request that already passed validation into a
// TalkerInput. Calling it on an unvalidated request may panic.
func (r TalkerRequest) Input() TalkerInput {
	return TalkerInput{
		Name: *r.Name,
		Age:  *r.Age,
		Talk: Talk{
			WatchedAt: *r.Talk.WatchedAt,
			Rate:      r.Talk.Rate.Value,
		},
	}
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string         `json:"email"`
	Password StringOrNumber `json:"password"`
}

// StringOrNumber accepts a JSON string or a JSON number and keeps its
// text, so {"password": 123456} reads as "123456". null reads as "".
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("string or number: %w", err)
	}

	switch v := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = StringOrNumber(v)
	case json.Number:
		*s = StringOrNumber(v.String())
	default:
		return fmt.Errorf("string or number: unexpected JSON %s", data)
	}
	return nil
}

// Token is the body returned by a successful POST /login.
type Token struct {
	Token string `json:"token"`
}
