// Package token issues the opaque session tokens returned by POST /login.
//
// Tokens are never stored and never checked again: the authorization gate
// only looks at the header length, which is why the length produced here
// must stay equal to validation.TokenLength.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// byteLen random bytes hex-encode to 2*byteLen characters.
const byteLen = 8

// New returns a fresh random token of 16 lowercase hex characters.
func New() (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("token.New: read random: %w", err)
	}
	return hex.EncodeToString(b), nil
}
