// Package request decodes JSON request bodies for the handlers.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of a body DecodeJSON will read.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the body of r into v.
//
// An empty body is not an error: v is left at its zero value so that the
// validation chain reports the first missing field, the same answer a
// client gets for "{}".
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
