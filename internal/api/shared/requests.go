package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v. Type mismatches (e.g. a
// string where a number is expected) and trailing garbage are errors, so
// malformed payloads fail here with a 400 before any validation runs.
func DecodeJSON(r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("field %q must be of type %s", typeErr.Field, typeErr.Type)
		}
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("malformed JSON: %w", err)
	}

	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
