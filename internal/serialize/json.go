// Package serialize wraps the JSON codec used for configuration files.
package serialize

import (
	"bytes"
	"errors"

	json "github.com/goccy/go-json"
)

func MarshalJSON(data any) ([]byte, error) {
	return json.Marshal(data)
}

// UnMarshalJSON decodes a single JSON value into dest. Unknown fields and
// trailing content are rejected.
func UnMarshalJSON(data []byte, dest any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return err
	}

	if decoder.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
