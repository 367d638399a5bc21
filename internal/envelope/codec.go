package envelope

import (
	"encoding/json"
	"fmt"
	"io"
)

// Encode serializes a Result to indented JSON and writes it to w.
func Encode(w io.Writer, res Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(res); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// MarshalIndent renders a Result as an indented JSON string for transports
// that carry the envelope as text content.
func MarshalIndent(res Result) (string, error) {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(b), nil
}

// Decode reads and validates a Result from JSON in r.
func Decode(r io.Reader) (*Result, error) {
	var res Result

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}

	if !res.Success && res.Error == nil {
		return nil, fmt.Errorf("result has success=false but no error")
	}
	if res.Success && res.Error != nil {
		return nil, fmt.Errorf("result has success=true and an error")
	}
	if res.Error != nil && res.Error.Message == "" {
		return nil, fmt.Errorf("error missing required field: message")
	}

	return &res, nil
}
