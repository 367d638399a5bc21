package dispatch

import "github.com/ovtools/ovmcp/internal/envelope"

// Args is the parameter mapping of one invocation. Values arrive as
// decoded JSON: string, bool, float64, or []any.
type Args map[string]any

// String returns a required string parameter.
func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", envelope.Errorf(envelope.InvalidParameters, "missing required parameter: %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", envelope.Errorf(envelope.InvalidParameters, "parameter %s must be a string", key)
	}
	return s, nil
}

// StringOr returns an optional string parameter or its default.
func (a Args) StringOr(key, def string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", envelope.Errorf(envelope.InvalidParameters, "parameter %s must be a string", key)
	}
	return s, nil
}

// BoolOr returns an optional boolean parameter or its default.
func (a Args) BoolOr(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, envelope.Errorf(envelope.InvalidParameters, "parameter %s must be a boolean", key)
	}
	return b, nil
}

// IntOr returns an optional integer parameter or its default. JSON numbers
// decode as float64; integral values are accepted, fractions are not.
func (a Args) IntOr(key string, def int) (int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, envelope.Errorf(envelope.InvalidParameters, "parameter %s must be an integer", key)
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, envelope.Errorf(envelope.InvalidParameters, "parameter %s must be an integer", key)
	}
}

// StringSlice returns an optional string-sequence parameter. A bare string
// is accepted as a one-element sequence. Missing yields nil.
func (a Args) StringSlice(key string) ([]string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch seq := v.(type) {
	case string:
		return []string{seq}, nil
	case []string:
		return seq, nil
	case []any:
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			s, ok := item.(string)
			if !ok {
				return nil, envelope.Errorf(envelope.InvalidParameters,
					"parameter %s must contain only strings", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, envelope.Errorf(envelope.InvalidParameters,
			"parameter %s must be a string or a list of strings", key)
	}
}

// RequiredStringSlice returns a required, non-empty string sequence.
func (a Args) RequiredStringSlice(key string) ([]string, error) {
	if _, ok := a[key]; !ok {
		return nil, envelope.Errorf(envelope.InvalidParameters, "missing required parameter: %s", key)
	}
	seq, err := a.StringSlice(key)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, envelope.Errorf(envelope.InvalidParameters, "parameter %s must not be empty", key)
	}
	return seq, nil
}
