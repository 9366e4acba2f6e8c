package providers

import (
	"fmt"
	"math"

	"github.com/filearchitect/desktop/backend/internal/shared/errs"
)

// String returns a required string argument. Empty strings are allowed;
// the callee decides what an empty path means.
func String(params map[string]interface{}, key string) (string, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return "", missing(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", wrongType(key, "string", raw)
	}
	return s, nil
}

// Bool returns a boolean argument, or def when it is absent
func Bool(params map[string]interface{}, key string, def bool) (bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return def, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, wrongType(key, "boolean", raw)
	}
	return b, nil
}

// Int returns an integer argument, or def when it is absent.
// JSON numbers arrive as float64 and must be whole.
func Int(params map[string]interface{}, key string, def int) (int, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, errs.Newf(errs.KindInvalidArgument, "args", "", "%s must be a whole number, got %v", key, v)
		}
		return int(v), nil
	default:
		return 0, wrongType(key, "number", raw)
	}
}

// Strings returns a required array-of-strings argument
func Strings(params map[string]interface{}, key string) ([]string, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return nil, missing(key)
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, wrongType(fmt.Sprintf("%s[%d]", key, i), "string", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, wrongType(key, "array", raw)
	}
}

func missing(key string) error {
	return errs.Newf(errs.KindInvalidArgument, "args", "", "%s parameter required", key)
}

func wrongType(key, want string, got interface{}) error {
	return errs.Newf(errs.KindInvalidArgument, "args", "", "%s must be a %s, got %T", key, want, got)
}
