package calculator

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ToFloat converts v to float64. Booleans, strings, nil, pointers and
// containers are not numbers.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		// Out of range values parse to ±Inf with a range error; they are
		// still numbers.
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// operands converts every value of args, failing on the first one that is
// not a number.
func operands(op Operation, args []any) ([]float64, error) {
	out := make([]float64, len(args))
	for i, v := range args {
		f, ok := ToFloat(v)
		if !ok {
			return nil, &OperandError{Op: op, Index: i, Value: v}
		}
		out[i] = f
	}
	return out, nil
}
