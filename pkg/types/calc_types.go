package types

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Number is a float64 that survives JSON encoding when it is NaN or infinite.
type Number float64

// MarshalJSON encodes finite values as JSON numbers and NaN/±Inf as strings.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON accepts both encodings produced by MarshalJSON.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			*n = Number(math.NaN())
		case "+Inf", "Inf":
			*n = Number(math.Inf(1))
		case "-Inf":
			*n = Number(math.Inf(-1))
		default:
			return fmt.Errorf("invalid number %q", s)
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// CalculationResponse is returned by every successful calculator tool
type CalculationResponse struct {
	ID        string    `json:"id"`                // Unique ID of this calculation
	Operation string    `json:"operation"`         // Operation name (sum, multiply, ...)
	Operands  []Number  `json:"operands"`          // Operands as numbers
	Result    Number    `json:"result"`            // Result of the operation
	Timestamp time.Time `json:"timestamp"`         // When the calculation ran
	Summary   string    `json:"summary,omitempty"` // Human readable description
}

// ErrorResponse describes a failed calculation
type ErrorResponse struct {
	Operation string `json:"operation"`
	Kind      string `json:"kind"` // type_error, invalid_input, division_by_zero, unknown
	Message   string `json:"message"`
}

// ServerInfo identifies the running server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// StatusResponse is returned by the status tool
type StatusResponse struct {
	Server     ServerInfo `json:"server"`
	Operations []string   `json:"operations"`
}
