package types

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumberMarshalNonFinite(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"finite", 2.5, `2.5`},
		{"integer", 10, `10`},
		{"nan", math.NaN(), `"NaN"`},
		{"positive infinity", math.Inf(1), `"+Inf"`},
		{"negative infinity", math.Inf(-1), `"-Inf"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(Number(tc.in))
			if err != nil {
				t.Fatalf("Marshal(%v) failed: %v", tc.in, err)
			}
			if string(got) != tc.want {
				t.Errorf("Marshal(%v) = %s; want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestCalculationResponseWithNaNResult(t *testing.T) {
	resp := CalculationResponse{
		Operation: "divide",
		Operands:  []Number{Number(math.Inf(1)), Number(math.Inf(1))},
		Result:    Number(math.NaN()),
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var decoded CalculationResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !math.IsNaN(float64(decoded.Result)) {
		t.Errorf("Result = %v; want NaN", decoded.Result)
	}
	if !math.IsInf(float64(decoded.Operands[0]), 1) {
		t.Errorf("Operands[0] = %v; want +Inf", decoded.Operands[0])
	}
}

func TestNumberUnmarshalRejectsUnknownString(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte(`"many"`), &n); err == nil {
		t.Errorf("expected error for %q, got %v", "many", n)
	}
}
