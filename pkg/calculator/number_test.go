package calculator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat(t *testing.T) {
	cases := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"int", 3, 3, true},
		{"uint64", uint64(7), 7, true},
		{"float32", float32(0.25), 0.25, true},
		{"json number", json.Number("-2.5"), -2.5, true},
		{"json number overflow", json.Number("1e400"), math.Inf(1), true},
		{"json number negative overflow", json.Number("-1e400"), math.Inf(-1), true},
		{"json number syntax", json.Number("1e"), 0, false},
		{"uintptr", uintptr(1), 0, false},
		{"pointer", new(float64), 0, false},
		{"bool", false, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToFloat(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSumOverflowingJSONNumber(t *testing.T) {
	got, err := New().Sum(json.Number("1e400"), 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1), "expected +Inf, got %v", got)
}
