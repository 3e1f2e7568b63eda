package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		value int
		valid bool
	}{
		{"number", `7`, 7, true},
		{"numeric string", `"7"`, 7, true},
		{"negative number", `-3`, -3, true},
		{"non-numeric string", `"soon"`, 0, false},
		{"null", `null`, 0, false},
		{"float", `7.5`, 0, false},
		{"bool", `true`, 0, false},
		{"empty string", `""`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o OptionalInt
			require.NoError(t, json.Unmarshal([]byte(tt.in), &o))
			v, ok := o.Int()
			require.Equal(t, tt.valid, ok)
			require.Equal(t, tt.value, v)
		})
	}
}

func TestOptionalInt_AbsentField(t *testing.T) {
	var s struct {
		Duration OptionalInt `json:"duration"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &s))
	_, ok := s.Duration.Int()
	require.False(t, ok)
}

func TestOptionalInt_Marshal(t *testing.T) {
	b, err := json.Marshal(OptionalInt{Value: 7, Valid: true})
	require.NoError(t, err)
	require.JSONEq(t, `7`, string(b))

	b, err = json.Marshal(OptionalInt{})
	require.NoError(t, err)
	require.JSONEq(t, `null`, string(b))
}
