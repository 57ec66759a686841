package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1234.5", 1234.5, true},
		{"10.277,19", 10277.19, true},
		{"1.234.567,89", 1234567.89, true},
		{"1,234", 1234, true},
		{"12,345,678", 12345678, true},
		{"10,5", 10.5, true},
		{"-2,75", -2.75, true},
		{"  42  ", 42, true},
		{"0", 0, true},
		{"-1.5", -1.5, true},
		{"", 0, false},
		{"-", 0, false},
		{"nan", 0, false},
		{"NaN", 0, false},
		{"none", 0, false},
		{"n/a", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseNumber(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
