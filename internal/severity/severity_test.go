package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{"error level", SeverityError, "error"},
		{"warning level", SeverityWarning, "warning"},
		{"info level", SeverityInfo, "info"},
		{"critical level", SeverityCritical, "critical"},
		{"unknown negative", Severity(-1), "unknown"},
		{"unknown large value", Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	ordered := []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank())
		assert.True(t, ordered[i].AtLeast(ordered[i-1]))
		assert.False(t, ordered[i-1].AtLeast(ordered[i]))
	}
	assert.True(t, SeverityWarning.AtLeast(SeverityWarning))
	assert.False(t, Severity(42).AtLeast(SeverityInfo))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"info", SeverityInfo, true},
		{"WARNING", SeverityWarning, true},
		{"warn", SeverityWarning, true},
		{" error ", SeverityError, true},
		{"critical", SeverityCritical, true},
		{"fatal", SeverityInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
