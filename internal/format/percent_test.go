package format

import (
	"testing"
	"time"
)

func TestSuccessRate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name             string
		successes, total int
		want             float64
	}{
		{name: "zero total yields zero rate", successes: 0, total: 0, want: 0},
		{name: "three of four", successes: 3, total: 4, want: 75},
		{name: "all failures", successes: 0, total: 5, want: 0},
		{name: "all successes", successes: 7, total: 7, want: 100},
		{name: "one third", successes: 1, total: 3, want: 100.0 / 3.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SuccessRate(tt.successes, tt.total); got != tt.want {
				t.Errorf("SuccessRate(%d, %d) = %v, want %v", tt.successes, tt.total, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "0.00%"},
		{75, "75.00%"},
		{100.0 / 3.0, "33.33%"},
		{100, "100.00%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.pct); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestFormatOperand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    float64
		want string
	}{
		{100, "100"},
		{-10, "-10"},
		{0, "0"},
		{0.5, "0.5"},
		{20, "20"},
	}

	for _, tt := range tests {
		if got := FormatOperand(tt.v); got != tt.want {
			t.Errorf("FormatOperand(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{3 * time.Second, "3s"},
	}

	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
