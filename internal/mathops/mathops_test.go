package mathops

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/mathmon/internal/errors"
)

func TestDivide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a, b     float64
		want     float64
		wantZero bool
		wantNeg  bool
	}{
		{name: "valid division", a: 100, b: 5, want: 20},
		{name: "valid division non-integer quotient", a: 1, b: 3, want: 1.0 / 3.0},
		{name: "zero dividend", a: 0, b: 4, want: 0},
		{name: "division by zero", a: 10, b: 0, wantZero: true},
		{name: "zero by zero", a: 0, b: 0, wantZero: true},
		{name: "negative dividend by zero reports zero divisor first", a: -5, b: 0, wantZero: true},
		{name: "negative dividend", a: -5, b: 2, wantNeg: true},
		{name: "negative divisor", a: 5, b: -2, wantNeg: true},
		{name: "both negative", a: -50, b: -5, wantNeg: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Divide(tt.a, tt.b)

			switch {
			case tt.wantZero:
				var dz apperrors.DivisionByZeroError
				if !errors.As(err, &dz) {
					t.Fatalf("Divide(%g, %g) error = %v, want DivisionByZeroError", tt.a, tt.b, err)
				}
				if dz.Dividend != tt.a {
					t.Errorf("Dividend = %g, want %g", dz.Dividend, tt.a)
				}
			case tt.wantNeg:
				var neg apperrors.NegativeOperandError
				if !errors.As(err, &neg) {
					t.Fatalf("Divide(%g, %g) error = %v, want NegativeOperandError", tt.a, tt.b, err)
				}
				if neg.Operation != "divide" {
					t.Errorf("Operation = %q, want %q", neg.Operation, "divide")
				}
			default:
				if err != nil {
					t.Fatalf("Divide(%g, %g) unexpected error: %v", tt.a, tt.b, err)
				}
				if math.Abs(got-tt.want) > 1e-12 {
					t.Errorf("Divide(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.want)
				}
			}
		})
	}
}

func TestSqrt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		x       float64
		want    float64
		wantErr bool
	}{
		{name: "perfect square", x: 81, want: 9},
		{name: "zero", x: 0, want: 0},
		{name: "non-integer root", x: 2, want: math.Sqrt2},
		{name: "negative radicand", x: -1, wantErr: true},
		{name: "small negative radicand", x: -1e-9, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Sqrt(tt.x)

			if tt.wantErr {
				var neg apperrors.NegativeOperandError
				if !errors.As(err, &neg) {
					t.Fatalf("Sqrt(%g) error = %v, want NegativeOperandError", tt.x, err)
				}
				if neg.Operation != "sqrt" {
					t.Errorf("Operation = %q, want %q", neg.Operation, "sqrt")
				}
				return
			}
			if err != nil {
				t.Fatalf("Sqrt(%g) unexpected error: %v", tt.x, err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Sqrt(%g) = %g, want %g", tt.x, got, tt.want)
			}
		})
	}
}
