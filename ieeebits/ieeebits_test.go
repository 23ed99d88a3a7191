package ieeebits

import (
	"math"
	"testing"
)

func TestFieldExtractionRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 3.14159, -2.5, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, v := range values {
		sign := Sign(v)
		exp := Exp(v)
		man := Man(v)
		got := Build(sign, exp, man)
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("Build(Sign,Exp,Man)(%v) = %v, want exact bit match", v, got)
		}
	}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name          string
		v             float64
		nan, inf, sub, zero bool
	}{
		{"zero", 0, false, false, false, true},
		{"neg zero", math.Copysign(0, -1), false, false, false, true},
		{"one", 1, false, false, false, false},
		{"inf", math.Inf(1), false, true, false, false},
		{"neg inf", math.Inf(-1), false, true, false, false},
		{"nan", math.NaN(), true, false, false, false},
		{"subnormal", math.SmallestNonzeroFloat64, false, false, true, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsNaN(test.v); got != test.nan {
				t.Errorf("IsNaN = %v, want %v", got, test.nan)
			}
			if got := IsInf(test.v); got != test.inf {
				t.Errorf("IsInf = %v, want %v", got, test.inf)
			}
			if got := IsSubnormal(test.v); got != test.sub {
				t.Errorf("IsSubnormal = %v, want %v", got, test.sub)
			}
			if got := IsZero(test.v); got != test.zero {
				t.Errorf("IsZero = %v, want %v", got, test.zero)
			}
		})
	}
}

func TestSignOfNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	if !Sign(negZero) {
		t.Error("Sign(-0) = false, want true")
	}
	if Sign(0) {
		t.Error("Sign(+0) = true, want false")
	}
}
