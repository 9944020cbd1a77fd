package format

import (
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		sep  rune
		want string
	}{
		{0, '.', "0"},
		{math.Copysign(0, -1), '.', "0"},
		{5, '.', "5"},
		{-3, '.', "-3"},
		{1.5, '.', "1.5"},
		{1.5, ',', "1,5"},
		{0.1 + 0.2, '.', "0.3"},
		{1.0 / 3, '.', "0.3333333333"},
		{-1e-11, '.', "-1E-11"},
		{1e9, '.', "1000000000"},
		{1e9 + 1, '.', "1E9"},
		{1.2345e9 + 1, '.', "1.2345E9"},
		{1.5e10, '.', "1.5E10"},
		{1.5e10, ',', "1,5E10"},
		{-2.5e15, '.', "-2.5E15"},
		{1e-6, '.', "0.000001"},
		{1e-7, '.', "1E-7"},
		{1.23456789e-8, '.', "1.234568E-8"},
		{6.02214076e23, '.', "6.022141E23"},
		{7, 0, "7"},
	}
	for _, tt := range tests {
		got, err := Format(tt.in, tt.sep)
		if err != nil {
			t.Fatalf("Format(%v): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Format(%v, %q): expected '%s', got '%s'", tt.in, tt.sep, tt.want, got)
		}
	}
}

func TestFormatNotFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s, err := Format(v, '.')
		if !errors.Is(err, ErrNotFinite) {
			t.Errorf("Format(%v): expected ErrNotFinite, got %v", v, err)
		}
		if s != "" {
			t.Errorf("Format(%v): expected empty string, got '%s'", v, s)
		}
	}
}

func TestScientific(t *testing.T) {
	for _, v := range []float64{1e10, -1e10, 1e-7, -5e-9} {
		if !Scientific(v) {
			t.Errorf("expected %v in scientific form", v)
		}
	}
	for _, v := range []float64{0, 1, -1e9, 1e-6, 123456.789} {
		if Scientific(v) {
			t.Errorf("expected %v in plain form", v)
		}
	}
}
