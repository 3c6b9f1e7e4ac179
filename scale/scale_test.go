package scale

import (
	"math"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		feet     float64
		detected bool
	}{
		{"quoted note", `SCALE: 1" = 30'`, 30, true},
		{"bare numbers", "SCALE 1 = 50", 50, true},
		{"apostrophe only", "1' = 100'", 100, true},
		{"embedded in sheet text", "SITE PLAN\nSCALE: 1\"=40'\nSHEET C-2", 40, true},
		{"first match wins", `1" = 20' (1" = 40' HALF SIZE)`, 20, true},
		{"no note", "GENERAL NOTES\nALL DIMENSIONS IN FEET", 20, false},
		{"empty text", "", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.text)
			want := tt.feet / 72
			if math.Abs(got.FeetPerUnit-want) > 1e-12 {
				t.Errorf("FeetPerUnit = %v, want %v", got.FeetPerUnit, want)
			}
			if got.Detected != tt.detected {
				t.Errorf("Detected = %v, want %v", got.Detected, tt.detected)
			}
		})
	}
}

func TestToSqft(t *testing.T) {
	s := Resolve(`1" = 20'`)
	// One square inch of sheet at 1"=20' covers 400 square feet.
	got := s.ToSqft(72 * 72)
	if math.Abs(got-400) > 1e-9 {
		t.Errorf("ToSqft(72*72) = %v, want 400", got)
	}

	// 7200 square units at the default scale.
	got = Default().ToSqft(7200)
	if math.Abs(got-555.5555555555555) > 1e-9 {
		t.Errorf("ToSqft(7200) = %v, want ~555.56", got)
	}
}
