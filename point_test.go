package ink

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(3, -4)

	if got := a.Add(b); got != (Pt(4, -2)) {
		t.Errorf("Add = %v, want (4,-2)", got)
	}
	if got := a.Sub(b); got != (Pt(-2, 6)) {
		t.Errorf("Sub = %v, want (-2,6)", got)
	}
	if got := a.Mul(2); got != (Pt(2, 4)) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}
	if got := b.Div(2); got != (Pt(1.5, -2)) {
		t.Errorf("Div = %v, want (1.5,-2)", got)
	}
	if got := a.Neg(); got != (Pt(-1, -2)) {
		t.Errorf("Neg = %v, want (-1,-2)", got)
	}
}

func TestPoint_DotCross(t *testing.T) {
	a := Pt(1, 0)
	b := Pt(0, 1)

	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
	if got := a.Cross(b); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := b.Cross(a); got != -1 {
		t.Errorf("Cross reversed = %v, want -1", got)
	}
}

func TestPoint_Length(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
	if got := p.Distance(Pt(3, 0)); got != 4 {
		t.Errorf("Distance = %v, want 4", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	p := Pt(3, 4).Normalize()
	if math.Abs(p.Length()-1) > 1e-12 {
		t.Errorf("Normalize().Length() = %v, want 1", p.Length())
	}

	// Zero vector normalizes to zero.
	if got := (Pt(0, 0)).Normalize(); got != (Pt(0, 0)) {
		t.Errorf("zero Normalize = %v, want (0,0)", got)
	}
}

func TestPoint_Perp(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"right", Pt(1, 0), Pt(0, 1)},
		{"up", Pt(0, 1), Pt(-1, 0)},
		{"diagonal", Pt(2, 3), Pt(-3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Perp()
			if got != tt.want {
				t.Errorf("Perp(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if d := tt.in.Dot(got); d != 0 {
				t.Errorf("Perp not perpendicular: dot = %v", d)
			}
		})
	}
}

func TestPoint_Angle(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want float64
	}{
		{"east", Pt(1, 0), 0},
		{"north", Pt(0, 1), math.Pi / 2},
		{"west", Pt(-1, 0), math.Pi},
		{"south", Pt(0, -1), -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Angle(); got != tt.want {
				t.Errorf("Angle(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPoint_Lerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 20)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (Pt(5, 10)) {
		t.Errorf("Lerp(0.5) = %v, want (5,10)", got)
	}
}
