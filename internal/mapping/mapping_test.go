package mapping

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinear(t *testing.T) {
	l := Linear{Lower: 0.2, Upper: 0.8}
	tests := []struct {
		in, want float64
	}{
		{0, 0.2},
		{1, 0.8},
		{0.5, 0.5},
	}
	for _, tt := range tests {
		if got := l.Call(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("Linear(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConstantAndFunc(t *testing.T) {
	if got := Constant(0.3).Call(99); got != 0.3 {
		t.Errorf("Constant: got %v, want 0.3", got)
	}
	double := Func(func(v float64) float64 { return 2 * v })
	if got := double.Call(0.25); got != 0.5 {
		t.Errorf("Func: got %v, want 0.5", got)
	}
}

func TestPowerAndSmoothStep(t *testing.T) {
	if got := Power(2).Call(0.5); !almostEqual(got, 0.25) {
		t.Errorf("Power(2)(0.5): got %v, want 0.25", got)
	}
	if got := Power(0.5).Call(-1); got != 0 {
		t.Errorf("Power of negative: got %v, want 0", got)
	}
	for _, v := range []float64{0, 0.5, 1} {
		if got := SmoothStep.Call(v); !almostEqual(got, v) {
			t.Errorf("SmoothStep(%v): got %v, want %v", v, got, v)
		}
	}
	if got := SmoothStep.Call(0.25); got >= 0.25 {
		t.Errorf("SmoothStep(0.25) should ease in, got %v", got)
	}
}

func TestChain(t *testing.T) {
	c := Chain{Outer: Linear{Lower: 0, Upper: 10}, Inner: Power(2)}
	if got := c.Call(0.5); !almostEqual(got, 2.5) {
		t.Errorf("Chain: got %v, want 2.5", got)
	}

	affine := Chain{Outer: Identity, Scale: 2, Offset: 1, ResultScale: 3, ResultOffset: -1}
	// 3*(2*0.5+1) - 1 = 5
	if got := affine.Call(0.5); !almostEqual(got, 5) {
		t.Errorf("Chain affine: got %v, want 5", got)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "linear", "smoothstep", "square", "sqrt", "invert"} {
		m, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) failed: %v", name, err)
			continue
		}
		if m == nil {
			t.Errorf("ByName(%q) returned nil mapping", name)
		}
	}
	if _, err := ByName("bogus"); err == nil {
		t.Error("ByName(bogus) should fail")
	}
	inv, _ := ByName("invert")
	if got := inv.Call(0.25); !almostEqual(got, 0.75) {
		t.Errorf("invert(0.25): got %v, want 0.75", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v    float64
		r    Range
		want float64
	}{
		{-0.5, DefaultRange, 0},
		{1.5, DefaultRange, 1},
		{0.3, DefaultRange, 0.3},
		{5, Range{Lower: 2, Upper: 4}, 4},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.r); got != tt.want {
			t.Errorf("Clamp(%v, %v): got %v, want %v", tt.v, tt.r, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{1.25, 0.25},
		{-0.25, 0.75},
		{1, 1},
		{0, 0},
		{3.5, 0.5},
		{2, 1},
		{-1, 0},
		{1e9 + 0.5, 0.5},
		{1e17, 1},
		{-1e17, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.v, DefaultRange); !almostEqual(got, tt.want) {
			t.Errorf("Wrap(%v): got %v, want %v", tt.v, got, tt.want)
		}
	}
	if got := Wrap(math.Inf(1), DefaultRange); !math.IsInf(got, 1) {
		t.Errorf("Wrap(+Inf): got %v, want +Inf", got)
	}
	if got := Wrap(7, Range{Lower: 1, Upper: 1}); got != 7 {
		t.Errorf("Wrap on degenerate range: got %v, want 7", got)
	}
	if got := Wrap(370, Range{Lower: 0, Upper: 360}); got != 10 {
		t.Errorf("Wrap(370, [0,360]): got %v, want 10", got)
	}
	if got := Wrap(-0.5, Range{Lower: 2, Upper: 4}); !almostEqual(got, 3.5) {
		t.Errorf("Wrap(-0.5, [2,4]): got %v, want 3.5", got)
	}
}

func TestRangeContains(t *testing.T) {
	if !DefaultRange.Contains(0.5) || DefaultRange.Contains(1.1) {
		t.Error("DefaultRange.Contains gave wrong answer")
	}
}
