package color

import (
	"math"
	"testing"
)

func TestLUTsMatchFormulas(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			i := 256*a + b

			wantMult := uint8(math.Round(float64(a*b) / 255))
			if lutMult[i] != wantMult {
				t.Fatalf("lutMult[%d,%d]: got %d, want %d", a, b, lutMult[i], wantMult)
			}

			wantAdd := a + b
			if wantAdd > 255 {
				wantAdd = 255
			}
			if int(lutAdd[i]) != wantAdd {
				t.Fatalf("lutAdd[%d,%d]: got %d, want %d", a, b, lutAdd[i], wantAdd)
			}

			wantSub := a - b
			if wantSub < 0 {
				wantSub = 0
			}
			if int(lutSub[i]) != wantSub {
				t.Fatalf("lutSub[%d,%d]: got %d, want %d", a, b, lutSub[i], wantSub)
			}

			var wantDiv float64
			if b > 0 {
				wantDiv = math.Min(math.Round(255*float64(a)/float64(b)), 255)
			}
			if float64(lutDiv[i]) != wantDiv {
				t.Fatalf("lutDiv[%d,%d]: got %d, want %v", a, b, lutDiv[i], wantDiv)
			}
		}
	}
}

func TestLUTAccessors(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b uint8) uint8
		a, b uint8
		want uint8
	}{
		{"Mult identity", Mult, 255, 77, 77},
		{"Mult zero", Mult, 0, 200, 0},
		{"Mult half", Mult, 128, 128, 64},
		{"Add saturates", Add, 200, 100, 255},
		{"Add", Add, 20, 30, 50},
		{"Sub saturates", Sub, 10, 30, 0},
		{"Sub", Sub, 30, 10, 20},
		{"Div by full alpha", Div, 77, 255, 77},
		{"Div saturates", Div, 200, 100, 255},
		{"Div by zero", Div, 200, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.a, tt.b); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
