package mapping

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPiecewise_Empty(t *testing.T) {
	p := NewPiecewise()
	if got := p.Call(0.5); got != 0 {
		t.Errorf("empty Piecewise: got %v, want 0", got)
	}
	if _, ok := p.PieceForT(0.5, DefaultTolerance); ok {
		t.Error("PieceForT on empty Piecewise should report false")
	}
}

func TestPiecewise_TwoStopBand(t *testing.T) {
	// The layout a two-stop color band produces for one channel.
	p := NewPiecewise(
		Piece{Mapping: Linear{Lower: 1, Upper: 0}, Param: 0},
		Piece{Mapping: Constant(0), Param: 1},
	)
	tests := []struct {
		t, want float64
	}{
		{0, 1},
		{0.25, 0.75},
		{0.5, 0.5},
		{1, 0},
		{1.5, 0},
	}
	for _, tt := range tests {
		if got := p.Call(tt.t); !almostEqual(got, tt.want) {
			t.Errorf("Call(%v): got %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPiecewise_Rescale(t *testing.T) {
	p := NewPiecewise(
		Piece{Mapping: Linear{Lower: 0, Upper: 1}, Param: 0},
		Piece{Mapping: Linear{Lower: 1, Upper: 0}, Param: 0.5},
		Piece{Mapping: Constant(0), Param: 1},
	)
	tests := []struct {
		t, want float64
	}{
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
	}
	for _, tt := range tests {
		if got := p.Call(tt.t); !almostEqual(got, tt.want) {
			t.Errorf("Call(%v): got %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPieceForT(t *testing.T) {
	up := Linear{Lower: 0, Upper: 1}
	down := Linear{Lower: 1, Upper: 0}
	p := NewPiecewise(
		Piece{Mapping: up, Param: 0.2},
		Piece{Mapping: down, Param: 0.6},
		Piece{Mapping: Constant(0), Param: 1},
	)
	tests := []struct {
		name string
		t    float64
		want Piece
	}{
		{"before first", 0.1, Piece{Mapping: up, Param: 0.1}},
		{"at first", 0.2, Piece{Mapping: up, Param: 0.2}},
		{"first interval", 0.4, Piece{Mapping: up, Param: 0.5}},
		{"second boundary", 0.6, Piece{Mapping: down, Param: 0}},
		{"second interval", 0.7, Piece{Mapping: down, Param: 0.25}},
		{"last", 1, Piece{Mapping: Constant(0), Param: 0}},
		{"past last", 1.5, Piece{Mapping: Constant(0), Param: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.PieceForT(tt.t, DefaultTolerance)
			if !ok {
				t.Fatal("PieceForT reported no piece")
			}
			approx := cmp.Comparer(func(a, b float64) bool { return almostEqual(a, b) })
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("PieceForT(%v) mismatch (-want +got):\n%s", tt.t, diff)
			}
		})
	}
}

func TestPiecewise_BeforeFirst(t *testing.T) {
	p := NewPiecewise(
		Piece{Mapping: Identity, Param: 0.2},
		Piece{Mapping: Constant(9), Param: 1},
	)
	// At or before the first parameter the raw argument is used.
	if got := p.Call(0.1); !almostEqual(got, 0.1) {
		t.Errorf("Call(0.1): got %v, want 0.1", got)
	}
}

func TestPiecewise_SinglePiece(t *testing.T) {
	p := NewPiecewise(Piece{Mapping: Identity, Param: 0.5})
	if got := p.Call(0.8); !almostEqual(got, 0.8) {
		t.Errorf("Call(0.8): got %v, want 0.8", got)
	}
}

func TestPiecewise_Validate(t *testing.T) {
	p := NewPiecewise()
	p.AddPiece(Identity, 0)
	p.AddPiece(Identity, 0.5)
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate on ordered pieces: %v", err)
	}
	p.AddPiece(Identity, 0.4)
	err := p.Validate()
	if !errors.Is(err, ErrPieceOrder) {
		t.Errorf("Validate: got %v, want ErrPieceOrder", err)
	}

	q := NewPiecewise(Piece{Param: 0})
	if err := q.Validate(); err == nil {
		t.Error("Validate should reject a piece without a mapping")
	}
}

func TestPiecewise_Accessors(t *testing.T) {
	p := NewPiecewise()
	p.AddPiece(Constant(1), 0)
	if p.NumPieces() != 1 {
		t.Errorf("NumPieces: got %d, want 1", p.NumPieces())
	}
	if _, ok := p.Piece(3); ok {
		t.Error("Piece(3) should be out of range")
	}
	p.Clear()
	if p.NumPieces() != 0 {
		t.Errorf("NumPieces after Clear: got %d, want 0", p.NumPieces())
	}
}

func TestSawtoothAndStep(t *testing.T) {
	saw, err := Sawtooth(2, 0, 1)
	if err != nil {
		t.Fatalf("Sawtooth failed: %v", err)
	}
	if got := saw.Call(0.25); !almostEqual(got, 0.5) {
		t.Errorf("Sawtooth(0.25): got %v, want 0.5", got)
	}
	if got := saw.Call(0.75); !almostEqual(got, 0.5) {
		t.Errorf("Sawtooth(0.75): got %v, want 0.5", got)
	}
	if _, err := Sawtooth(0, 0, 1); err == nil {
		t.Error("Sawtooth(0) should fail")
	}

	step, err := Step(4, 0, 1)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if got := step.Call(0.3); !almostEqual(got, 0.25) {
		t.Errorf("Step(0.3): got %v, want 0.25", got)
	}
	if got := step.Call(1); !almostEqual(got, 1) {
		t.Errorf("Step(1): got %v, want 1", got)
	}
	if _, err := Step(0, 0, 1); err == nil {
		t.Error("Step(0) should fail")
	}
}
