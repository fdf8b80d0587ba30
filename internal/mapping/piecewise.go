package mapping

import (
	"errors"
	"fmt"
)

// DefaultTolerance is the slack used when comparing a parameter against piece
// boundaries.
const DefaultTolerance = 1e-6

// ErrPieceOrder is returned when piece parameters are not strictly increasing.
var ErrPieceOrder = errors.New("piece out of sequence")

// Piece is a mapping keyed to the parameter at which it starts.
type Piece struct {
	Mapping Mapping
	Param   float64
}

// Piecewise evaluates one of several mappings depending on where the argument
// falls between consecutive piece parameters.
//
// For t at or before the first parameter (or when there is only one piece) the
// first mapping is called with t unchanged. For t at or past the last
// parameter the last mapping is called with t minus that parameter. Otherwise
// the piece whose interval contains t is called with t rescaled to [0,1]
// across that interval. A Piecewise without pieces evaluates to zero.
type Piecewise struct {
	pieces []Piece
}

// NewPiecewise returns a Piecewise holding the given pieces in order.
func NewPiecewise(pieces ...Piece) *Piecewise {
	p := &Piecewise{}
	p.pieces = append(p.pieces, pieces...)
	return p
}

// AddPiece appends a piece. Pieces are not sorted.
func (p *Piecewise) AddPiece(m Mapping, param float64) {
	p.pieces = append(p.pieces, Piece{Mapping: m, Param: param})
}

// NumPieces returns the number of pieces.
func (p *Piecewise) NumPieces() int {
	return len(p.pieces)
}

// Piece returns the piece at index i.
func (p *Piecewise) Piece(i int) (Piece, bool) {
	if i < 0 || i >= len(p.pieces) {
		return Piece{}, false
	}
	return p.pieces[i], true
}

// Clear removes all pieces.
func (p *Piecewise) Clear() {
	p.pieces = nil
}

// Validate checks that piece parameters are strictly increasing and that no
// piece lacks a mapping.
func (p *Piecewise) Validate() error {
	for i, pc := range p.pieces {
		if pc.Mapping == nil {
			return fmt.Errorf("piece %d has no mapping", i)
		}
		if i > 0 && pc.Param <= p.pieces[i-1].Param {
			return fmt.Errorf("%w: piece %d at %g follows %g", ErrPieceOrder, i, pc.Param, p.pieces[i-1].Param)
		}
	}
	return nil
}

// PieceForT resolves the mapping responsible for t and the parameter it should
// be called with. The boolean is false when there are no pieces.
func (p *Piecewise) PieceForT(t, tolerance float64) (Piece, bool) {
	n := len(p.pieces)
	if n == 0 {
		return Piece{}, false
	}
	first := p.pieces[0]
	if n == 1 || t <= first.Param+tolerance {
		return Piece{Mapping: first.Mapping, Param: t}, true
	}
	last := p.pieces[n-1]
	if t >= last.Param-tolerance {
		return Piece{Mapping: last.Mapping, Param: t - last.Param}, true
	}
	i := 0
	for i+1 < n-1 && t >= p.pieces[i+1].Param-tolerance {
		i++
	}
	lo, hi := p.pieces[i], p.pieces[i+1]
	d := hi.Param - lo.Param
	if d <= 0 {
		return Piece{Mapping: lo.Mapping, Param: 0}, true
	}
	return Piece{Mapping: lo.Mapping, Param: (t - lo.Param) / d}, true
}

// Call evaluates the piecewise function at v.
func (p *Piecewise) Call(v float64) float64 {
	pc, ok := p.PieceForT(v, DefaultTolerance)
	if !ok || pc.Mapping == nil {
		return 0
	}
	return pc.Mapping.Call(pc.Param)
}

func (p *Piecewise) String() string {
	return fmt.Sprintf("Piecewise[%d pieces]", len(p.pieces))
}

// Sawtooth returns a Piecewise that ramps from lower to upper freq times over
// [0,1] and holds upper at 1.
func Sawtooth(freq, lower, upper float64) (*Piecewise, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("frequency must be positive, got %g", freq)
	}
	ramp := Linear{Lower: lower, Upper: upper}
	p := &Piecewise{}
	d := 1 / freq
	for t := 0.0; t < 1; t += d {
		p.AddPiece(ramp, t)
	}
	p.AddPiece(Constant(upper), 1)
	return p, nil
}

// Step returns a Piecewise staircase from lower to upper in numSteps equal
// steps.
func Step(numSteps int, lower, upper float64) (*Piecewise, error) {
	if numSteps <= 0 {
		return nil, fmt.Errorf("number of steps must be positive, got %d", numSteps)
	}
	p := &Piecewise{}
	dt := 1 / float64(numSteps)
	dv := (upper - lower) / float64(numSteps)
	for i := 0; i <= numSteps; i++ {
		p.AddPiece(Constant(lower+float64(i)*dv), float64(i)*dt)
	}
	return p, nil
}
