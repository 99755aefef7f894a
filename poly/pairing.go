package poly

import "errors"

// ErrPairingTarget is returned when the target variable does not exist in the
// table being paired
var ErrPairingTarget = errors.New("target variable must be less than the number of variables")

// PairingAlgo selects the algorithm used to enumerate pairing indices
type PairingAlgo int

const (
	// PairingShift walks the index space block by block, adding a constant
	// stride to recover the high member of each pair. No per-element bit
	// manipulation.
	PairingShift PairingAlgo = iota
	// PairingBitInsert rebuilds each pair from its reduced index by inserting
	// a 0 (resp. 1) bit at the target variable's position.
	PairingBitInsert
)

// PairingIndex enumerates, for a table of 2^nVars evaluations and a target
// variable, the 2^(nVars-1) index pairs (low, high) whose binary expansions
// agree everywhere except on the target variable's bit. The first variable
// maps to the most significant bit. Pairs come out in ascending order of the
// reduced index, i.e. the slot the pair collapses into once the variable is
// eliminated.
type PairingIndex struct {
	algo   PairingAlgo
	bitPos int // bit position of the target variable, counted from the LSB
	shift  int // distance between the two members of a pair: 1 << bitPos
	size   int // number of pairs: 2^(nVars-1)

	// iteration state
	reduced int
	cursor  int // next low value, shift algorithm only
}

// NewPairingIndex errors if targetVar is out of range for nVars, this also
// rejects nVars == 0 which has no variable to pair on.
func NewPairingIndex(nVars, targetVar int, algo PairingAlgo) (*PairingIndex, error) {
	if targetVar < 0 || targetVar >= nVars {
		return nil, ErrPairingTarget
	}

	bitPos := nVars - 1 - targetVar
	return &PairingIndex{
		algo:   algo,
		bitPos: bitPos,
		shift:  1 << bitPos,
		size:   1 << (nVars - 1),
	}, nil
}

// ShiftValue returns the constant distance between the low and high members
// of every pair
func (p *PairingIndex) ShiftValue() int {
	return p.shift
}

// Len returns the total number of pairs the iterator yields
func (p *PairingIndex) Len() int {
	return p.size
}

// Reset rewinds the iterator to the first pair
func (p *PairingIndex) Reset() {
	p.reduced = 0
	p.cursor = 0
}

// Next returns the pair for the current reduced index, ok is false once all
// 2^(nVars-1) pairs have been yielded.
func (p *PairingIndex) Next() (low, high int, ok bool) {
	if p.reduced >= p.size {
		return 0, 0, false
	}

	switch p.algo {
	case PairingBitInsert:
		low = p.reduced>>p.bitPos<<(p.bitPos+1) | p.reduced&(p.shift-1)
	default:
		low = p.cursor
		// within a block of 2*shift positions, the first shift entries are
		// lows and the next shift entries are their highs. Skip the highs.
		p.cursor++
		if p.cursor%(2*p.shift) == p.shift {
			p.cursor += p.shift
		}
	}

	p.reduced++
	return low, low + p.shift, true
}
