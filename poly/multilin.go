// Package poly implements dense multilinear polynomials in evaluation form
// over the bn254 scalar field, together with the hypercube pairing-index
// iterators used to fold them one variable at a time. This is the bookkeeping
// core consumed by sumcheck and GKR style provers.
package poly

import (
	"errors"

	"github.com/consensys/multilin/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrLengthMismatch is returned when an evaluation table length is not
	// 2^nVars
	ErrLengthMismatch = errors.New("evaluation table length should equal 2^nVars")
	// ErrAssignmentsLen is returned by Evaluate when not all variables are
	// assigned
	ErrAssignmentsLen = errors.New("evaluate must assign to all variables")
)

// MultiLin holds all the evaluations of an nVars-variate multilinear
// polynomial over the boolean hypercube {0,1}^nVars. Point i of the cube is
// the binary expansion of i, first variable on the most significant bit.
// A MultiLin is immutable: folding a variable yields a fresh instance.
type MultiLin struct {
	nVars int
	evals []fr.Element
}

// NewMultiLin checks that the table length matches the variable count and
// takes ownership of evals. We cannot pad an arbitrary table, there is no
// appropriate element to pad with.
func NewMultiLin(nVars int, evals []fr.Element) (MultiLin, error) {
	if len(evals) != 1<<nVars {
		return MultiLin{}, ErrLengthMismatch
	}
	return MultiLin{nVars: nVars, evals: evals}, nil
}

// NVars returns the number of variables
func (m MultiLin) NVars() int {
	return m.nVars
}

// EvaluationSlice returns the underlying evaluation table without copying.
// The caller must not modify it.
func (m MultiLin) EvaluationSlice() []fr.Element {
	return m.evals
}

func (m MultiLin) String() string {
	return common.FrSliceToString(m.evals)
}

// PartialEvaluate fixes len(assignments) consecutive variables starting at
// initialVar and returns the polynomial over the remaining variables.
// e.g. for f(a, b, c, d, e, f)
//
//	f.PartialEvaluate(1, []fr.Element{two, three, four})
//
// sets b = 2, c = 3 and d = 4 and returns the resulting 3-variate table.
//
// Each assignment pulls the evaluation pairs of the targeted variable from
// the hypercube and evaluates at r the straight line through each pair:
// low - r*(low - high), i.e. (1-r)*low + r*high with one multiplication.
// Assignments of exactly 0 or 1 reduce to selecting one member of the pair.
func (m MultiLin) PartialEvaluate(initialVar int, assignments []fr.Element) (MultiLin, error) {
	if initialVar+len(assignments) > m.nVars {
		return MultiLin{}, ErrPairingTarget
	}

	work := MakeLarge(len(m.evals))
	defer DumpLarge(work)
	copy(work, m.evals)

	var tmp fr.Element
	for k := range assignments {
		r := &assignments[k]
		// the effective table shrinks by half at every step, so the pairing
		// runs over nVars-k variables, not the original count
		pairing, err := NewPairingIndex(m.nVars-k, initialVar, PairingShift)
		if err != nil {
			return MultiLin{}, err
		}

		switch {
		case r.IsZero():
			for i := 0; ; i++ {
				low, _, ok := pairing.Next()
				if !ok {
					break
				}
				work[i] = work[low]
			}
		case r.IsOne():
			for i := 0; ; i++ {
				_, high, ok := pairing.Next()
				if !ok {
					break
				}
				work[i] = work[high]
			}
		default:
			for i := 0; ; i++ {
				low, high, ok := pairing.Next()
				if !ok {
					break
				}
				tmp.Sub(&work[low], &work[high])
				tmp.Mul(&tmp, r)
				work[i].Sub(&work[low], &tmp)
			}
		}
	}

	newNVars := m.nVars - len(assignments)
	evals := make([]fr.Element, 1<<newNVars)
	copy(evals, work)

	// truncation always yields a length-correct table, a failure here would
	// be an internal defect
	return NewMultiLin(newNVars, evals)
}

// Evaluate assigns all variables at once and returns the field value of the
// polynomial at the given point
func (m MultiLin) Evaluate(assignments []fr.Element) (fr.Element, error) {
	if len(assignments) != m.nVars {
		return fr.Element{}, ErrAssignmentsLen
	}

	folded, err := m.PartialEvaluate(0, assignments)
	if err != nil {
		return fr.Element{}, err
	}
	return folded.evals[0], nil
}

// ToBytes serializes the table by concatenating the canonical big-endian
// bytes of each evaluation, in cube order. One-way encoding, meant to feed
// hashing and commitment layers.
func (m MultiLin) ToBytes() []byte {
	res := make([]byte, 0, len(m.evals)*fr.Bytes)
	for i := range m.evals {
		b := m.evals[i].Bytes()
		res = append(res, b[:]...)
	}
	return res
}
