package poly

import (
	"testing"

	"github.com/consensys/multilin/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frTable converts signed integers to a table of field elements
func frTable(values ...int64) []fr.Element {
	res := make([]fr.Element, len(values))
	for i, v := range values {
		res[i].SetInt64(v)
	}
	return res
}

// table of f(a, b, c) = 2ab + 3bc, point order a b c
func poly2ab3bc(t *testing.T) MultiLin {
	m, err := NewMultiLin(3, frTable(0, 0, 0, 3, 0, 0, 2, 5))
	require.NoError(t, err)
	return m
}

func TestNewMultiLin(t *testing.T) {
	// should not allow nVars / evaluation count mismatch
	_, err := NewMultiLin(2, frTable(3, 1, 2))
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = NewMultiLin(2, frTable(3, 1))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	// correct inputs
	_, err = NewMultiLin(1, frTable(3, 1))
	assert.NoError(t, err)
	m, err := NewMultiLin(2, frTable(3, 1, 2, 5))
	assert.NoError(t, err)
	assert.Equal(t, 2, m.NVars())
}

func TestPartialEvaluateSingleVariable(t *testing.T) {
	m, err := NewMultiLin(2, frTable(3, 1, 2, 5))
	require.NoError(t, err)

	// interpolation: at a = 5 the lines (3, 2) and (1, 5) give -2 and 21
	folded, err := m.PartialEvaluate(0, frTable(5))
	require.NoError(t, err)
	assert.Equal(t, frTable(-2, 21), folded.EvaluationSlice())

	// evaluating at 0 selects the lower half, no arithmetic involved
	folded, err = m.PartialEvaluate(0, frTable(0))
	require.NoError(t, err)
	assert.Equal(t, frTable(3, 1), folded.EvaluationSlice())

	// and at 1 the upper half
	folded, err = m.PartialEvaluate(0, frTable(1))
	require.NoError(t, err)
	assert.Equal(t, frTable(2, 5), folded.EvaluationSlice())

	// the receiver is left untouched
	assert.Equal(t, frTable(3, 1, 2, 5), m.EvaluationSlice())
}

func TestPartialEvaluateConsecutiveVariables(t *testing.T) {
	m := poly2ab3bc(t)

	// b = 2, c = 3 leaves f(a) = 4a + 18
	folded, err := m.PartialEvaluate(1, frTable(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, folded.NVars())
	assert.Equal(t, frTable(18, 22), folded.EvaluationSlice())
}

func TestPartialEvaluateOutOfRange(t *testing.T) {
	m := poly2ab3bc(t)

	// starting at the last variable, only one assignment fits
	_, err := m.PartialEvaluate(2, frTable(4, 5))
	assert.ErrorIs(t, err, ErrPairingTarget)
	_, err = m.PartialEvaluate(3, frTable(4))
	assert.ErrorIs(t, err, ErrPairingTarget)

	folded, err := m.PartialEvaluate(2, frTable(4))
	require.NoError(t, err)
	assert.Equal(t, 2, folded.NVars())
}

func TestFullEvaluation(t *testing.T) {
	m := poly2ab3bc(t)

	res, err := m.Evaluate(frTable(2, 3, 4))
	require.NoError(t, err)
	var expected fr.Element
	expected.SetUint64(48) // 2*2*3 + 3*3*4
	assert.Equal(t, expected, res)
}

func TestEvaluateArityCheck(t *testing.T) {
	m := poly2ab3bc(t)

	_, err := m.Evaluate(frTable(2, 3))
	assert.ErrorIs(t, err, ErrAssignmentsLen)
	_, err = m.Evaluate(frTable(2, 3, 4, 5))
	assert.ErrorIs(t, err, ErrAssignmentsLen)

	// a failed call must not have consumed the polynomial
	assert.Equal(t, frTable(0, 0, 0, 3, 0, 0, 2, 5), m.EvaluationSlice())
}

func TestEvaluateZeroVariables(t *testing.T) {
	m, err := NewMultiLin(0, frTable(7))
	require.NoError(t, err)

	res, err := m.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, frTable(7)[0], res)
}

// folding the variables one at a time must agree with a single Evaluate call
func TestFullReductionOneVariableAtATime(t *testing.T) {
	for bn := 1; bn < 10; bn++ {
		evals := common.RandomFrArray(1 << bn)
		m, err := NewMultiLin(bn, evals)
		require.NoError(t, err)

		q := common.RandomFrArray(bn)

		expected, err := m.Evaluate(q)
		require.NoError(t, err)

		folded := m
		for i := 0; i < bn; i++ {
			folded, err = folded.PartialEvaluate(0, q[i:i+1])
			require.NoError(t, err)
		}
		assert.Equal(t, 0, folded.NVars(), "bn %v", bn)
		assert.Equal(t, expected, folded.EvaluationSlice()[0], "bn %v", bn)
	}
}

func TestToBytes(t *testing.T) {
	m, err := NewMultiLin(1, frTable(3, 1))
	require.NoError(t, err)

	serialized := m.ToBytes()
	assert.Len(t, serialized, 2*fr.Bytes)

	var three fr.Element
	three.SetUint64(3)
	b := three.Bytes()
	assert.Equal(t, b[:], serialized[:fr.Bytes])
}

func BenchmarkPartialEvaluate(b *testing.B) {

	bn := 20
	evals := common.RandomFrArray(1 << bn)
	m, err := NewMultiLin(bn, evals)
	if err != nil {
		b.Fatal(err)
	}
	r := common.RandomFrArray(1)

	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		common.ProfileTrace(b, false, false, func() {
			_, _ = m.PartialEvaluate(0, r)
		})
	}
}

func BenchmarkFullEvaluation(b *testing.B) {

	bn := 20
	evals := common.RandomFrArray(1 << bn)
	m, err := NewMultiLin(bn, evals)
	if err != nil {
		b.Fatal(err)
	}
	q := common.RandomFrArray(bn)

	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		common.ProfileTrace(b, false, false, func() {
			_, _ = m.Evaluate(q)
		})
	}
}
