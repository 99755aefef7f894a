package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// EvalEq computes Eq(q1, ... , qn, h1, ... , hn) = Π_1^n Eq(qi, hi)
// where Eq(x,y) = xy + (1-x)(1-y) = 1 - x - y + 2xy interpolates
//      _________________
//      |       |       |
//      |   0   |   1   |
//      |_______|_______|
//  y   |       |       |
//      |   1   |   0   |
//      |_______|_______|
//
//              x
func EvalEq(q, h []fr.Element) fr.Element {
	var res, nxt, one, sum fr.Element
	one.SetOne()
	res.SetOne()
	for i := 0; i < len(q); i++ {
		nxt.Mul(&q[i], &h[i]) // nxt <- qi * hi
		nxt.Add(&nxt, &nxt)   // nxt <- 2 * qi * hi
		nxt.Add(&nxt, &one)   // nxt <- 1 + 2 * qi * hi
		sum.Add(&q[i], &h[i]) // sum <- qi + hi
		nxt.Sub(&nxt, &sum)   // nxt <- 1 + 2 * qi * hi - qi - hi
		res.Mul(&res, &nxt)   // res <- res * nxt
	}
	return res
}

// EqTable returns the multilinear table of Eq(q, *) over the hypercube of
// len(q) variables, first variable of * on the most significant bit. It is
// the fold of the sparse 2n-variate eq table along q, computed directly on
// the dense 2^n output so the sparse table never materializes.
//
// Summing EqTable(q)[x] * f(x) over the cube recovers f(q) for any
// multilinear f, which makes it the standard cross-check (and sumcheck
// companion) for MultiLin.Evaluate.
func EqTable(q []fr.Element) (MultiLin, error) {
	n := len(q)
	evals := make([]fr.Element, 1<<n)
	evals[0].SetOne()

	for i, r := range q {
		for j := 0; j < (1 << i); j++ {
			J := j << (n - i)
			JNext := J + 1<<(n-1-i)
			evals[JNext].Mul(&r, &evals[J])
			evals[J].Sub(&evals[J], &evals[JNext])
		}
	}

	return NewMultiLin(n, evals)
}
