package merkle

import (
	"bytes"
	"hash"

	"github.com/consensys/multilin/common"

	"golang.org/x/crypto/sha3"
)

// Hasher builds a fresh hash.Hash per node, trees are hashed concurrently
type Hasher func() hash.Hash

// Keccak is the default tree hasher
func Keccak() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// Tree is a dense binary merkle tree committing to a list of byte-string
// leaves. Leaves are padded with empty strings up to a power of two.
type Tree struct {
	nodes     [][]byte
	leafCount int
	hasher    Hasher
}

// BuildTree commits to the leaves with the default keccak hasher
func BuildTree(leaves [][]byte) *Tree {
	return BuildTreeWithHasher(leaves, Keccak)
}

// BuildTreeWithHasher commits to the leaves with the provided hasher.
// Leaf hashing is parallelized, one hash.Hash instance per worker.
func BuildTreeWithHasher(leaves [][]byte, hasher Hasher) *Tree {
	leaves = ExtendToPowerOfTwo(leaves, []byte{})
	leafCount := len(leaves)
	nodes := make([][]byte, leafCount+ExtraHashCount(leafCount))

	// the last leafCount slots hold the leaf hashes, in leaf order
	firstLeaf := leafCount - 1
	common.Parallelize(leafCount, func(start, stop int) {
		h := hasher()
		for i := start; i < stop; i++ {
			nodes[firstLeaf+i] = hashNode(h, leaves[i])
		}
	})

	h := hasher()
	for i := firstLeaf - 1; i >= 0; i-- {
		nodes[i] = hashNode(h, nodes[2*i+1], nodes[2*i+2])
	}

	return &Tree{nodes: nodes, leafCount: leafCount, hasher: hasher}
}

// Root returns the commitment
func (t *Tree) Root() []byte {
	return t.nodes[0]
}

// LeafCount returns the number of committed leaves, padding included
func (t *Tree) LeafCount() int {
	return t.leafCount
}

// Depth returns the number of sibling hashes in an opening proof
func (t *Tree) Depth() int {
	return common.Log2(t.leafCount)
}

// Open returns the sibling hash path authenticating the given leaf against
// the root, ordered leaf to root
func (t *Tree) Open(leafIndex int) [][]byte {
	path := make([][]byte, 0, t.Depth())
	for cur := t.leafCount - 1 + leafIndex; cur > 0; cur = Parent(cur) {
		path = append(path, t.nodes[Sibling(cur)])
	}
	return path
}

// Verify recomputes the root from a leaf and its opening path. leafCount
// must be the padded leaf count of the committing tree.
func Verify(root, leaf []byte, leafIndex, leafCount int, path [][]byte, hasher Hasher) bool {
	h := hasher()
	acc := hashNode(h, leaf)
	for cur := leafCount - 1 + leafIndex; cur > 0; cur = Parent(cur) {
		if cur%2 == 1 {
			// odd indices are left children
			acc = hashNode(h, acc, path[0])
		} else {
			acc = hashNode(h, path[0], acc)
		}
		path = path[1:]
	}
	return len(path) == 0 && bytes.Equal(acc, root)
}

func hashNode(h hash.Hash, blocks ...[]byte) []byte {
	h.Reset()
	for _, b := range blocks {
		h.Write(b)
	}
	return h.Sum(nil)
}
