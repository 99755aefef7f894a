// Package merkle implements a dense binary commitment tree and the index
// arithmetic it is built on. The tree is stored as a flat array, root at
// index 0, children of node i at 2i+1 and 2i+2, leaves in the tail half of
// the array. Leaves are opaque byte strings, typically field-element rows of
// a serialized multilinear table.
package merkle

// Sibling returns the sibling index of a node, the root is its own sibling
func Sibling(index int) int {
	if index == 0 {
		return 0
	}
	if index%2 == 0 {
		return index - 1
	}
	return index + 1
}

// Parent returns the parent index of a node
func Parent(index int) int {
	return (index - 1) / 2
}

// ExtraHashCount returns the number of internal nodes needed on top of the
// leaves to complete the tree
func ExtraHashCount(leafCount int) int {
	return leafCount - 1
}

// NumberOfLeaves returns the leaf count of a tree from its total node count
func NumberOfLeaves(treeLen int) int {
	return (treeLen + 1) / 2
}

// ExtendToPowerOfTwo pads the input with copies of defaultValue until its
// length is a power of two
func ExtendToPowerOfTwo[T any](input []T, defaultValue T) []T {
	for n := nextPowerOfTwo(len(input)) - len(input); n > 0; n-- {
		input = append(input, defaultValue)
	}
	return input
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
