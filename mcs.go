package barrier

import "fmt"

// mcsNode is one participant's slot in both the 4-ary arrival tree and
// the binary release tree.
type mcsNode struct {
	havechild     [4]bool
	childnotready [4]word
	parent        *word // slot in the parent's childnotready this node clears
	children      [2]*word
	parentsense   word
	dummy         word // scratch target for nodes with no parent/children
}

// MCSTree is the topology: N nodes wired into a 4-ary arrival tree (via
// parent/childnotready) and an implicit binary release tree (via
// children/parentsense).
type MCSTree struct {
	n      int
	nodes  []mcsNode
	nextID word
}

// NewMCSTree builds the arrival and release tree links for n participants.
// havechild uses the encoding (i<<2)+j < n-1, equivalently "child index
// 4*i+j+1 exists"; this must stay consistent with the parent-slot
// encoding below, which walks the same 4-ary indexing in reverse.
func NewMCSTree(n int) *MCSTree {
	if n < 1 {
		panic("barrier: n must be >= 1")
	}
	t := &MCSTree{n: n, nodes: make([]mcsNode, n)}

	for i := 0; i < n; i++ {
		node := &t.nodes[i]

		for j := 0; j < 4; j++ {
			node.havechild[j] = (i<<2)+j < n-1
			if node.havechild[j] {
				storeUint(&node.childnotready[j], allOnes)
			} else {
				storeUint(&node.childnotready[j], 0)
			}
		}

		if i == 0 {
			node.parent = &node.dummy
		} else {
			p := (i - 1) >> 2
			off := (i - 1) & 3
			node.parent = &t.nodes[p].childnotready[off]
		}

		for k := 0; k < 2; k++ {
			childIdx := 2*i + 1 + k
			if childIdx < n {
				node.children[k] = &t.nodes[childIdx].parentsense
			} else {
				node.children[k] = &node.dummy
			}
		}
	}

	return t
}

// ChildNotReady returns node i's current childnotready flag for slot j,
// for tests and diagnostics only.
func (t *MCSTree) ChildNotReady(i, j int) uint32 { return loadUint(&t.nodes[i].childnotready[j]) }

// ParentSense returns node i's current parentsense flag, for tests and
// diagnostics only.
func (t *MCSTree) ParentSense(i int) uint32 { return loadUint(&t.nodes[i].parentsense) }

// String reports the topology size.
func (t *MCSTree) String() string { return fmt.Sprintf("MCSTree(n=%d)", t.n) }

// MCSState is one thread's expected sense and virtual id.
type MCSState struct {
	id    int
	sense uint32
}

// NewState assigns the next sequential virtual thread id and returns a
// fresh state with sense all-ones.
func (t *MCSTree) NewState() *MCSState {
	id := faaUint(&t.nextID, 1)
	return &MCSState{id: int(id), sense: allOnes}
}

// Wait blocks until every node's arrival subtree has reported ready,
// then releases both halves of the binary release tree.
func (t *MCSTree) Wait(s *MCSState) {
	node := &t.nodes[s.id]

	for j := 0; j < 4; j++ {
		for loadUint(&node.childnotready[j]) != 0 {
			stall()
		}
	}

	for j := 0; j < 4; j++ {
		v := uint32(0)
		if node.havechild[j] {
			v = allOnes
		}
		storeUint(&node.childnotready[j], v)
	}

	storeUint(node.parent, 0)

	if s.id != 0 {
		for loadUint(&node.parentsense) != s.sense {
			stall()
		}
	}

	storeUint(node.children[0], s.sense)
	storeUint(node.children[1], s.sense)

	s.sense ^= allOnes
}
