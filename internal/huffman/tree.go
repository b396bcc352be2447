package huffman

import (
	"sort"

	"github.com/llehouerou/go-ash/internal/bits"
)

// Node is the encode-side tree representation. Leaves have nil children
// and carry a symbol; internal nodes carry the symbol range and leaf
// count of their subtree so encoding can steer by subtree membership.
type Node struct {
	Sym  uint32
	Freq int

	symMin     uint32
	symMax     uint32
	nRepresent uint32

	Left  *Node
	Right *Node
}

// Leaf describes one leaf of a built tree: its symbol and its depth,
// which is also its code length in bits.
type Leaf struct {
	Sym   uint32
	Depth int
}

// Build constructs a Huffman tree from a frequency histogram covering
// the full alphabet (len(freqs) must be the alphabet size). Symbols
// with zero frequency get no leaf. If fewer than two symbols occur,
// zero-frequency symbols are promoted with frequency one until two
// leaves exist, since the serialization cannot express a smaller tree.
func Build(freqs []int) *Node {
	live := make([]*Node, 0, len(freqs))
	for sym, f := range freqs {
		if f > 0 {
			s := uint32(sym)
			live = append(live, &Node{Sym: s, Freq: f, symMin: s, symMax: s, nRepresent: 1})
		}
	}

	// Pad the alphabet with dummy leaves in symbol order.
	for sym := 0; len(live) < 2 && sym < len(freqs); sym++ {
		if freqs[sym] == 0 {
			s := uint32(sym)
			live = append(live, &Node{Sym: s, Freq: 1, symMin: s, symMax: s, nRepresent: 1})
		}
	}

	byFreqDesc := func(i, j int) bool { return live[i].Freq > live[j].Freq }
	sort.SliceStable(live, byFreqDesc)

	// Repeatedly merge the two rarest roots. The more frequent of the
	// pair becomes the left child.
	for len(live) > 1 {
		left := live[len(live)-2]
		right := live[len(live)-1]
		branch := &Node{
			Freq:       left.Freq + right.Freq,
			symMin:     min(left.symMin, right.symMin),
			symMax:     max(left.symMax, right.symMax),
			nRepresent: left.nRepresent + right.nRepresent,
			Left:       left,
			Right:      right,
		}
		live = live[:len(live)-2]
		live = append(live, branch)
		sort.SliceStable(live, byFreqDesc)
	}

	root := live[0]
	root.makeShallowFirst()
	return root
}

// makeShallowFirst swaps children so the subtree with fewer leaves is
// on the left. The serialization carries only tree shape, and encoding
// steers by subtree membership, so the swap must happen before either.
func (n *Node) makeShallowFirst() {
	if n.Left == nil {
		return
	}
	if n.Left.nRepresent > n.Right.nRepresent {
		n.Left, n.Right = n.Right, n.Left
	}
	n.Left.makeShallowFirst()
	n.Right.makeShallowFirst()
}

// contains reports whether sym is a leaf of the subtree. The symbol
// range is only a bound, not a membership proof: sibling ranges may
// overlap, so a hit still recurses.
func (n *Node) contains(sym uint32) bool {
	if n.Left == nil {
		return n.Sym == sym
	}
	if sym < n.symMin || sym > n.symMax {
		return false
	}
	return n.Left.contains(sym) || n.Right.contains(sym)
}

// Depth returns the code length of sym, or 0 if sym is not in the tree.
func (n *Node) Depth(sym uint32) int {
	if n.Left == nil {
		return 0
	}
	if n.Left.contains(sym) {
		return n.Left.Depth(sym) + 1
	}
	if n.Right.contains(sym) {
		return n.Right.Depth(sym) + 1
	}
	return 0
}

// WriteSymbol emits the code for sym: 0 for each left branch taken, 1
// for each right branch, down to the leaf. sym must be in the tree.
func (n *Node) WriteSymbol(w *bits.Writer, sym uint32) {
	if n.Left == nil {
		return
	}
	if n.Left.contains(sym) {
		w.WriteBit(0)
		n.Left.WriteSymbol(w, sym)
	} else {
		w.WriteBit(1)
		n.Right.WriteSymbol(w, sym)
	}
}

// Serialize emits the prefix-DFS form read back by ReadTable: 1 then
// left then right for an internal node, 0 then the symbol in width bits
// for a leaf.
func (n *Node) Serialize(w *bits.Writer, width int) {
	if n.Left != nil {
		w.WriteBit(1)
		n.Left.Serialize(w, width)
		n.Right.Serialize(w, width)
		return
	}
	w.WriteBit(0)
	w.WriteBits(n.Sym, uint(width))
}

// Leaves returns the leaves with symbol >= minSym, sorted by symbol
// ascending, with their code lengths.
func (n *Node) Leaves(minSym uint32) []Leaf {
	var out []Leaf
	n.appendLeaves(&out, 0, minSym)
	sort.Slice(out, func(i, j int) bool { return out[i].Sym < out[j].Sym })
	return out
}

func (n *Node) appendLeaves(out *[]Leaf, depth int, minSym uint32) {
	if n.Left == nil {
		if n.Sym >= minSym {
			*out = append(*out, Leaf{Sym: n.Sym, Depth: depth})
		}
		return
	}
	n.Left.appendLeaves(out, depth+1, minSym)
	n.Right.appendLeaves(out, depth+1, minSym)
}
