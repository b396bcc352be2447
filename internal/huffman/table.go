// Package huffman implements the Huffman coding ASH0 embeds in its bit
// streams: a tree whose shape is serialized by a prefix depth-first
// walk, with leaves carrying fixed-width symbols.
package huffman

import (
	"errors"

	"github.com/llehouerou/go-ash/internal/bits"
)

// ErrInvalidTree is reported when a serialized tree describes more
// internal nodes than the alphabet width allows, or consists of a
// single leaf (a shape the serialization cannot produce).
var ErrInvalidTree = errors.New("huffman: malformed tree")

// Pending-slot tags for the deserializer's work stack. Each entry names
// an internal node index and which child of it is still unassigned.
const (
	slotRight = 0x80000000
	slotLeft  = 0x40000000
	slotMask  = 0x3FFFFFFF
)

// Table is the decode-side tree representation: two parallel child
// arrays indexed by node. Indices below leafLimit are leaves and
// identify their own symbol; internal nodes start at leafLimit.
type Table struct {
	left      []uint32
	right     []uint32
	root      uint32
	leafLimit uint32
}

// ReadTable deserializes a tree over a width-bit alphabet from r. The
// serialization is a prefix DFS: bit 1 introduces an internal node
// followed by its left then right subtree, bit 0 a leaf followed by the
// symbol in width bits.
//
// The walk is driven by an explicit stack of pending child slots. An
// internal node pushes its right slot then its left, so the left
// subtree assembles first. Completing a subtree fills the topmost slot;
// filling a right slot completes that parent too, so the unwind
// continues with the parent's own index until a left slot (or the
// root) absorbs it.
func ReadTable(r *bits.Reader, width int) (*Table, error) {
	leafLimit := uint32(1) << width
	t := &Table{
		left:      make([]uint32, 2*leafLimit-1),
		right:     make([]uint32, 2*leafLimit-1),
		leafLimit: leafLimit,
	}

	work := make([]uint32, 0, 2*width+2)
	next := leafLimit // next internal node index to allocate

	for {
		if r.ReadBit() != 0 {
			if next >= 2*leafLimit-1 {
				return nil, ErrInvalidTree
			}
			work = append(work, next|slotRight, next|slotLeft)
			next++
			continue
		}

		v := r.ReadBits(uint(width))
		if err := r.Err(); err != nil {
			return nil, err
		}
		if len(work) == 0 {
			// Leaf at the root: a one-symbol tree has no representation.
			return nil, ErrInvalidTree
		}

		for {
			entry := work[len(work)-1]
			work = work[:len(work)-1]
			idx := entry & slotMask
			if entry&slotRight == 0 {
				t.left[idx] = v
				break
			}
			t.right[idx] = v
			v = idx
			if len(work) == 0 {
				t.root = v
				return t, nil
			}
		}
	}
}

// Decode reads one symbol from r. Starting at the root, each bit picks
// the left (0) or right (1) child until a leaf index is reached.
// Callers check r.Err after decoding.
func (t *Table) Decode(r *bits.Reader) uint32 {
	n := t.root
	for n >= t.leafLimit {
		if r.ReadBit() == 0 {
			n = t.left[n]
		} else {
			n = t.right[n]
		}
	}
	return n
}

// Root returns the root node index. Exposed for tests.
func (t *Table) Root() uint32 {
	return t.root
}
