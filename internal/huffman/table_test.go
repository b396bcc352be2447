package huffman

import (
	"testing"

	"github.com/llehouerou/go-ash/internal/bits"
)

// testTree describes a tree for tests; emit writes its bit form:
// an internal node is 1 followed by both subtrees, a leaf is 0 followed
// by the symbol in width bits.
type testTree struct {
	sym         uint32
	left, right *testTree
}

func leaf(sym uint32) *testTree       { return &testTree{sym: sym} }
func branch(l, r *testTree) *testTree { return &testTree{left: l, right: r} }

func (n *testTree) emit(w *bits.Writer, width int) {
	if n.left != nil {
		w.WriteBit(1)
		n.left.emit(w, width)
		n.right.emit(w, width)
		return
	}
	w.WriteBit(0)
	w.WriteBits(n.sym, uint(width))
}

func TestReadTable_TwoLeaves(t *testing.T) {
	var w bits.Writer
	branch(leaf(0x41), leaf(0x42)).emit(&w, 9)

	r := bits.NewReader(w.Bytes(), 0)
	tab, err := ReadTable(r, 9)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if tab.Root() != 1<<9 {
		t.Errorf("root = %d, want %d", tab.Root(), 1<<9)
	}

	// Codes: 0x41 = "0", 0x42 = "1".
	var codes bits.Writer
	codes.WriteBit(0)
	codes.WriteBit(1)
	cr := bits.NewReader(codes.Bytes(), 0)
	if got := tab.Decode(cr); got != 0x41 {
		t.Errorf("Decode(0) = %d, want 0x41", got)
	}
	if got := tab.Decode(cr); got != 0x42 {
		t.Errorf("Decode(1) = %d, want 0x42", got)
	}
	if cr.Err() != nil {
		t.Errorf("Err = %v, want nil", cr.Err())
	}
}

func TestReadTable_NestedTree(t *testing.T) {
	// (A, (B, 300)): A="0", B="10", 300="11".
	var w bits.Writer
	branch(leaf('A'), branch(leaf('B'), leaf(300))).emit(&w, 9)

	r := bits.NewReader(w.Bytes(), 0)
	tab, err := ReadTable(r, 9)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}

	var codes bits.Writer
	codes.WriteBits(0b0, 1)  // A
	codes.WriteBits(0b10, 2) // B
	codes.WriteBits(0b11, 2) // 300
	cr := bits.NewReader(codes.Bytes(), 0)

	want := []uint32{'A', 'B', 300}
	for i, ws := range want {
		if got := tab.Decode(cr); got != ws {
			t.Errorf("symbol %d = %d, want %d", i, got, ws)
		}
	}
}

func TestReadTable_LeftLeaningTree(t *testing.T) {
	// (((D, C), B), A): deep left spine exercises the unwind loop
	// through consecutive right-slot installs.
	var w bits.Writer
	branch(branch(branch(leaf(3), leaf(2)), leaf(1)), leaf(0)).emit(&w, 2)

	r := bits.NewReader(w.Bytes(), 0)
	tab, err := ReadTable(r, 2)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}

	var codes bits.Writer
	codes.WriteBits(0b000, 3) // 3
	codes.WriteBits(0b001, 3) // 2
	codes.WriteBits(0b01, 2)  // 1
	codes.WriteBits(0b1, 1)   // 0
	cr := bits.NewReader(codes.Bytes(), 0)

	for want := uint32(3); ; want-- {
		if got := tab.Decode(cr); got != want {
			t.Errorf("Decode = %d, want %d", got, want)
		}
		if want == 0 {
			break
		}
	}
	if cr.Err() != nil {
		t.Errorf("Err = %v, want nil", cr.Err())
	}
}

func TestReadTable_SingleLeafRejected(t *testing.T) {
	var w bits.Writer
	leaf(7).emit(&w, 9)

	r := bits.NewReader(w.Bytes(), 0)
	if _, err := ReadTable(r, 9); err != ErrInvalidTree {
		t.Errorf("err = %v, want ErrInvalidTree", err)
	}
}

func TestReadTable_TooManyInternalNodes(t *testing.T) {
	// Width 1 allows a single internal node; a second one cannot exist.
	var w bits.Writer
	w.WriteBit(1)
	w.WriteBit(1)

	r := bits.NewReader(w.Bytes(), 0)
	if _, err := ReadTable(r, 1); err != ErrInvalidTree {
		t.Errorf("err = %v, want ErrInvalidTree", err)
	}
}

func TestReadTable_TruncatedStream(t *testing.T) {
	// Twenty opening internal nodes leave too little of the single word
	// for the leaves they demand; the reader runs off the stream.
	var w bits.Writer
	w.WriteBits(0xFFFFF, 20)

	r := bits.NewReader(w.Bytes(), 0)
	if _, err := ReadTable(r, 9); err != bits.ErrUnexpectedEOF {
		t.Errorf("err = %v, want bits.ErrUnexpectedEOF", err)
	}
}
