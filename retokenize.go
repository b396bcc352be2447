package ash

import (
	"math"

	"github.com/llehouerou/go-ash/internal/huffman"
	"github.com/llehouerou/go-ash/internal/lz"
)

// parseNode holds the optimal decomposition of the input from one
// position to the end: the token chosen there and the total bit cost of
// the tail under the current trees.
type parseNode struct {
	token  lz.Token
	weight uint32
}

// retokenize re-parses buf to minimize total code length under the
// given trees. Only symbols that are leaves of the trees may be used:
// every byte value present in buf has a leaf (it occurred at least once
// in the parse the trees were trained on), but the length and distance
// alphabets shrink to whatever the previous parse actually used.
//
// The parse is a right-to-left dynamic program. At each position the
// candidates are a literal and every allowed length up to the longest
// restricted match; the winner's distance is then re-selected among all
// verified candidates by cheapest code.
func retokenize(buf []byte, symTree, distTree *huffman.Node) []lz.Token {
	size := len(buf)
	nodes := make([]parseNode, size)

	lenLeaves := symTree.Leaves(lengthSymbolBase)
	distLeaves := distTree.Leaves(0)

	lengths := make([]int, len(lenLeaves))
	for i, l := range lenLeaves {
		lengths[i] = int(l.Sym) - lengthSymbolBase + MinMatchLength
	}
	dists := make([]int, len(distLeaves))
	for i, l := range distLeaves {
		dists[i] = int(l.Sym) + 1
	}

	for pos := size - 1; pos >= 0; pos-- {
		length, distance := 0, 0
		if len(lengths) > 0 {
			length, distance = lz.SearchRestricted(buf, pos, dists, lengths[len(lengths)-1])
		}

		lengthIdx := -1
		if length >= MinMatchLength {
			length, lengthIdx = roundDownLength(length, lengths)
		} else {
			length = 1
		}

		var weight uint32
		if length < MinMatchLength {
			// Literal only.
			weight = uint32(symTree.Depth(uint32(buf[pos])))
			if pos+1 < size {
				weight += nodes[pos+1].weight
			}
			length = 1
		} else {
			distCost := uint32(distTree.Depth(uint32(distance - 1)))

			// Try every allowed length below the match, plus the
			// literal at length 1, keeping the cheapest tail.
			weightBest := uint32(math.MaxUint32)
			lengthBest := length
			for length > 0 {
				var stepCost uint32
				if length > 1 {
					stepCost = uint32(lenLeaves[lengthIdx].Depth)
				} else {
					stepCost = uint32(symTree.Depth(uint32(buf[pos])))
				}

				thisWeight := stepCost
				if pos+length < size {
					thisWeight += nodes[pos+length].weight
				}
				if thisWeight < weightBest {
					weightBest = thisWeight
					lengthBest = length
				}

				length, lengthIdx = roundDownLength(length-1, lengths)
			}

			length = lengthBest
			if length < MinMatchLength {
				length = 1
				distCost = 0
			} else {
				// The search returned some valid distance; a cheaper
				// code may exist for the same length. Verify each
				// candidate before trusting it.
				for i, d := range dists {
					if d > pos {
						break
					}
					if uint32(distLeaves[i].Depth) < distCost && lz.ConfirmMatch(buf, pos, d, length) {
						distCost = uint32(distLeaves[i].Depth)
						distance = d
					}
				}
			}
			weight = weightBest + distCost
		}

		if length >= MinMatchLength {
			nodes[pos] = parseNode{
				token:  lz.Token{Ref: true, Length: length, Distance: distance},
				weight: weight,
			}
		} else {
			nodes[pos] = parseNode{
				token:  lz.Token{Literal: buf[pos]},
				weight: weight,
			}
		}
	}

	// Chain the chosen tokens front to back.
	var tokens []lz.Token
	for pos := 0; pos < size; {
		tok := nodes[pos].token
		tokens = append(tokens, tok)
		if tok.Ref {
			pos += tok.Length
		} else {
			pos++
		}
	}
	return tokens
}

// roundDownLength maps v to the largest allowed length <= v, returning
// the value and its index. Values below every allowed length map to 1
// (a literal, index -1); 0 maps to 0 and ends the caller's scan.
func roundDownLength(v int, allowed []int) (int, int) {
	if v == 0 {
		return 0, -1
	}
	lo, loIdx := 0, -1
	for i, x := range allowed {
		if x == v {
			return v, i
		}
		if x < v {
			lo, loIdx = x, i
		} else {
			break
		}
	}
	if lo == 0 {
		lo = 1
	}
	return lo, loIdx
}
