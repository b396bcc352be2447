// Package lz provides the LZ77 tokenization ASH0 compresses with:
// longest-match search over a look-back window and a greedy parse of
// the input into literals and back references.
package lz

// Token is one element of a parse: either a literal byte or a
// (length, distance) back reference. References have Length >= 3.
type Token struct {
	Ref      bool
	Literal  byte
	Length   int
	Distance int
}

// matchLength counts the leading bytes of buf[pos:] that match
// buf[pos-dist:], up to limit. Matching past pos is fine: earlier
// matched bytes serve as source, which is what lets a reference run
// longer than its distance.
func matchLength(buf []byte, pos, dist, limit int) int {
	n := 0
	for n < limit && buf[pos+n] == buf[pos-dist+n] {
		n++
	}
	return n
}

// Search finds the longest match for buf[pos:] within the window
// [minDist, maxDist] behind pos, capped at maxLen. Distances are
// scanned ascending and ties keep the first hit, so among equal-length
// matches the nearest wins. Returns (0, 0) when nothing matches.
func Search(buf []byte, pos, minDist, maxDist, maxLen int) (length, distance int) {
	if maxDist > pos {
		maxDist = pos
	}
	limit := maxLen
	if rest := len(buf) - pos; limit > rest {
		limit = rest
	}

	for d := minDist; d <= maxDist; d++ {
		n := matchLength(buf, pos, d, limit)
		if n > length {
			length = n
			distance = d
			if length == limit {
				break
			}
		}
	}
	return length, distance
}

// SearchRestricted is Search constrained to an explicit candidate list.
// distances must be sorted ascending. The re-tokenizer uses it once the
// distance alphabet has been pruned to the leaves of a trained tree.
func SearchRestricted(buf []byte, pos int, distances []int, maxLen int) (length, distance int) {
	if len(distances) == 0 {
		return 0, 0
	}
	maxDist := distances[len(distances)-1]
	if maxDist > pos {
		maxDist = pos
	}
	limit := maxLen
	if rest := len(buf) - pos; limit > rest {
		limit = rest
	}

	for _, d := range distances {
		if d > maxDist {
			break
		}
		n := matchLength(buf, pos, d, limit)
		if n > length {
			length = n
			distance = d
			if length == limit {
				break
			}
		}
	}
	return length, distance
}

// ConfirmMatch reports whether a (length, distance) reference at pos
// reproduces buf[pos:pos+length] exactly. pos+length must be within
// buf.
func ConfirmMatch(buf []byte, pos, dist, length int) bool {
	if dist < 1 || dist > pos {
		return false
	}
	return matchLength(buf, pos, dist, length) == length
}

// Tokenize greedily parses buf: at each position the longest match
// within maxDist wins if it reaches the minimum reference length,
// otherwise a literal is emitted.
func Tokenize(buf []byte, maxLen, maxDist int) []Token {
	var tokens []Token
	pos := 0
	for pos < len(buf) {
		length, distance := Search(buf, pos, 1, maxDist, maxLen)
		if length >= 3 {
			tokens = append(tokens, Token{Ref: true, Length: length, Distance: distance})
			pos += length
		} else {
			tokens = append(tokens, Token{Literal: buf[pos]})
			pos++
		}
	}
	return tokens
}
