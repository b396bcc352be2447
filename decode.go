package ash

import (
	"encoding/binary"

	"github.com/llehouerou/go-ash/internal/bits"
	"github.com/llehouerou/go-ash/internal/huffman"
)

// Decompress expands an ASH0 stream using the default alphabet widths
// (9 symbol bits, 11 distance bits).
func Decompress(src []byte) ([]byte, error) {
	return DecompressConfig(src, Config{})
}

// DecompressConfig expands an ASH0 stream using the alphabet widths in
// cfg. The widths must match the ones the stream was produced with;
// the container does not record them, and a mismatch is detected only
// as a truncated stream or an out-of-bounds reference.
func DecompressConfig(src []byte, cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(src) < len(Magic) || string(src[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}
	if len(src) < HeaderSize {
		return nil, ErrTruncated
	}

	outSize := int(binary.BigEndian.Uint32(src[4:8]) & 0x00FFFFFF)
	distOffset := int(binary.BigEndian.Uint32(src[8:12]))

	// The symbol stream follows the header; the distance stream sits at
	// the absolute offset named by the header. Each is fully
	// independent, with its own tree prefix.
	symr := bits.NewReader(src, HeaderSize)
	distr := bits.NewReader(src, distOffset)

	symTree, err := huffman.ReadTable(symr, cfg.SymbolBits)
	if err != nil {
		return nil, ErrTruncated
	}
	distTree, err := huffman.ReadTable(distr, cfg.DistanceBits)
	if err != nil {
		return nil, ErrTruncated
	}

	out := make([]byte, 0, outSize)
	for len(out) < outSize {
		sym := symTree.Decode(symr)
		if symr.Err() != nil {
			return nil, ErrTruncated
		}

		if sym < lengthSymbolBase {
			out = append(out, byte(sym))
			continue
		}

		distSym := distTree.Decode(distr)
		if distr.Err() != nil {
			return nil, ErrTruncated
		}

		length := int(sym) - lengthSymbolBase + MinMatchLength
		distance := int(distSym) + 1
		if length > outSize-len(out) || distance > len(out) {
			return nil, ErrInvalidReference
		}

		// Byte-at-a-time copy so references longer than their distance
		// extend the run they are copying.
		for i := 0; i < length; i++ {
			out = append(out, out[len(out)-distance])
		}
	}
	return out, nil
}
