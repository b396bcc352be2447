package ash

import (
	"bytes"
	"fmt"
)

// Container layout constants.
const (
	// Magic is the four-byte identifier at the start of every ASH0 stream.
	Magic = "ASH0"

	// HeaderSize is the size of the container header: magic, 24-bit
	// uncompressed size, and the absolute offset of the distance stream.
	HeaderSize = 12

	// MaxInputSize is the largest payload the container can describe.
	// The uncompressed size field carries 24 bits.
	MaxInputSize = 1<<24 - 1

	// MinMatchLength is the shortest LZ back reference the format can
	// express. Length symbols encode length-MinMatchLength.
	MinMatchLength = 3
)

// Default alphabet widths. These match the ASH0 files found in the Wii
// System Menu and Animal Crossing: City Folk. My Pokémon Ranch files
// use 15 distance bits instead.
const (
	DefaultSymbolBits   = 9
	DefaultDistanceBits = 11
)

// Legal ranges for the configurable alphabet widths. The symbol
// alphabet must at least cover the 256 literal byte values plus one
// length symbol.
const (
	minSymbolBits   = 9
	maxSymbolBits   = 16
	minDistanceBits = 1
	maxDistanceBits = 24
)

// lengthSymbolBase is the first symbol value denoting a copy length
// rather than a literal byte.
const lengthSymbolBase = 0x100

// Config controls the alphabet widths and the compression effort.
// The zero value selects the defaults.
type Config struct {
	// SymbolBits is the width of the symbol/length alphabet in bits,
	// between 9 and 16. 0 means DefaultSymbolBits.
	SymbolBits int

	// DistanceBits is the width of the distance alphabet in bits,
	// between 1 and 24. 0 means DefaultDistanceBits.
	DistanceBits int

	// Passes is the number of optimal re-tokenization passes run by the
	// compressor after the initial greedy parse. The decoder does not use
	// it, but still rejects a negative value as an invalid configuration.
	Passes int
}

// withDefaults returns c with zero fields replaced by the defaults.
func (c Config) withDefaults() Config {
	if c.SymbolBits == 0 {
		c.SymbolBits = DefaultSymbolBits
	}
	if c.DistanceBits == 0 {
		c.DistanceBits = DefaultDistanceBits
	}
	return c
}

// validate checks the alphabet widths against their legal ranges.
func (c Config) validate() error {
	if c.SymbolBits < minSymbolBits || c.SymbolBits > maxSymbolBits {
		return fmt.Errorf("%w: symbol bits %d outside [%d,%d]",
			ErrInvalidConfig, c.SymbolBits, minSymbolBits, maxSymbolBits)
	}
	if c.DistanceBits < minDistanceBits || c.DistanceBits > maxDistanceBits {
		return fmt.Errorf("%w: distance bits %d outside [%d,%d]",
			ErrInvalidConfig, c.DistanceBits, minDistanceBits, maxDistanceBits)
	}
	if c.Passes < 0 {
		return fmt.Errorf("%w: negative pass count %d", ErrInvalidConfig, c.Passes)
	}
	return nil
}

// maxCopyLength returns the longest back reference expressible with the
// given symbol alphabet width.
func maxCopyLength(symbolBits int) int {
	return 1<<symbolBits - 1 - lengthSymbolBase + MinMatchLength
}

// maxDistance returns the furthest back reference expressible with the
// given distance alphabet width.
func maxDistance(distanceBits int) int {
	return 1 << distanceBits
}

// IsCompressed reports whether src begins with an ASH magic. It applies
// the permissive three-byte "ASH" check used by Nintendo's own archive
// tooling; Decompress itself requires the full "ASH0" magic.
func IsCompressed(src []byte) bool {
	return bytes.HasPrefix(src, []byte(Magic[:3]))
}
