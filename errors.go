package ash

import "errors"

// Errors returned by the codec.
var (
	// ErrBadMagic means the input does not start with the "ASH0" magic.
	ErrBadMagic = errors.New("ash: missing ASH0 magic")

	// ErrTruncated means a bit stream ended before decoding completed,
	// or an embedded Huffman tree is not well formed for the configured
	// alphabet width. Decoding with the wrong alphabet widths commonly
	// surfaces as this error.
	ErrTruncated = errors.New("ash: truncated stream")

	// ErrInvalidReference means the stream encodes a back reference
	// that reads before the start of the output or past its end.
	ErrInvalidReference = errors.New("ash: back reference out of bounds")

	// ErrInputTooLarge means the payload exceeds the 24-bit size field
	// of the container header.
	ErrInputTooLarge = errors.New("ash: input exceeds 16 MiB limit")

	// ErrInvalidConfig means an alphabet width or pass count is outside
	// its legal range.
	ErrInvalidConfig = errors.New("ash: invalid configuration")
)
