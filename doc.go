// Package ash implements Nintendo's ASH0 compression format used on the
// Wii (System Menu resources, Animal Crossing: City Folk, My Pokémon
// Ranch, among others).
//
// ASH0 is a hybrid scheme: the payload is tokenized into LZ77 literals
// and back references, and the resulting symbols are entropy-coded with
// two Huffman trees embedded in the stream. Copy lengths share an
// alphabet with literal bytes; distances use a second, independent bit
// stream located by an offset in the container header.
//
// # Basic Usage
//
// To decompress an ASH0 file:
//
//	raw, err := ash.Decompress(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// To compress a payload:
//
//	packed, err := ash.Compress(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Alphabet Widths
//
// The container does not record the alphabet widths used to build its
// Huffman trees, so both sides must agree on them out of band. Almost
// every known file uses 9 symbol bits and 11 distance bits (the
// defaults); My Pokémon Ranch uses 15 distance bits. Pass a Config to
// override:
//
//	raw, err := ash.DecompressConfig(data, ash.Config{DistanceBits: 15})
//
// # Compression Effort
//
// Config.Passes enables an iterative cost-based re-tokenization that
// re-parses the input against the trained trees and retrains them. Each
// pass trades time for ratio; zero passes (the default) performs a
// single greedy parse.
//
// # Thread Safety
//
// All functions are pure: they share no state across calls and may be
// used from multiple goroutines concurrently.
package ash
