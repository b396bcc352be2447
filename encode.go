package ash

import (
	"encoding/binary"

	"github.com/llehouerou/go-ash/internal/bits"
	"github.com/llehouerou/go-ash/internal/huffman"
	"github.com/llehouerou/go-ash/internal/lz"
)

// Compress produces an ASH0 stream using the default alphabet widths
// and a single greedy parse.
func Compress(src []byte) ([]byte, error) {
	return CompressConfig(src, Config{})
}

// CompressConfig produces an ASH0 stream using the alphabet widths and
// pass count in cfg. The payload must fit the container's 24-bit size
// field. A decoder needs the same widths to expand the result.
func CompressConfig(src []byte, cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(src) > MaxInputSize {
		return nil, ErrInputTooLarge
	}

	tokens := lz.Tokenize(src, maxCopyLength(cfg.SymbolBits), maxDistance(cfg.DistanceBits))
	symTree, distTree := trainTrees(tokens, cfg)

	// Each pass re-parses the input against the cost of the current
	// trees, then retrains them on the new token distribution.
	for i := 0; i < cfg.Passes; i++ {
		tokens = retokenize(src, symTree, distTree)
		symTree, distTree = trainTrees(tokens, cfg)
	}

	var symw, distw bits.Writer
	symTree.Serialize(&symw, cfg.SymbolBits)
	distTree.Serialize(&distw, cfg.DistanceBits)

	for _, tok := range tokens {
		if tok.Ref {
			symTree.WriteSymbol(&symw, uint32(lengthSymbolBase+tok.Length-MinMatchLength))
			distTree.WriteSymbol(&distw, uint32(tok.Distance-1))
		} else {
			symTree.WriteSymbol(&symw, uint32(tok.Literal))
		}
	}

	symBytes := symw.Bytes()
	distBytes := distw.Bytes()

	out := make([]byte, HeaderSize, HeaderSize+len(symBytes)+len(distBytes))
	copy(out, Magic)
	binary.BigEndian.PutUint32(out[4:8], uint32(len(src)))
	binary.BigEndian.PutUint32(out[8:12], uint32(HeaderSize+len(symBytes)))
	out = append(out, symBytes...)
	out = append(out, distBytes...)
	return out, nil
}

// trainTrees builds the two Huffman trees from the token distribution.
// A literal counts toward its byte value; a reference counts its length
// symbol in the symbol alphabet and its distance in the distance
// alphabet.
func trainTrees(tokens []lz.Token, cfg Config) (symTree, distTree *huffman.Node) {
	symFreq := make([]int, 1<<cfg.SymbolBits)
	distFreq := make([]int, 1<<cfg.DistanceBits)
	for _, tok := range tokens {
		if tok.Ref {
			symFreq[lengthSymbolBase+tok.Length-MinMatchLength]++
			distFreq[tok.Distance-1]++
		} else {
			symFreq[tok.Literal]++
		}
	}
	return huffman.Build(symFreq), huffman.Build(distFreq)
}
