package ash

import (
	"bytes"
	"math/rand"
	"testing"
)

// corpus returns named payloads covering the format's boundary cases.
func corpus() map[string][]byte {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 4096)
	rng.Read(random)

	text := bytes.Repeat([]byte("It is a truth universally acknowledged, that a single "+
		"man in possession of a good fortune, must be in want of a wife. "), 24)

	seq := make([]byte, 256)
	for i := range seq {
		seq[i] = byte(i)
	}

	return map[string][]byte{
		"empty":             {},
		"single byte":       {0x41},
		"two bytes":         {0x00, 0xFF},
		"hello":             []byte("hello world!"),
		"run of 300 zeroes": bytes.Repeat([]byte{0x00}, 300),
		"max length run":    bytes.Repeat([]byte{0xAB}, 259),
		"long zero run":     bytes.Repeat([]byte{0x00}, 65536),
		"alternating":       bytes.Repeat([]byte{0xAA, 0x55}, 2048),
		"text":              text,
		"random":            random,
		"all byte values":   seq,
	}
}

func TestRoundTrip_DefaultConfig(t *testing.T) {
	for name, payload := range corpus() {
		t.Run(name, func(t *testing.T) {
			packed, err := Compress(payload)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			got, err := Decompress(packed)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("round trip differs: got %d bytes, want %d", len(got), len(payload))
			}
		})
	}
}

func TestRoundTrip_Configs(t *testing.T) {
	configs := []struct {
		name string
		cfg  Config
	}{
		{"S9 D11 one pass", Config{Passes: 1}},
		{"S9 D11 two passes", Config{Passes: 2}},
		{"S10 D12", Config{SymbolBits: 10, DistanceBits: 12}},
		{"S12 D8", Config{SymbolBits: 12, DistanceBits: 8}},
		{"S9 D15 ranch", Config{DistanceBits: 15}},
		{"S9 D1 minimal window", Config{DistanceBits: 1}},
		{"S16 D16", Config{SymbolBits: 16, DistanceBits: 16}},
	}

	payloads := map[string][]byte{
		"empty":      {},
		"single":     {0x41},
		"text":       bytes.Repeat([]byte("abcdefg hijklmnop abcdefg qrs "), 80),
		"zero run":   bytes.Repeat([]byte{0x00}, 2000),
		"structured": bytes.Repeat([]byte{1, 2, 3, 4, 1, 2, 3, 5}, 300),
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			for name, payload := range payloads {
				packed, err := CompressConfig(payload, tc.cfg)
				if err != nil {
					t.Fatalf("%s: Compress: %v", name, err)
				}
				got, err := DecompressConfig(packed, tc.cfg)
				if err != nil {
					t.Fatalf("%s: Decompress: %v", name, err)
				}
				if !bytes.Equal(got, payload) {
					t.Errorf("%s: round trip differs", name)
				}
			}
		})
	}
}

func TestRoundTrip_HighlyRepetitive(t *testing.T) {
	// 64 KiB of a single value forces maximal self-overlap: references
	// of distance 1 far longer than their distance.
	payload := bytes.Repeat([]byte{0x00}, 65536)
	packed, err := Compress(payload)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(packed) >= len(payload)/10 {
		t.Errorf("compressed %d bytes, want strong reduction from %d", len(packed), len(payload))
	}
	got, err := Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("round trip differs")
	}
}

func TestRoundTrip_SingleByteAlphabetFloor(t *testing.T) {
	// One distinct byte means one used symbol; the encoder must pad the
	// tree rather than fail, and the result must decode.
	packed, err := Compress([]byte{0x41})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, []byte{0x41}) {
		t.Errorf("got %v, want [0x41]", got)
	}
}

func TestRoundTrip_RandomBuffers(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(5000)
		payload := make([]byte, n)
		// Mix of compressible structure and noise.
		for i := range payload {
			if rng.Intn(3) == 0 {
				payload[i] = byte(rng.Intn(256))
			} else {
				payload[i] = byte(i % 17)
			}
		}

		packed, err := Compress(payload)
		if err != nil {
			t.Fatalf("trial %d: Compress: %v", trial, err)
		}
		got, err := Decompress(packed)
		if err != nil {
			t.Fatalf("trial %d: Decompress: %v", trial, err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("trial %d: round trip differs (%d bytes)", trial, n)
		}
	}
}
