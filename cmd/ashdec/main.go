// Command ashdec expands ASH0-compressed files.
//
// Usage:
//
//	ashdec <infile> [-o <path>] [-d <distbits>] [-l <lenbits>]
//
// Without -o the output is written next to the input as <infile>.arc.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/llehouerou/go-ash"
)

func usage() {
	fmt.Println("Usage: ashdec <infile> [optional arguments]")
	fmt.Println()
	fmt.Println("Arguments:")
	fmt.Println(" -o <f> Specify output file path")
	fmt.Println(" -d <n> Specify distance tree bits  (default: 11)")
	fmt.Println(" -l <n> Specify length tree bits    (default:  9)")
	fmt.Println()
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	inpath := os.Args[1]
	outpath := ""
	var cfg ash.Config

	args := os.Args[2:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o":
			i++
			if i < len(args) {
				outpath = args[i]
			}
		case "-d":
			i++
			if i < len(args) {
				n, err := strconv.Atoi(args[i])
				if err != nil {
					fmt.Fprintf(os.Stderr, "ashdec: bad distance bits %q\n", args[i])
					os.Exit(1)
				}
				cfg.DistanceBits = n
			}
		case "-l":
			i++
			if i < len(args) {
				n, err := strconv.Atoi(args[i])
				if err != nil {
					fmt.Fprintf(os.Stderr, "ashdec: bad length bits %q\n", args[i])
					os.Exit(1)
				}
				cfg.SymbolBits = n
			}
		default:
			fmt.Fprintf(os.Stderr, "ashdec: unknown argument %q\n", args[i])
			os.Exit(1)
		}
	}

	data, err := os.ReadFile(inpath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open %s for read access.\n", inpath)
		os.Exit(1)
	}

	out, err := ash.DecompressConfig(data, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ashdec: %v\n", err)
		os.Exit(1)
	}

	if outpath == "" {
		outpath = inpath + ".arc"
	}
	if err := os.WriteFile(outpath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open %s for write access.\n", outpath)
		os.Exit(1)
	}
}
