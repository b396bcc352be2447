// Command ashcomp produces ASH0-compressed files.
//
// Usage:
//
//	ashcomp <infile> [-o <path>] [-d <distbits>] [-l <lenbits>] [-c <passes>]
//
// Without -o the output is written next to the input as <infile>.ash.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/llehouerou/go-ash"
)

func usage() {
	fmt.Println("Usage: ashcomp <infile> [option...]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println(" -o <f> Specify output file path")
	fmt.Println(" -d <n> Specify distance tree bits   (default: 11)")
	fmt.Println(" -l <n> Specify length tree bits     (default:  9)")
	fmt.Println(" -c <n> Specify compression strength (0=default, 1=moderate, 2=high)")
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
		flag := args[i]
		switch flag {
		case "-o":
			i++
			if i < len(args) {
				outpath = args[i]
			}
		case "-d", "-l", "-c":
			i++
			if i < len(args) {
				n, err := strconv.Atoi(args[i])
				if err != nil {
					fmt.Fprintf(os.Stderr, "ashcomp: bad value %q for %s\n", args[i], flag)
					os.Exit(1)
				}
				switch flag {
				case "-d":
					cfg.DistanceBits = n
				case "-l":
					cfg.SymbolBits = n
				case "-c":
					cfg.Passes = n
				}
			}
		default:
			fmt.Fprintf(os.Stderr, "ashcomp: unknown argument %q\n", flag)
			os.Exit(1)
		}
	}

	data, err := os.ReadFile(inpath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open %s for read access.\n", inpath)
		os.Exit(1)
	}

	out, err := ash.CompressConfig(data, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ashcomp: %v\n", err)
		os.Exit(1)
	}

	if outpath == "" {
		outpath = inpath + ".ash"
	}
	if err := os.WriteFile(outpath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open %s for write access.\n", outpath)
		os.Exit(1)
	}
}
