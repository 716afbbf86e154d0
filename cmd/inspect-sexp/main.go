// Command inspect-sexp cross-checks generated library files with an
// independent s-expression parser. Useful when chasing serializer bugs:
// if this parser rejects a file our own round-trip accepts, the writer
// is producing something structurally off.
package main

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect-sexp <file.kicad_sym|file.kicad_mod>")
		os.Exit(1)
	}

	filename := os.Args[1]
	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	info, _ := file.Stat()
	fmt.Printf("File size: %d bytes\n", info.Size())

	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d top-level s-expressions\n", len(sexps))
	for i, s := range sexps {
		if s == nil {
			continue
		}
		if s.IsLeaf() {
			fmt.Printf("  #%d: leaf\n", i)
			continue
		}
		fmt.Printf("  #%d: list with %d leaves\n", i, s.LeafCount())
	}
}
