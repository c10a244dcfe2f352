// Command gf2 is a small driver for exercising the gf2 package from the
// shell: it can report a matrix's rank, invert it, solve a linear
// system, or compute its characteristic polynomial, and it can time
// random matrices of a given size to get a feel for how the word-packed
// representation scales.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ny0m/gf2"
	"github.com/ny0m/gf2/internal/stopwatch"
)

func main() {
	var (
		op   = flag.String("op", "rank", "operation: rank, inverse, solve, charpoly, bench")
		size = flag.Int("n", 256, "matrix size for -op=bench")
		seed = flag.Uint64("seed", 0, "seed for -op=bench's random matrix (0 uses the clock)")
	)
	flag.Parse()

	switch *op {
	case "bench":
		runBench(*size, *seed)
	case "rank", "inverse", "charpoly":
		runMatrixOp(*op)
	case "solve":
		runSolve()
	default:
		log.Fatal("invalid op: ", *op)
	}
}

// runMatrixOp reads a matrix from stdin, one row per line, and reports
// the result of a single-matrix query.
func runMatrixOp(op string) {
	a := readMatrix(os.Stdin)

	switch op {
	case "rank":
		hasPivot := a.Clone().ToEchelonForm()
		fmt.Println(gf2.CountOnes(hasPivot))
	case "inverse":
		inv, ok := a.Inverse()
		if !ok {
			log.Fatal("matrix is singular")
		}
		fmt.Print(inv.ToBinaryString(), "\n")
	case "charpoly":
		fmt.Println(a.CharacteristicPolynomial())
	}
}

// runSolve reads a square matrix followed by a blank line and a single
// right-hand-side vector, and reports a solution to A.x = b.
func runSolve() {
	scanner := bufio.NewScanner(os.Stdin)
	var rows []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		rows = append(rows, line)
	}
	if !scanner.Scan() {
		log.Fatal("expected a right-hand-side vector after the matrix")
	}
	bStr := strings.TrimSpace(scanner.Text())

	a, ok := gf2.FromMatrixString(strings.Join(rows, ";"))
	if !ok {
		log.Fatal("could not parse the matrix")
	}
	b, ok := gf2.FromBinaryString(bStr)
	if !ok {
		log.Fatal("could not parse the right-hand side")
	}

	x, ok := a.XFor(b)
	if !ok {
		log.Fatal("system is inconsistent")
	}
	fmt.Println(x)
}

// runBench times computing the rank and the inverse of a random n x n
// matrix, to give a feel for how the word-packed representation scales.
func runBench(n int, seed uint64) {
	a := gf2.RandomMatrixSeeded(n, n, seed)

	sw := stopwatch.New().Start()
	hasPivot := a.Clone().ToEchelonForm()
	sw.Stop()
	log.Printf("rank(%d x %d) = %d in %s", n, n, gf2.CountOnes(hasPivot), sw)

	sw.Start()
	_, invertible := a.Inverse()
	sw.Stop()
	log.Printf("inverse(%d x %d): invertible=%v in %s", n, n, invertible, sw)
}

func readMatrix(f *os.File) *gf2.BitMatrix {
	scanner := bufio.NewScanner(f)
	var rows []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	a, ok := gf2.FromMatrixString(strings.Join(rows, ";"))
	if !ok {
		log.Fatal("could not parse the matrix from stdin")
	}
	return a
}
