// Command rate prints the numeric difficulty of a puzzle.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jambolo/sudoku/internal/analyze"
	"github.com/jambolo/sudoku/internal/board"
	"github.com/jambolo/sudoku/internal/render"
)

const (
	quiet = iota
	verbose
	detailed
)

// reportOrder fixes the order techniques appear in the -vv usage table.
var reportOrder = []string{
	analyze.TechniqueNakedSingle,
	analyze.TechniqueHiddenSingle,
	analyze.TechniqueNakedPair,
	analyze.TechniqueNakedTriple,
	analyze.TechniqueNakedQuad,
	analyze.TechniqueLockedCandidates,
	analyze.TechniqueHiddenPair,
	analyze.TechniqueHiddenTriple,
	analyze.TechniqueHiddenQuad,
	analyze.TechniqueXWing,
	analyze.TechniqueYWing,
	analyze.TechniqueSimpleColoring,
}

func syntax() {
	fmt.Fprintln(os.Stderr, "syntax: rate [-v|-vv] <81 digits, 0-9>")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -v:   outputs additional information")
	fmt.Fprintln(os.Stderr, "  -vv:  outputs more additional information")
}

func main() {
	verbosity := quiet
	args := os.Args[1:]
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "-v":
			verbosity = verbose
		case "-vv":
			verbosity = detailed
		default:
			fmt.Fprintf(os.Stderr, "Invalid parameter '%s'\n", args[0])
			syntax()
			os.Exit(1)
		}
		args = args[1:]
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Missing board")
		syntax()
		os.Exit(2)
	}

	b, err := board.Parse(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		syntax()
		os.Exit(3)
	}

	a, err := analyze.New(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, "The board is not valid. The squares are not consistent.")
		syntax()
		os.Exit(4)
	}

	if verbosity >= verbose {
		fmt.Println("Board to solve:")
		render.New(os.Stdout).Draw(a.Board())
		fmt.Println()
	}

	var steps []analyze.Step
	for !a.Done() {
		steps = append(steps, a.Next())
	}

	if verbosity >= verbose {
		fmt.Printf("Number of steps: %d\n", len(steps))
	}

	if verbosity >= detailed {
		counts := make(map[string]int)
		for _, step := range steps {
			if step.Technique != "" && step.Technique != analyze.TechniqueNone {
				counts[step.Technique]++
			}
		}
		fmt.Println("Technique usage:")
		for _, technique := range reportOrder {
			if n := counts[technique]; n > 0 {
				fmt.Printf("  %18s: %d\n", technique, n)
			}
		}
		fmt.Println()
	}

	rating := analyze.RateSteps(steps, a.Stuck())
	if a.Stuck() && verbosity >= verbose {
		fmt.Println("Sorry, I can't solve it.")
	}

	if verbosity >= verbose {
		fmt.Print("Difficulty: ")
	}
	fmt.Printf("%.1f\n", rating)
}
