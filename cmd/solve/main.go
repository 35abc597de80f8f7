// Command solve prints every solution of a puzzle found by brute-force
// search.
package main

import (
	"fmt"
	"os"

	"github.com/jambolo/sudoku/internal/backtrack"
	"github.com/jambolo/sudoku/internal/board"
	"github.com/jambolo/sudoku/internal/render"
)

func syntax() {
	fmt.Fprintln(os.Stderr, "syntax: solve <81 digits, 0-9>")
}

func main() {
	args := os.Args[1:]
	if len(args) != 1 {
		syntax()
		os.Exit(1)
	}

	b, err := board.Parse(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		syntax()
		os.Exit(2)
	}

	p := render.New(os.Stdout)
	fmt.Println("Board to solve:")
	p.Draw(b)
	fmt.Println()

	solutions := backtrack.AllSolutions(b, 0)
	if len(solutions) == 0 {
		fmt.Println("No solutions.")
		return
	}
	fmt.Printf("%d solutions.\n\n", len(solutions))
	for _, s := range solutions {
		p.Draw(s)
		fmt.Println()
	}
}
