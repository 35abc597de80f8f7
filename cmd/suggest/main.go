// Command suggest prints the next logical step for a puzzle, or with -a
// every step until the board is done or the engine is stuck.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jambolo/sudoku/internal/analyze"
	"github.com/jambolo/sudoku/internal/board"
	"github.com/jambolo/sudoku/internal/render"
)

func syntax() {
	fmt.Fprintln(os.Stderr, "syntax: suggest [-a] [-v] [-j] <81 digits, 0-9>")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -a: output every step until done or stuck")
	fmt.Fprintln(os.Stderr, "  -v: output the reason for each step")
	fmt.Fprintln(os.Stderr, "  -j: output each step as JSON")
}

func main() {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	fs.Usage = syntax
	all := fs.Bool("a", false, "output every step until done or stuck")
	verbose := fs.Bool("v", false, "output the reason for each step")
	asJSON := fs.Bool("j", false, "output each step as JSON")
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		syntax()
		os.Exit(1)
	}

	b, err := board.Parse(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	a, err := analyze.New(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, "The board is not valid. The squares are not consistent.")
		os.Exit(3)
	}

	p := render.New(os.Stdout)
	if *verbose && !*asJSON {
		fmt.Println("Board to solve:")
		p.Draw(a.Board())
		fmt.Println()
	}

	if *all {
		n := 1
		for !a.Done() {
			step := a.Next()
			printStep(step, *verbose, *asJSON, n)
			n++
		}
		if !*asJSON {
			fmt.Println()
			p.Draw(a.Board())
		}
	} else {
		step := a.Next()
		printStep(step, *verbose, *asJSON, 0)
	}

	if *verbose && !*asJSON && a.Stuck() {
		fmt.Println()
		fmt.Println("Remaining candidates:")
		p.DrawCandidates(a.Board(), a.Candidates)
	}
}

func printStep(step analyze.Step, verbose, asJSON bool, n int) {
	if asJSON {
		out, err := json.Marshal(step)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if n > 0 {
		fmt.Printf("%3d. ", n)
	}

	switch step.Action {
	case analyze.ActionSolve:
		fmt.Printf("The value of %s is %d", board.CellName(step.Indexes[0]), step.Values[0])
		if verbose {
			fmt.Printf(" (%s)", step.Reason)
		}
		fmt.Println()
	case analyze.ActionEliminate:
		fmt.Printf("%s cannot be %s", cellNames(step.Indexes), valueList(step.Values))
		if verbose {
			fmt.Printf(" (%s)", step.Reason)
		}
		fmt.Println()
	case analyze.ActionStuck:
		fmt.Println("Stuck")
	case analyze.ActionDone:
		fmt.Println("Done")
	}
}

func cellNames(indexes []int) string {
	names := make([]string, len(indexes))
	for i, x := range indexes {
		names[i] = board.CellName(x)
	}
	return strings.Join(names, ", ")
}

func valueList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
