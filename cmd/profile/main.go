// Command profile measures generation and brute-force solving speed over
// a batch of random boards.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/jambolo/sudoku/internal/backtrack"
	"github.com/jambolo/sudoku/internal/board"
	"github.com/jambolo/sudoku/internal/generate"
)

const defaultNumberOfBoards = 1000

func syntax() {
	fmt.Fprintln(os.Stderr, "syntax: profile [count]")
}

func main() {
	count := defaultNumberOfBoards

	args := os.Args[1:]
	if len(args) > 1 {
		syntax()
		os.Exit(1)
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "'%s' is an invalid count.\n", args[0])
			syntax()
			os.Exit(1)
		}
		count = n
	}

	now := time.Now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))

	boards := profileGenerate(rng, count)
	profileSolve(boards)
}

func profileGenerate(rng *rand.Rand, count int) []board.Board {
	fmt.Println("Profiling generate ...")

	boards := make([]board.Board, 0, count)
	start := time.Now()
	for i := 0; i < count; i++ {
		boards = append(boards, generate.Generate(rng, 0))
	}
	report(count, time.Since(start))
	return boards
}

func profileSolve(boards []board.Board) {
	fmt.Println("Profiling solve ...")

	start := time.Now()
	for i := range boards {
		backtrack.Solve(&boards[i])
	}
	report(len(boards), time.Since(start))
}

func report(count int, elapsed time.Duration) {
	fmt.Printf("%d boards\n", count)
	fmt.Printf("total time = %v\n", elapsed)
	fmt.Printf("average time = %g ms\n\n", float64(elapsed.Milliseconds())/float64(count))
}
