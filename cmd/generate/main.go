// Command generate prints a random puzzle whose difficulty falls within
// the requested range.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/jambolo/sudoku/internal/analyze"
	"github.com/jambolo/sudoku/internal/generate"
)

// maxAttempts bounds the search for a puzzle in the requested difficulty
// range. Hard ranges can be sparse; a single carve takes from milliseconds
// to seconds, so a thousand carves can take minutes.
const maxAttempts = 1000

func syntax() {
	fmt.Fprintln(os.Stderr, "syntax: generate <max difficulty> [min difficulty]")
}

func main() {
	args := os.Args[1:]
	if len(args) < 1 || len(args) > 2 {
		syntax()
		os.Exit(1)
	}

	maxDifficulty, err := strconv.ParseFloat(args[0], 64)
	if err != nil || maxDifficulty < 0 {
		fmt.Fprintln(os.Stderr, "generate: The maximum difficulty must be at least 0.")
		os.Exit(1)
	}

	minDifficulty := 0.0
	if len(args) == 2 {
		minDifficulty, err = strconv.ParseFloat(args[1], 64)
		if err != nil || minDifficulty < 0 {
			fmt.Fprintln(os.Stderr, "generate: The minimum difficulty must be at least 0.")
			os.Exit(1)
		}
		if maxDifficulty <= 0 {
			fmt.Fprintln(os.Stderr, "generate: The maximum difficulty must be greater than 0.")
			os.Exit(1)
		}
	}

	now := time.Now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := generate.Generate(rng, 0)
		if maxDifficulty <= 0 {
			fmt.Println(b.Serialize())
			return
		}
		rating, err := analyze.Rate(b)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if rating >= minDifficulty && rating <= maxDifficulty {
			fmt.Println(b.Serialize())
			return
		}
	}

	fmt.Fprintf(os.Stderr, "generate: no puzzle with difficulty in [%g, %g] after %d attempts\n",
		minDifficulty, maxDifficulty, maxAttempts)
	os.Exit(2)
}
