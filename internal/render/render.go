// Package render draws boards and candidate grids as text, with colors
// enabled only when the destination is a terminal.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jambolo/sudoku/internal/board"
)

const (
	borderTop    = "┌───┬───┬───╥───┬───┬───╥───┬───┬───┐"
	borderBot    = "└───┴───┴───╨───┴───┴───╨───┴───┴───┘"
	dividerMinor = "├───┼───┼───╫───┼───┼───╫───┼───┼───┤"
	dividerMajor = "╞═══╪═══╪═══╬═══╪═══╪═══╬═══╪═══╪═══╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

// Printer renders to a fixed writer. Colors are enabled when the writer
// is a terminal, the way kpitt's board printer behaves on stdout.
type Printer struct {
	w     io.Writer
	line  *color.Color
	value *color.Color
	marks *color.Color
}

// New returns a Printer for w.
func New(w io.Writer) *Printer {
	p := &Printer{
		w:     w,
		line:  color.New(color.FgHiWhite),
		value: color.New(color.FgHiWhite, color.Bold),
		marks: color.New(color.FgHiBlack),
	}
	if !isTerminal(w) {
		p.line.DisableColor()
		p.value.DisableColor()
		p.marks.DisableColor()
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Draw prints the board as a bordered grid, one text row per board row,
// with empty cells blank.
func (p *Printer) Draw(b board.Board) {
	p.line.Fprintln(p.w, borderTop)
	for r := 0; r < board.Size; r++ {
		if r != 0 {
			if r%board.BoxSize == 0 {
				p.line.Fprintln(p.w, dividerMajor)
			} else {
				p.line.Fprintln(p.w, dividerMinor)
			}
		}
		for c := 0; c < board.Size; c++ {
			p.edge(c)
			if v := b.Get(board.Index(r, c)); v != board.Empty {
				p.value.Fprintf(p.w, " %d ", v)
			} else {
				fmt.Fprint(p.w, "   ")
			}
		}
		p.line.Fprintln(p.w, edgeMinor)
	}
	p.line.Fprintln(p.w, borderBot)
}

// DrawCandidates prints the board with three text rows per board row:
// solved cells show their value centered, unsolved cells show their
// remaining candidates as a 3x3 block of pencil marks.
func (p *Printer) DrawCandidates(b board.Board, candidates func(i int) board.Candidates) {
	p.line.Fprintln(p.w, borderTop)
	for r := 0; r < board.Size; r++ {
		if r != 0 {
			if r%board.BoxSize == 0 {
				p.line.Fprintln(p.w, dividerMajor)
			} else {
				p.line.Fprintln(p.w, dividerMinor)
			}
		}
		for sub := 0; sub < board.BoxSize; sub++ {
			for c := 0; c < board.Size; c++ {
				p.edge(c)
				i := board.Index(r, c)
				if v := b.Get(i); v != board.Empty {
					if sub == 1 {
						p.value.Fprintf(p.w, " %d ", v)
					} else {
						fmt.Fprint(p.w, "   ")
					}
				} else {
					p.markRow(candidates(i), sub)
				}
			}
			p.line.Fprintln(p.w, edgeMinor)
		}
	}
	p.line.Fprintln(p.w, borderBot)
}

func (p *Printer) edge(c int) {
	if c != 0 && c%board.BoxSize == 0 {
		p.line.Fprint(p.w, edgeMajor)
	} else {
		p.line.Fprint(p.w, edgeMinor)
	}
}

func (p *Printer) markRow(c board.Candidates, sub int) {
	for col := 0; col < board.BoxSize; col++ {
		v := sub*board.BoxSize + col + 1
		if c.Has(v) {
			p.marks.Fprintf(p.w, "%d", v)
		} else {
			fmt.Fprint(p.w, " ")
		}
	}
}
