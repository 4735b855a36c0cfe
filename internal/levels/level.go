// Package levels provides the YAML level format, the bundled level
// pack and directory loading for custom packs. This package depends on
// rules for brick type validation but rules does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/brickout/internal/rules"
)

// Level is a playable brick layout. Grid is row-major and ragged rows
// are allowed; Normalize squares it off to the playfield size.
type Level struct {
	Number int
	Name   string
	Grid   [][]rules.BrickType
}

// Board builds a rules.Board from the level's grid.
func (l *Level) Board() (*rules.Board, error) {
	return rules.NewBoard(l.Grid)
}

// NormalizeMetrics reports how much a grid had to be adjusted to fit
// the playfield. Non-zero values usually mean a level was authored for
// a different grid size.
type NormalizeMetrics struct {
	RowsPadded     int
	RowsTruncated  int
	CellsPadded    int
	CellsTruncated int
}

// Adjusted reports whether any padding or truncation happened.
func (m NormalizeMetrics) Adjusted() bool {
	return m.RowsPadded > 0 || m.RowsTruncated > 0 || m.CellsPadded > 0 || m.CellsTruncated > 0
}

// Normalize returns a copy of the grid squared off to rows x cols:
// short rows and missing rows are padded with empty cells, excess
// cells and rows are dropped. The input is never modified.
func Normalize(grid [][]rules.BrickType, rows, cols int) ([][]rules.BrickType, NormalizeMetrics) {
	var m NormalizeMetrics

	out := make([][]rules.BrickType, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]rules.BrickType, cols)
		if r >= len(grid) {
			m.RowsPadded++
			continue
		}
		src := grid[r]
		for c := 0; c < cols; c++ {
			if c >= len(src) {
				m.CellsPadded++
				continue
			}
			out[r][c] = src[c]
		}
		if len(src) > cols {
			m.CellsTruncated += len(src) - cols
		}
	}
	if len(grid) > rows {
		m.RowsTruncated = len(grid) - rows
	}
	return out, m
}

// Validate checks that every non-empty cell holds a known brick type.
func (l *Level) Validate() error {
	for r, row := range l.Grid {
		for c, t := range row {
			if t == rules.BrickEmpty {
				continue
			}
			if !rules.Known(t) {
				return fmt.Errorf("levels: level %d %q: unknown brick type %d at row %d col %d",
					l.Number, l.Name, t, r, c)
			}
		}
	}
	return nil
}

// Fallback returns a minimal in-code level used when no pack can be
// loaded. It is always valid.
func Fallback() *Level {
	e, s := rules.BrickEmpty, rules.BrickSimple
	return &Level{
		Number: 1,
		Name:   "fallback",
		Grid: [][]rules.BrickType{
			{e, s, s, s, s, s, s, e},
			{e, s, s, s, s, s, s, e},
			{e, s, s, s, s, s, s, e},
		},
	}
}
