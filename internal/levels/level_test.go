package levels

import (
	"testing"

	"github.com/vovakirdan/brickout/internal/rules"
)

func TestNormalizePadsShortGrids(t *testing.T) {
	grid := [][]rules.BrickType{
		{rules.BrickSimple, rules.BrickSimple},
		{rules.BrickSimple},
	}

	out, m := Normalize(grid, 4, 3)
	if len(out) != 4 {
		t.Fatalf("normalized to %d rows, expected 4", len(out))
	}
	for r, row := range out {
		if len(row) != 3 {
			t.Fatalf("row %d has %d cells, expected 3", r, len(row))
		}
	}

	if m.RowsPadded != 2 {
		t.Errorf("RowsPadded = %d, expected 2", m.RowsPadded)
	}
	// Row 0 missing 1 cell, row 1 missing 2.
	if m.CellsPadded != 3 {
		t.Errorf("CellsPadded = %d, expected 3", m.CellsPadded)
	}
	if m.RowsTruncated != 0 || m.CellsTruncated != 0 {
		t.Errorf("unexpected truncation: %+v", m)
	}
	if !m.Adjusted() {
		t.Error("Adjusted should be true after padding")
	}

	// Padding is empty cells.
	if out[1][1] != rules.BrickEmpty || out[3][0] != rules.BrickEmpty {
		t.Error("padded cells should be empty")
	}
	// Existing content survives.
	if out[0][0] != rules.BrickSimple || out[1][0] != rules.BrickSimple {
		t.Error("existing cells should be preserved")
	}
}

func TestNormalizeTruncatesOversizedGrids(t *testing.T) {
	grid := [][]rules.BrickType{
		{rules.BrickSimple, rules.BrickSimple, rules.BrickSimple, rules.BrickSimple},
		{rules.BrickSimple, rules.BrickSimple, rules.BrickSimple, rules.BrickSimple},
		{rules.BrickSimple, rules.BrickSimple, rules.BrickSimple, rules.BrickSimple},
	}

	out, m := Normalize(grid, 2, 2)
	if len(out) != 2 || len(out[0]) != 2 {
		t.Fatalf("normalized to %dx%d, expected 2x2", len(out), len(out[0]))
	}
	if m.RowsTruncated != 1 {
		t.Errorf("RowsTruncated = %d, expected 1", m.RowsTruncated)
	}
	// Two kept rows each dropped 2 cells.
	if m.CellsTruncated != 4 {
		t.Errorf("CellsTruncated = %d, expected 4", m.CellsTruncated)
	}
}

func TestNormalizeExactFitIsUntouched(t *testing.T) {
	grid := [][]rules.BrickType{
		{rules.BrickSimple, rules.BrickWall},
		{rules.BrickThorn, rules.BrickEmpty},
	}

	out, m := Normalize(grid, 2, 2)
	if m.Adjusted() {
		t.Errorf("exact fit reported adjustments: %+v", m)
	}
	if out[0][1] != rules.BrickWall || out[1][0] != rules.BrickThorn {
		t.Error("content changed on exact fit")
	}

	// The copy is independent of the input.
	out[0][0] = rules.BrickGranite
	if grid[0][0] != rules.BrickSimple {
		t.Error("Normalize must not alias the input grid")
	}
}

func TestValidateRejectsUnknownTypes(t *testing.T) {
	lvl := &Level{
		Number: 9,
		Name:   "broken",
		Grid: [][]rules.BrickType{
			{rules.BrickSimple, 33},
		},
	}
	if err := lvl.Validate(); err == nil {
		t.Fatal("expected validation error for unknown type 33")
	}

	lvl.Grid[0][1] = rules.BrickEmpty
	if err := lvl.Validate(); err != nil {
		t.Errorf("valid level rejected: %v", err)
	}
}

func TestFallbackLevelIsPlayable(t *testing.T) {
	lvl := Fallback()
	if err := lvl.Validate(); err != nil {
		t.Fatalf("fallback level invalid: %v", err)
	}

	board, err := lvl.Board()
	if err != nil {
		t.Fatalf("fallback board: %v", err)
	}
	if board.Required() == 0 {
		t.Error("fallback level should have counting bricks")
	}
}
