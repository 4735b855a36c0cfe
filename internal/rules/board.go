package rules

import "fmt"

// EntityID is an opaque handle for a simulation entity. Each subsystem
// numbers its own entities; zero is never a valid handle.
type EntityID int64

// Instance is a live brick on the board. Destruction is one-way: once
// the destroyed flag is set it is never cleared, which makes repeated
// contact reports for the same brick harmless.
type Instance struct {
	ID       EntityID
	Type     BrickType
	Row, Col int
	HitsLeft int // Ball hits remaining before destruction

	destroyed bool
}

// Destroyed reports whether the brick has been removed from play.
func (in *Instance) Destroyed() bool {
	return in.destroyed
}

// Board holds the brick instances of one level, indexed both by handle
// and by grid cell.
type Board struct {
	rows, cols int
	bricks     map[EntityID]*Instance
	order      []EntityID   // Creation order, for deterministic iteration
	cells      [][]EntityID // 0 = empty cell
	required   int          // Counting bricks present at load
	alive      int          // Bricks not yet destroyed
}

// NewBoard builds a board from a level matrix of brick type codes.
// Every non-zero cell must hold a known brick type; an unknown code is
// a level authoring error and rejects the whole board.
func NewBoard(grid [][]BrickType) (*Board, error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	b := &Board{
		rows:   rows,
		cols:   cols,
		bricks: make(map[EntityID]*Instance),
		cells:  make([][]EntityID, rows),
	}

	var nextID EntityID = 1
	for r := 0; r < rows; r++ {
		b.cells[r] = make([]EntityID, cols)
		for c := 0; c < len(grid[r]) && c < cols; c++ {
			t := grid[r][c]
			if t == BrickEmpty {
				continue
			}
			desc, ok := Classify(t)
			if !ok {
				return nil, fmt.Errorf("rules: unknown brick type %d at row %d col %d", t, r, c)
			}

			hits := desc.Durability
			if hits < 1 {
				hits = 1
			}
			in := &Instance{
				ID:       nextID,
				Type:     t,
				Row:      r,
				Col:      c,
				HitsLeft: hits,
			}
			nextID++

			b.bricks[in.ID] = in
			b.order = append(b.order, in.ID)
			b.cells[r][c] = in.ID
			b.alive++
			if desc.Counts {
				b.required++
			}
		}
	}
	return b, nil
}

// Rows returns the board height in cells.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width in cells.
func (b *Board) Cols() int {
	return b.cols
}

// Required returns the number of completion-counting bricks the level
// started with.
func (b *Board) Required() int {
	return b.required
}

// Alive returns the number of bricks still in play, counting or not.
func (b *Board) Alive() int {
	return b.alive
}

// Get looks up a brick by handle. Destroyed bricks are still returned
// so callers can distinguish "stale" from "never existed".
func (b *Board) Get(id EntityID) (*Instance, bool) {
	in, ok := b.bricks[id]
	return in, ok
}

// At returns the live brick occupying a grid cell, if any.
func (b *Board) At(row, col int) (*Instance, bool) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return nil, false
	}
	id := b.cells[row][col]
	if id == 0 {
		return nil, false
	}
	return b.bricks[id], true
}

// ForEachAlive calls fn for every brick still in play, in creation
// order.
func (b *Board) ForEachAlive(fn func(*Instance)) {
	for _, id := range b.order {
		in := b.bricks[id]
		if !in.destroyed {
			fn(in)
		}
	}
}

// Restore applies a saved board state to a freshly built board: bricks
// absent from the alive set are removed, present ones get their saved
// durability. Restoration only ever destroys; it cannot resurrect.
// Returns the number of counting bricks removed.
func (b *Board) Restore(alive map[EntityID]int) int {
	dropped := 0
	for _, id := range b.order {
		in := b.bricks[id]
		if in.destroyed {
			continue
		}
		hits, ok := alive[id]
		if !ok {
			in.destroyed = true
			b.clear(in)
			if desc, known := Classify(in.Type); known && desc.Counts {
				dropped++
			}
			continue
		}
		if hits > 0 {
			in.HitsLeft = hits
		}
	}
	return dropped
}

// clear removes a destroyed brick from the cell index. The instance
// stays in the handle map so stale contacts can still resolve it.
func (b *Board) clear(in *Instance) {
	if in.Row >= 0 && in.Row < b.rows && in.Col >= 0 && in.Col < b.cols {
		if b.cells[in.Row][in.Col] == in.ID {
			b.cells[in.Row][in.Col] = 0
		}
	}
	b.alive--
}
