package bricks

import (
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/rules"
)

// Hazard is a falling hazard in flight, in fixed-point screen
// coordinates. Hazards descend toward the paddle, drift sideways and
// bounce off the playfield walls.
type Hazard struct {
	X, Y   core.Fixed
	VX, VY core.Fixed // Velocity per tick
	Active bool
}

// CellX returns hazard X in cell coordinates.
func (h *Hazard) CellX() int {
	return h.X.ToCell()
}

// CellY returns hazard Y in cell coordinates.
func (h *Hazard) CellY() int {
	return h.Y.ToCell()
}

// Move updates hazard position.
func (h *Hazard) Move() {
	h.X = h.X.Add(h.VX)
	h.Y = h.Y.Add(h.VY)
}

// NewHazard converts a materialized spawn request from grid coordinates
// and cells-per-second velocity into a screen-space hazard moving in
// cells per tick.
func NewHazard(spawn rules.HazardSpawn, top, brickW, brickH, tickRate int) *Hazard {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Hazard{
		X:      spawn.Pos.X.Mul(brickW),
		Y:      core.ToFixed(top).Add(spawn.Pos.Y.Mul(brickH)),
		VX:     spawn.Vel.X.Mul(brickW).Div(tickRate),
		VY:     spawn.Vel.Y.Mul(brickH).Div(tickRate),
		Active: true,
	}
}

// UpdateHazards moves every active hazard, bounces them off the side
// walls and drops the ones that left the playfield. The slice is
// filtered in place.
func UpdateHazards(hazards []*Hazard, fieldW, drainY int) []*Hazard {
	keep := hazards[:0]
	for _, h := range hazards {
		if !h.Active {
			continue
		}
		h.Move()

		if h.X < 0 {
			h.X = 0
			h.VX = -h.VX
		}
		if h.X > core.ToFixed(fieldW-1) {
			h.X = core.ToFixed(fieldW - 1)
			h.VX = -h.VX
		}

		if h.Y >= core.ToFixed(drainY) {
			continue
		}
		keep = append(keep, h)
	}
	return keep
}

// CheckHazardPaddleCollision deactivates every hazard overlapping the
// paddle and returns how many struck it this tick.
func CheckHazardPaddleCollision(hazards []*Hazard, paddle *Paddle) int {
	hits := 0
	for _, h := range hazards {
		if !h.Active {
			continue
		}

		hy := h.CellY()
		if hy != paddle.Y && hy != paddle.Y-1 {
			continue
		}
		if h.X >= paddle.Left() && h.X <= paddle.Right() {
			h.Active = false
			hits++
		}
	}
	return hits
}
