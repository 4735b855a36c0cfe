package bricks

import (
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/rules"
)

// Ball is the ball state in fixed-point screen coordinates.
type Ball struct {
	ID     rules.EntityID
	X, Y   core.Fixed // Position (center)
	VX, VY core.Fixed // Velocity per tick
	Stuck  bool       // Riding the paddle, waiting for launch
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return b.X.ToCell()
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return b.Y.ToCell()
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X = b.X.Add(b.VX)
	b.Y = b.Y.Add(b.VY)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle is the player's paddle. Y is a fixed row inside the playfield;
// only X moves.
type Paddle struct {
	X     core.Fixed // Left edge position (fixed-point)
	Y     int        // Cell Y position
	Width int        // Width in cells
}

// CellX returns paddle's left edge in cell coordinates.
func (p *Paddle) CellX() int {
	return p.X.ToCell()
}

// CenterX returns paddle's center in fixed-point.
func (p *Paddle) CenterX() core.Fixed {
	return p.X.Add(core.ToFixed(p.Width).Div(2))
}

// Left returns left edge in fixed-point.
func (p *Paddle) Left() core.Fixed {
	return p.X
}

// Right returns right edge in fixed-point.
func (p *Paddle) Right() core.Fixed {
	return p.X.Add(core.ToFixed(p.Width))
}

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// CheckWallCollision checks the ball against the playfield bounds.
// fieldW is the playfield width in cells, ceilingY the first playable
// row and drainY the row past which the ball is lost. Returns the wall
// side hit, if any, and whether the ball drained.
func CheckWallCollision(ball *Ball, fieldW, ceilingY, drainY int) (side CollisionSide, drained bool) {
	if ball.X < 0 {
		ball.X = 0
		return CollisionLeft, false
	}

	if ball.X > core.ToFixed(fieldW-1) {
		ball.X = core.ToFixed(fieldW - 1)
		return CollisionRight, false
	}

	if ball.Y < core.ToFixed(ceilingY) {
		ball.Y = core.ToFixed(ceilingY)
		return CollisionTop, false
	}

	if ball.Y >= core.ToFixed(drainY) {
		return CollisionBottom, true
	}

	return CollisionNone, false
}

// CheckPaddleCollision checks if the ball hits the paddle and, if so,
// bounces it upward with an angle proportional to where on the paddle
// it landed. Returns true on contact.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, baseSpeed core.Fixed) bool {
	// Ball must be moving downward and at paddle's Y level
	if ball.VY <= 0 {
		return false
	}

	ballY := ball.Y.ToCell()
	if ballY != paddle.Y && ballY != paddle.Y-1 {
		return false
	}

	ballX := ball.X
	if ballX < paddle.Left() || ballX > paddle.Right() {
		return false
	}

	// Normalize hit offset to -1000..+1000 across the paddle
	hitOffset := ballX.Sub(paddle.CenterX())
	halfWidth := core.ToFixed(paddle.Width).Div(2)

	var normalizedHit core.Fixed
	if halfWidth > 0 {
		normalizedHit = hitOffset.Mul(core.Scale).Div(int(halfWidth))
	}

	// Bounce upward; floor the vertical speed so edge hits stay playable
	ball.VY = -ball.VY.Abs()
	if ball.VY > -baseSpeed/2 {
		ball.VY = -baseSpeed / 2
	}

	// Edge hits give more horizontal angle
	ball.VX = normalizedHit.Mul(int(baseSpeed)) / core.Scale

	// Ensure ball moves away from paddle
	ball.Y = core.ToFixed(paddle.Y - 1)

	return true
}

// BrickCollisionSide determines which side of a brick rectangle the
// ball struck, given the brick bounds in cell coordinates. Vertical
// bounces win ties and dominate when the ball moves mostly vertically.
func BrickCollisionSide(ball *Ball, left, right, top, bottom int) CollisionSide {
	distLeft := ball.X.Sub(core.ToFixed(left)).Abs()
	distRight := ball.X.Sub(core.ToFixed(right)).Abs()
	distTop := ball.Y.Sub(core.ToFixed(top)).Abs()
	distBottom := ball.Y.Sub(core.ToFixed(bottom)).Abs()

	minHoriz := distLeft
	horizSide := CollisionLeft
	if distRight < minHoriz {
		minHoriz = distRight
		horizSide = CollisionRight
	}

	minVert := distTop
	vertSide := CollisionTop
	if distBottom < minVert {
		minVert = distBottom
		vertSide = CollisionBottom
	}

	if ball.VY.Abs() > ball.VX.Abs() || minVert <= minHoriz {
		return vertSide
	}
	return horizSide
}

// ApplyCollisionBounce applies the appropriate bounce for a collision side.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop, CollisionBottom:
		ball.BounceY()
	case CollisionLeft, CollisionRight:
		ball.BounceX()
	}
}
