// Package player implements the first-person movement controller. The server
// owns the authoritative camera transform; the client streams raw input
// events over the session socket and renders whatever pose comes back.
package player

import (
	"math"

	"github.com/wareguard/hazardhunt/internal/geometry"
)

const (
	// Bound keeps the player inside the walkable area, half a meter or so
	// short of the walls and racking.
	Bound = 14.0

	Speed       = 4.0   // meters per second
	Sensitivity = 0.002 // radians per pixel of mouse travel

	pitchLimit = math.Pi/2 - 0.1
)

// StartPosition is the spawn pose at eye height near the south wall.
var StartPosition = geometry.Vec3{X: 0, Y: geometry.EyeHeight, Z: 8}

// Controller tracks one player's pose and held keys. It is not safe for
// concurrent use; the session serializes access.
type Controller struct {
	pos   geometry.Vec3
	yaw   float64
	pitch float64

	locked bool
	keys   map[string]bool
}

func New() *Controller {
	return &Controller{
		pos:  StartPosition,
		keys: make(map[string]bool),
	}
}

// Position returns the camera position.
func (c *Controller) Position() geometry.Vec3 { return c.pos }

// Orientation returns yaw and pitch in radians.
func (c *Controller) Orientation() (yaw, pitch float64) { return c.yaw, c.pitch }

// Locked reports whether pointer lock is engaged.
func (c *Controller) Locked() bool { return c.locked }

// Lock engages pointer lock, enabling look and move input.
func (c *Controller) Lock() { c.locked = true }

// Unlock releases pointer lock and drops all held keys so the player does
// not keep walking after focus is lost.
func (c *Controller) Unlock() {
	c.locked = false
	clear(c.keys)
}

// Reset returns the controller to the spawn pose.
func (c *Controller) Reset() {
	c.pos = StartPosition
	c.yaw, c.pitch = 0, 0
	c.locked = false
	clear(c.keys)
}

// KeyDown records a pressed key. Arrow keys alias WASD.
func (c *Controller) KeyDown(code string) {
	if k := canonical(code); k != "" {
		c.keys[k] = true
	}
}

// KeyUp releases a key.
func (c *Controller) KeyUp(code string) {
	if k := canonical(code); k != "" {
		delete(c.keys, k)
	}
}

func canonical(code string) string {
	switch code {
	case "KeyW", "ArrowUp":
		return "forward"
	case "KeyS", "ArrowDown":
		return "back"
	case "KeyA", "ArrowLeft":
		return "left"
	case "KeyD", "ArrowRight":
		return "right"
	}
	return ""
}

// MouseMove applies a relative mouse delta. Ignored unless pointer lock is
// engaged. Pitch is clamped short of straight up and down.
func (c *Controller) MouseMove(dx, dy float64) {
	if !c.locked {
		return
	}
	c.yaw -= dx * Sensitivity
	c.pitch -= dy * Sensitivity
	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}
}

// Step advances the player by dt seconds of held movement. Diagonal input is
// normalized so it is no faster than a single axis. Each axis update is
// accepted only while it stays strictly inside the room bound; a rejected
// axis keeps its old value, so the player slides along walls.
func (c *Controller) Step(dt float64) {
	if !c.locked || len(c.keys) == 0 {
		return
	}

	// Forward projected onto the floor plane; pitch never affects speed.
	forward := geometry.Vec3{X: -math.Sin(c.yaw), Z: -math.Cos(c.yaw)}
	right := geometry.Vec3{X: forward.Z, Z: -forward.X}

	var move geometry.Vec3
	if c.keys["forward"] {
		move = move.Add(forward)
	}
	if c.keys["back"] {
		move = move.Add(forward.Scale(-1))
	}
	if c.keys["left"] {
		move = move.Add(right)
	}
	if c.keys["right"] {
		move = move.Add(right.Scale(-1))
	}
	if move.Length() == 0 {
		return
	}
	move = move.Normalize().Scale(Speed * dt)

	if next := c.pos.X + move.X; math.Abs(next) < Bound {
		c.pos.X = next
	}
	if next := c.pos.Z + move.Z; math.Abs(next) < Bound {
		c.pos.Z = next
	}
}
