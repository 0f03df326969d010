// Package vignette turns hazard records into renderable 3D vignettes: a
// placement, a list of primitives, a click hitbox, and per-frame animation
// parameters. It is headless: the client draws, this package decides what
// and where.
package vignette

import (
	"math"

	"github.com/wareguard/hazardhunt/internal/geometry"
	"github.com/wareguard/hazardhunt/internal/safety"
)

// Wall identifies one of the four room walls.
type Wall string

const (
	WallNone  Wall = ""
	WallEast  Wall = "+x"
	WallWest  Wall = "-x"
	WallSouth Wall = "+z"
	WallNorth Wall = "-z"
)

// wallInset keeps wall-snapped vignettes just inside the wall face.
const wallInset = 0.5

// Placement is the resolved world transform for a vignette. Facing is a unit
// vector toward the room interior for wall-snapped hazards, and the authored
// orientation (toward +z) otherwise.
type Placement struct {
	Position geometry.Vec3 `json:"position"`
	Yaw      float64       `json:"yaw"`
	Facing   geometry.Vec3 `json:"facing"`
	Wall     Wall          `json:"wall,omitempty"`
}

// placementPolicy is the per-type strategy table. Authored coordinates are
// treated as approximate: most vignettes are defined relative to the floor,
// exits and electrical panels belong on a wall, and light fixtures hang from
// the ceiling. Stacking is the one type that keeps its authored elevation,
// some stacking hazards sit on upper rack shelves.
type placementPolicy struct {
	floorClamp   bool
	wallSnap     bool
	ceilingMount bool
}

var placementPolicies = map[safety.HazardType]placementPolicy{
	safety.HazardSpill:      {floorClamp: true},
	safety.HazardStacking:   {},
	safety.HazardExit:       {floorClamp: true, wallSnap: true},
	safety.HazardEquipment:  {floorClamp: true},
	safety.HazardLighting:   {ceilingMount: true},
	safety.HazardPPE:        {floorClamp: true},
	safety.HazardFire:       {floorClamp: true},
	safety.HazardElectrical: {floorClamp: true, wallSnap: true},
	safety.HazardChemical:   {floorClamp: true},
}

// Place resolves a hazard's authored coordinates against the placement
// policy for its type. extent is the room half extent.
func Place(h safety.Hazard, extent float64) Placement {
	p := Placement{
		Position: geometry.Vec3{X: h.X, Y: h.Y, Z: h.Z},
		Facing:   geometry.Vec3{Z: 1},
	}

	pol := placementPolicies[h.Type]
	if pol.floorClamp {
		p.Position.Y = 0
	}
	if pol.ceilingMount {
		p.Position.Y = geometry.FixtureY
	}
	if pol.wallSnap {
		p.Wall, p.Position.X, p.Position.Z, p.Facing = snapToWall(p.Position.X, p.Position.Z, extent)
	}
	p.Yaw = math.Atan2(p.Facing.X, p.Facing.Z)
	return p
}

// snapToWall moves (x, z) flush against the nearest wall and returns the
// inward-facing normal. The coordinate along the wall is clamped so the
// vignette never pokes through a corner.
func snapToWall(x, z, extent float64) (Wall, float64, float64, geometry.Vec3) {
	flush := extent - wallInset

	wall := WallEast
	min := extent - x
	if d := extent + x; d < min {
		wall, min = WallWest, d
	}
	if d := extent - z; d < min {
		wall, min = WallSouth, d
	}
	if d := extent + z; d < min {
		wall = WallNorth
	}

	clamp := func(v float64) float64 {
		return math.Max(-flush, math.Min(flush, v))
	}

	switch wall {
	case WallEast:
		return wall, flush, clamp(z), geometry.Vec3{X: -1}
	case WallWest:
		return wall, -flush, clamp(z), geometry.Vec3{X: 1}
	case WallSouth:
		return wall, clamp(x), flush, geometry.Vec3{Z: -1}
	default:
		return wall, clamp(x), -flush, geometry.Vec3{Z: 1}
	}
}
