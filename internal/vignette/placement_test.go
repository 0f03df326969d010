package vignette

import (
	"math"
	"testing"

	"github.com/wareguard/hazardhunt/internal/geometry"
	"github.com/wareguard/hazardhunt/internal/safety"
)

func TestPlaceFloorClamp(t *testing.T) {
	h := safety.Hazard{ID: "h1", Type: safety.HazardSpill, X: 3, Y: 2.5, Z: -4}
	p := Place(h, geometry.RoomExtent)
	if p.Position.Y != 0 {
		t.Errorf("spill Y = %v, want 0", p.Position.Y)
	}
	if p.Position.X != 3 || p.Position.Z != -4 {
		t.Errorf("spill XZ moved: got (%v, %v)", p.Position.X, p.Position.Z)
	}
	if p.Wall != WallNone {
		t.Errorf("spill snapped to wall %q", p.Wall)
	}
}

func TestPlaceStackingKeepsElevation(t *testing.T) {
	h := safety.Hazard{ID: "h2", Type: safety.HazardStacking, X: -8, Y: 3.2, Z: 1}
	p := Place(h, geometry.RoomExtent)
	if p.Position.Y != 3.2 {
		t.Errorf("stacking Y = %v, want authored 3.2", p.Position.Y)
	}
}

func TestPlaceCeilingMount(t *testing.T) {
	h := safety.Hazard{ID: "h3", Type: safety.HazardLighting, X: 0, Y: 1, Z: 5}
	p := Place(h, geometry.RoomExtent)
	if p.Position.Y != geometry.FixtureY {
		t.Errorf("lighting Y = %v, want %v", p.Position.Y, geometry.FixtureY)
	}
}

func TestPlaceWallSnap(t *testing.T) {
	// Authored near the +x wall of a 16-half-extent room: the vignette
	// ends up flush against it, facing back into the room.
	h := safety.Hazard{ID: "h4", Type: safety.HazardExit, X: 15.9, Y: 0, Z: 2}
	p := Place(h, 16)

	if p.Wall != WallEast {
		t.Fatalf("wall = %q, want %q", p.Wall, WallEast)
	}
	if want := 16 - wallInset; p.Position.X != want {
		t.Errorf("X = %v, want %v", p.Position.X, want)
	}
	if p.Facing.X >= 0 {
		t.Errorf("facing X = %v, want inward (negative)", p.Facing.X)
	}
	if p.Position.Z != 2 {
		t.Errorf("Z = %v, want 2", p.Position.Z)
	}
}

func TestPlaceWallSnapClampsCorner(t *testing.T) {
	h := safety.Hazard{ID: "h5", Type: safety.HazardElectrical, X: 14, Y: 0, Z: -14.8}
	p := Place(h, geometry.RoomExtent)

	if p.Wall != WallNorth {
		t.Fatalf("wall = %q, want %q", p.Wall, WallNorth)
	}
	flush := geometry.RoomExtent - wallInset
	if p.Position.Z != -flush {
		t.Errorf("Z = %v, want %v", p.Position.Z, -flush)
	}
	if p.Position.X > flush {
		t.Errorf("X = %v pokes past corner %v", p.Position.X, flush)
	}
}

func TestPlaceYawMatchesFacing(t *testing.T) {
	h := safety.Hazard{ID: "h6", Type: safety.HazardExit, X: -15, Y: 0, Z: 0}
	p := Place(h, geometry.RoomExtent)
	if p.Wall != WallWest {
		t.Fatalf("wall = %q, want %q", p.Wall, WallWest)
	}
	if want := math.Atan2(1, 0); p.Yaw != want {
		t.Errorf("yaw = %v, want %v", p.Yaw, want)
	}
}
