package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/wareguard/hazardhunt/internal/safety"
)

var ErrUnknownSceneType = errors.New("unknown scene type")

// Build lays out the full room for an archetype. It is a pure function of
// (archetype, rng): the same seed produces the same layout, which is what the
// structural tests rely on. Unknown archetypes fail fast rather than
// defaulting to a storage room.
func Build(archetype safety.Archetype, rng *rand.Rand) ([]Primitive, error) {
	if !archetype.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSceneType, archetype)
	}

	ps := room(archetype)

	switch archetype {
	case safety.ArchetypeStorage:
		for _, z := range []float64{-10, -5, 0} {
			ps = append(ps, ShelvingUnit(Vec3{-10, 0, z}, 0, rng)...)
			ps = append(ps, ShelvingUnit(Vec3{10, 0, z}, math.Pi, rng)...)
		}
		ps = append(ps, Pallet(Vec3{0, 0, -8})...)
		ps = append(ps, Pallet(Vec3{3, 0, -8})...)
		ps = append(ps, Pallet(Vec3{-3, 0, 8})...)
		ps = append(ps, SafetyStation(Vec3{-14.5, 0, 5})...)

	case safety.ArchetypeLoading:
		ps = append(ps, DockDoor(Vec3{0, 0, -14.7}, true)...)
		ps = append(ps, DockDoor(Vec3{-8, 0, -14.7}, false)...)
		ps = append(ps, DockDoor(Vec3{8, 0, -14.7}, true)...)
		ps = append(ps, Pallet(Vec3{-2, 0, -8})...)
		ps = append(ps, Pallet(Vec3{2, 0, -8})...)
		ps = append(ps, Pallet(Vec3{5, 0, -6})...)
		ps = append(ps, Pallet(Vec3{-8, 0, 5})...)
		ps = append(ps, ShelvingUnit(Vec3{-12, 0, 8}, 0, rng)...)
		ps = append(ps, ShelvingUnit(Vec3{12, 0, 8}, math.Pi, rng)...)
		ps = append(ps, Forklift(Vec3{10, 0, -2}, math.Pi/2)...)

	case safety.ArchetypeChemical:
		ps = append(ps, ShelvingUnit(Vec3{-10, 0, -8}, 0, rng)...)
		ps = append(ps, ShelvingUnit(Vec3{10, 0, -8}, math.Pi, rng)...)
		ps = append(ps, ChemicalBarrel(Vec3{-5, 0, -5}, "#dc2626")...)
		ps = append(ps, ChemicalBarrel(Vec3{-4, 0, -5}, "#dc2626")...)
		ps = append(ps, ChemicalBarrel(Vec3{-4.5, 0, -4}, "#eab308")...)
		ps = append(ps, ChemicalBarrel(Vec3{5, 0, -5}, "#22c55e")...)
		ps = append(ps, ChemicalBarrel(Vec3{6, 0, -5}, "#22c55e")...)
		ps = append(ps, ChemicalBarrel(Vec3{5.5, 0, -4}, "#3b82f6")...)
		ps = append(ps, SafetyStation(Vec3{-14.5, 0, 0})...)
		ps = append(ps, SafetyStation(Vec3{14.5, 0, 0})...)
		for _, x := range []float64{-6, 6} {
			ps = append(ps, Primitive{
				Kind:     "floor-stripe",
				Shape:    ShapePlane,
				Position: Vec3{x, 0.02, -5},
				Size:     Vec3{4, 0, 4},
				Rotation: Vec3{-math.Pi / 2, 0, 0},
				Color:    "#fbbf24",
				Opacity:  0.3,
			})
		}
	}

	return ps, nil
}

// room builds the parts every archetype shares: floor with safety-line
// marking, four walls, ceiling with rafter grid, corner pillars, and a 3x3
// grid of ceiling lights.
func room(archetype safety.Archetype) []Primitive {
	wallColor, floorColor := "#e2e8f0", "#64748b"
	if archetype == safety.ArchetypeChemical {
		wallColor, floorColor = "#1e293b", "#1e3a5f"
	}

	ps := []Primitive{
		{Kind: "floor", Shape: ShapePlane, Position: Vec3{0, 0, 0}, Size: Vec3{RoomSize, 0, RoomSize}, Rotation: Vec3{-math.Pi / 2, 0, 0}, Color: floorColor},
		{Kind: "floor-marking", Shape: ShapeRing, Position: Vec3{0, 0.01, 0}, Size: Vec3{8, 0, 8.2}, Rotation: Vec3{-math.Pi / 2, 0, 0}, Color: "#fbbf24"},
		{Kind: "wall", Shape: ShapeBox, Position: Vec3{0, WallHeight / 2, -RoomExtent}, Size: Vec3{RoomSize, WallHeight, WallThickness}, Color: wallColor},
		{Kind: "wall", Shape: ShapeBox, Position: Vec3{0, WallHeight / 2, RoomExtent}, Size: Vec3{RoomSize, WallHeight, WallThickness}, Color: wallColor},
		{Kind: "wall", Shape: ShapeBox, Position: Vec3{-RoomExtent, WallHeight / 2, 0}, Size: Vec3{WallThickness, WallHeight, RoomSize}, Color: wallColor},
		{Kind: "wall", Shape: ShapeBox, Position: Vec3{RoomExtent, WallHeight / 2, 0}, Size: Vec3{WallThickness, WallHeight, RoomSize}, Color: wallColor},
		{Kind: "ceiling", Shape: ShapeBox, Position: Vec3{0, CeilingY, 0}, Size: Vec3{RoomSize, 0.2, RoomSize}, Color: "#374151"},
	}

	for _, x := range []float64{-10, -5, 0, 5, 10} {
		ps = append(ps, Primitive{Kind: "rafter", Shape: ShapeBox, Position: Vec3{x, 6.6, 0}, Size: Vec3{0.3, 0.5, RoomSize}, Color: "#1f2937"})
	}
	for _, z := range []float64{-10, -5, 0, 5, 10} {
		ps = append(ps, Primitive{Kind: "rafter", Shape: ShapeBox, Position: Vec3{0, 6.4, z}, Size: Vec3{RoomSize, 0.3, 0.2}, Color: "#1f2937"})
	}

	for _, x := range []float64{-8, 0, 8} {
		for _, z := range []float64{-8, 0, 8} {
			ps = append(ps, CeilingLight(Vec3{x, FixtureY, z})...)
		}
	}

	for _, x := range []float64{-7, 7} {
		for _, z := range []float64{-7, 7} {
			ps = append(ps, Pillar(x, z))
		}
	}

	return ps
}
