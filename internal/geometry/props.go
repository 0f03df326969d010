package geometry

import (
	"math"
	"math/rand"
)

var boxColors = []string{"#b45309", "#1d4ed8", "#059669", "#7c3aed", "#dc2626", "#0891b2"}

// ShelvingUnit is an industrial rack: four posts, five beams, and a random
// assortment of boxes per shelf. Box sizes and colors come from rng so a
// fixed seed reproduces the layout exactly.
func ShelvingUnit(at Vec3, yaw float64, rng *rand.Rand) []Primitive {
	var ps []Primitive

	for _, x := range []float64{-1.5, -0.5, 0.5, 1.5} {
		ps = append(ps, Primitive{
			Kind:     "shelf-post",
			Shape:    ShapeBox,
			Position: local(at, yaw, x, 2.5, 0),
			Size:     Vec3{0.08, 5, 0.08},
			Rotation: Vec3{0, yaw, 0},
			Color:    "#1e40af",
		})
	}
	for _, y := range []float64{0, 1.2, 2.4, 3.6, 4.8} {
		ps = append(ps, Primitive{
			Kind:     "shelf-beam",
			Shape:    ShapeBox,
			Position: local(at, yaw, 0, y, 0),
			Size:     Vec3{3.08, 0.06, 0.8},
			Rotation: Vec3{0, yaw, 0},
			Color:    "#374151",
		})
	}

	for shelf := 0; shelf < 4; shelf++ {
		n := 2 + rng.Intn(3)
		xOff := -1.0
		for i := 0; i < n; i++ {
			w := 0.3 + rng.Float64()*0.4
			h := 0.3 + rng.Float64()*0.4
			d := 0.3 + rng.Float64()*0.3
			ps = append(ps, Primitive{
				Kind:     "shelf-box",
				Shape:    ShapeBox,
				Position: local(at, yaw, xOff+w/2, float64(shelf)*1.2+h/2, 0),
				Size:     Vec3{w, h, d},
				Rotation: Vec3{0, yaw, 0},
				Color:    boxColors[rng.Intn(len(boxColors))],
			})
			xOff += w + 0.1
		}
	}
	return ps
}

// Pallet is a wooden base with two stacked boxes.
func Pallet(at Vec3) []Primitive {
	ps := []Primitive{
		{Kind: "pallet-base", Shape: ShapeBox, Position: at.Add(Vec3{0, 0.06, 0}), Size: Vec3{1.2, 0.12, 1.2}, Color: "#a16207"},
	}
	for _, x := range []float64{-0.4, 0, 0.4} {
		ps = append(ps, Primitive{Kind: "pallet-slat", Shape: ShapeBox, Position: at.Add(Vec3{x, -0.02, 0}), Size: Vec3{0.1, 0.08, 1.2}, Color: "#854d0e"})
	}
	ps = append(ps,
		Primitive{Kind: "pallet-box", Shape: ShapeBox, Position: at.Add(Vec3{0, 0.37, 0}), Size: Vec3{1, 0.5, 1}, Color: "#b45309"},
		Primitive{Kind: "pallet-box", Shape: ShapeBox, Position: at.Add(Vec3{0.05, 0.82, 0.05}), Size: Vec3{0.9, 0.4, 0.9}, Color: "#92400e"},
	)
	return ps
}

func Pillar(x, z float64) Primitive {
	return Primitive{
		Kind:     "pillar",
		Shape:    ShapeBox,
		Position: Vec3{x, 3, z},
		Size:     Vec3{0.6, 6, 0.6},
		Color:    "#6b7280",
	}
}

// CeilingLight is a fixture housing, glowing panel, and a point light.
func CeilingLight(at Vec3) []Primitive {
	return []Primitive{
		{Kind: "light-housing", Shape: ShapeBox, Position: at, Size: Vec3{1.5, 0.1, 0.4}, Color: "#374151"},
		{Kind: "light-panel", Shape: ShapeBox, Position: at.Add(Vec3{0, -0.08, 0}), Size: Vec3{1.2, 0.05, 0.3}, Color: "#fef9c3", Emissive: 0.5, Opacity: 0.9},
		{Kind: "light-point", Shape: ShapeLight, Position: at.Add(Vec3{0, -0.5, 0}), Color: "#fff7ed", Intensity: 15, Range: 12},
	}
}

// DockDoor is a roll-up door set against the −z wall. Open doors keep only
// the rolled panel at the top of the frame.
func DockDoor(at Vec3, open bool) []Primitive {
	ps := []Primitive{
		{Kind: "dock-frame", Shape: ShapeBox, Position: at.Add(Vec3{-2, 2, 0}), Size: Vec3{0.15, 4, 4}, Color: "#374151"},
		{Kind: "dock-frame", Shape: ShapeBox, Position: at.Add(Vec3{2, 2, 0}), Size: Vec3{0.15, 4, 4}, Color: "#374151"},
		{Kind: "dock-frame", Shape: ShapeBox, Position: at.Add(Vec3{0, 4.1, 0}), Size: Vec3{4.15, 0.2, 4}, Color: "#374151"},
	}
	if open {
		ps = append(ps, Primitive{Kind: "dock-panel", Shape: ShapeBox, Position: at.Add(Vec3{0, 3.75, 0}), Size: Vec3{3.8, 0.5, 0.1}, Color: "#64748b"})
	} else {
		ps = append(ps, Primitive{Kind: "dock-panel", Shape: ShapeBox, Position: at.Add(Vec3{0, 1.95, 0}), Size: Vec3{3.8, 3.8, 0.1}, Color: "#64748b"})
	}
	return ps
}

func ChemicalBarrel(at Vec3, color string) []Primitive {
	return []Primitive{
		{Kind: "barrel", Shape: ShapeCylinder, Position: at.Add(Vec3{0, 0.45, 0}), Size: Vec3{0.35, 0.9, 0.35}, Color: color},
		{Kind: "barrel-label", Shape: ShapeBox, Position: at.Add(Vec3{0, 0.5, 0.36}), Size: Vec3{0.2, 0.2, 0.01}, Color: "#fbbf24"},
	}
}

// SafetyStation is a wall-mounted first-aid cabinet with a white cross.
func SafetyStation(at Vec3) []Primitive {
	return []Primitive{
		{Kind: "safety-cabinet", Shape: ShapeBox, Position: at.Add(Vec3{0, 1.25, 0}), Size: Vec3{1, 1.5, 0.3}, Color: "#dc2626"},
		{Kind: "safety-cross", Shape: ShapeBox, Position: at.Add(Vec3{0, 1.3, 0.16}), Size: Vec3{0.4, 0.1, 0.02}, Color: "#ffffff"},
		{Kind: "safety-cross", Shape: ShapeBox, Position: at.Add(Vec3{0, 1.3, 0.16}), Size: Vec3{0.1, 0.4, 0.02}, Color: "#ffffff"},
	}
}

// Forklift is a parked lift truck: body, cab, mast, forks, four wheels.
func Forklift(at Vec3, yaw float64) []Primitive {
	ps := []Primitive{
		{Kind: "forklift-body", Shape: ShapeBox, Position: local(at, yaw, 0, 0.4, 0), Size: Vec3{1.2, 0.8, 1.8}, Rotation: Vec3{0, yaw, 0}, Color: "#fbbf24"},
		{Kind: "forklift-cab", Shape: ShapeBox, Position: local(at, yaw, 0, 1.3, -0.4), Size: Vec3{1.1, 1, 0.8}, Rotation: Vec3{0, yaw, 0}, Color: "#fbbf24"},
		{Kind: "forklift-mast", Shape: ShapeBox, Position: local(at, yaw, -0.4, 1, 0.7), Size: Vec3{0.1, 2, 0.1}, Rotation: Vec3{0, yaw, 0}, Color: "#374151"},
		{Kind: "forklift-mast", Shape: ShapeBox, Position: local(at, yaw, 0.4, 1, 0.7), Size: Vec3{0.1, 2, 0.1}, Rotation: Vec3{0, yaw, 0}, Color: "#374151"},
		{Kind: "forklift-fork", Shape: ShapeBox, Position: local(at, yaw, -0.3, 0.1, 1.2), Size: Vec3{0.08, 0.05, 1}, Rotation: Vec3{0, yaw, 0}, Color: "#374151"},
		{Kind: "forklift-fork", Shape: ShapeBox, Position: local(at, yaw, 0.3, 0.1, 1.2), Size: Vec3{0.08, 0.05, 1}, Rotation: Vec3{0, yaw, 0}, Color: "#374151"},
	}
	for _, w := range [][2]float64{{-0.6, 0.6}, {0.6, 0.6}, {-0.6, -0.6}, {0.6, -0.6}} {
		ps = append(ps, Primitive{
			Kind:     "forklift-wheel",
			Shape:    ShapeCylinder,
			Position: local(at, yaw, w[0], 0.2, w[1]),
			Size:     Vec3{0.2, 0.15, 0.2},
			Rotation: Vec3{0, yaw, math.Pi / 2},
			Color:    "#1f2937",
		})
	}
	return ps
}

// local converts an offset in a prop's own frame (rotated yaw around Y) into
// a world position relative to the prop origin.
func local(at Vec3, yaw, x, y, z float64) Vec3 {
	sin, cos := math.Sin(yaw), math.Cos(yaw)
	return Vec3{
		X: at.X + x*cos + z*sin,
		Y: at.Y + y,
		Z: at.Z - x*sin + z*cos,
	}
}
