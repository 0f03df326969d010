// Package geometry builds the static warehouse room for a scene archetype:
// floor, walls, ceiling, rafters, pillars, lights, and archetype-specific
// furniture. The output is a flat list of placed primitives the client
// renders verbatim; nothing here knows about hazards or game state.
package geometry

import "math"

// Room dimensions, shared with hazard placement and the movement bound.
const (
	RoomSize      = 30.0 // wall-to-wall extent of the square room
	RoomExtent    = 15.0 // half extent: walls sit at ±RoomExtent
	WallHeight    = 7.0
	WallThickness = 0.3
	CeilingY      = 6.9 // ceiling slab center height
	FixtureY      = 6.3 // hanging height of ceiling light fixtures
	EyeHeight     = 1.7 // camera height above the floor
)

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

type Shape string

const (
	ShapeBox      Shape = "box"
	ShapeCylinder Shape = "cylinder"
	ShapePlane    Shape = "plane"
	ShapeDisc     Shape = "disc"
	ShapeRing     Shape = "ring"
	ShapeSphere   Shape = "sphere"
	ShapeLight    Shape = "light" // point light, no mesh
)

// Primitive is one renderable piece of the scene. Size is interpreted per
// shape: boxes use X/Y/Z as width/height/depth, cylinders X=radius Y=height,
// discs and spheres X=radius, rings X=inner Z=outer radius, planes X/Z.
// Opacity zero means fully opaque.
type Primitive struct {
	Kind      string  `json:"kind"`
	Shape     Shape   `json:"shape"`
	Position  Vec3    `json:"position"`
	Size      Vec3    `json:"size"`
	Rotation  Vec3    `json:"rotation,omitempty"` // radians, applied XYZ
	Color     string  `json:"color,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Emissive  float64 `json:"emissive,omitempty"`
	Intensity float64 `json:"intensity,omitempty"` // lights only
	Range     float64 `json:"range,omitempty"`     // lights only
}
