package vignette

import (
	"math"
	"strings"

	"github.com/wareguard/hazardhunt/internal/geometry"
	"github.com/wareguard/hazardhunt/internal/safety"
)

// Kind names one visual variant. Each hazard type maps to one kind, except
// PPE which splits into three sub-variants by its explicit subtype.
type Kind string

const (
	KindSpill        Kind = "spill"
	KindStacking     Kind = "stacking"
	KindBlockedExit  Kind = "blocked-exit"
	KindEquipment    Kind = "equipment"
	KindLighting     Kind = "lighting"
	KindPPESign      Kind = "ppe-sign"
	KindDockEdge     Kind = "dock-edge"
	KindSafetyShower Kind = "safety-shower"
	KindFire         Kind = "fire"
	KindElectrical   Kind = "electrical"
	KindChemical     Kind = "chemical"
)

const (
	identifiedColor = "#22c55e"

	defaultSpillSize    = 1.5
	defaultChemicalSize = 1.2
)

// Hitbox is the clickable region of a vignette, a sphere in world space.
type Hitbox struct {
	Center geometry.Vec3 `json:"center"`
	Radius float64       `json:"radius"`
}

// Vignette is the renderable form of one hazard. Primitives are positioned
// in world space; the hint glow is a separate light so the client can toggle
// it without rebuilding.
type Vignette struct {
	HazardID   string               `json:"hazardId"`
	Kind       Kind                 `json:"kind"`
	Severity   safety.Severity      `json:"severity"`
	Placement  Placement            `json:"placement"`
	Primitives []geometry.Primitive `json:"primitives"`
	Hitbox     Hitbox               `json:"hitbox"`
	Identified bool                 `json:"identified"`
	HintGlow   *geometry.Primitive  `json:"hintGlow,omitempty"`
}

// KindOf resolves the vignette kind for a hazard. Catalog validation
// guarantees the type is known, so the zero Kind is unreachable for loaded
// scenes.
func KindOf(h safety.Hazard) Kind {
	switch h.Type {
	case safety.HazardSpill:
		return KindSpill
	case safety.HazardStacking:
		return KindStacking
	case safety.HazardExit:
		return KindBlockedExit
	case safety.HazardEquipment:
		return KindEquipment
	case safety.HazardLighting:
		return KindLighting
	case safety.HazardPPE:
		switch h.Subtype {
		case safety.SubtypeDockEdge:
			return KindDockEdge
		case safety.SubtypeSafetyShower:
			return KindSafetyShower
		default:
			return KindPPESign
		}
	case safety.HazardFire:
		return KindFire
	case safety.HazardElectrical:
		return KindElectrical
	case safety.HazardChemical:
		return KindChemical
	}
	return ""
}

// Build assembles the vignette for a hazard given the current game state.
// extent is the room half extent used for wall snapping.
func Build(h safety.Hazard, identified, hints bool, extent float64) Vignette {
	place := Place(h, extent)
	v := Vignette{
		HazardID:   h.ID,
		Kind:       KindOf(h),
		Severity:   h.Severity,
		Placement:  place,
		Identified: identified,
	}

	switch v.Kind {
	case KindSpill:
		v.Primitives, v.Hitbox = buildSpill(h, place, identified)
	case KindStacking:
		v.Primitives, v.Hitbox = buildStacking(place, identified)
	case KindBlockedExit:
		v.Primitives, v.Hitbox = buildBlockedExit(place, identified)
	case KindEquipment:
		v.Primitives, v.Hitbox = buildEquipment(place, identified)
	case KindLighting:
		v.Primitives, v.Hitbox = buildLighting(place, identified)
	case KindPPESign:
		v.Primitives, v.Hitbox = buildPPESign(place, identified)
	case KindDockEdge:
		v.Primitives, v.Hitbox = buildDockEdge(place, identified)
	case KindSafetyShower:
		v.Primitives, v.Hitbox = buildSafetyShower(place, identified)
	case KindFire:
		v.Primitives, v.Hitbox = buildFire(place, identified)
	case KindElectrical:
		v.Primitives, v.Hitbox = buildElectrical(place, identified)
	case KindChemical:
		v.Primitives, v.Hitbox = buildChemical(h, place, identified)
	}

	if hints && !identified {
		v.HintGlow = &geometry.Primitive{
			Kind:      "hint-glow",
			Shape:     geometry.ShapeLight,
			Position:  place.Position.Add(geometry.Vec3{Y: 1}),
			Color:     "#ef4444",
			Intensity: 3,
			Range:     4,
		}
	}

	return v
}

func mark(base string, identified bool) string {
	if identified {
		return identifiedColor
	}
	return base
}

func buildSpill(h safety.Hazard, p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	size := h.Size
	if size == 0 {
		size = defaultSpillSize
	}

	color := "#1e293b"
	if strings.Contains(strings.ToLower(h.Description), "water") {
		color = "#60a5fa"
	}

	ps := []geometry.Primitive{
		{Kind: "spill-surface", Shape: geometry.ShapeDisc, Position: p.Position, Size: geometry.Vec3{X: size}, Rotation: geometry.Vec3{X: -math.Pi / 2}, Color: mark(color, identified), Opacity: 0.7},
	}
	if !identified {
		// Warning cone beside the puddle.
		ps = append(ps,
			geometry.Primitive{Kind: "cone", Shape: geometry.ShapeCylinder, Position: p.Position.Add(geometry.Vec3{X: size + 0.3, Y: 0.2}), Size: geometry.Vec3{X: 0.15, Y: 0.4, Z: 0.02}, Color: "#f97316"},
			geometry.Primitive{Kind: "cone-base", Shape: geometry.ShapeCylinder, Position: p.Position.Add(geometry.Vec3{X: size + 0.3, Y: 0.01}), Size: geometry.Vec3{X: 0.18, Y: 0.02, Z: 0.15}, Color: "#1f2937"},
		)
	}
	return ps, Hitbox{Center: p.Position, Radius: size}
}

func buildStacking(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	ps := []geometry.Primitive{
		{Kind: "tilted-box", Shape: geometry.ShapeBox, Position: p.Position, Size: geometry.Vec3{X: 0.8, Y: 0.6, Z: 0.8}, Rotation: geometry.Vec3{X: 0.1, Y: 0, Z: 0.15}, Color: mark("#b45309", identified)},
		{Kind: "tilted-box", Shape: geometry.ShapeBox, Position: p.Position.Add(geometry.Vec3{X: 0.1, Y: 0.6, Z: 0.05}), Size: geometry.Vec3{X: 0.7, Y: 0.5, Z: 0.7}, Rotation: geometry.Vec3{X: 0, Y: 0.2, Z: 0.2}, Color: mark("#92400e", identified)},
		{Kind: "tilted-box", Shape: geometry.ShapeBox, Position: p.Position.Add(geometry.Vec3{X: -0.15, Y: 1.1, Z: 0}), Size: geometry.Vec3{X: 0.6, Y: 0.4, Z: 0.6}, Rotation: geometry.Vec3{X: -0.1, Y: 0.1, Z: -0.25}, Color: mark("#78350f", identified)},
		{Kind: "fallen-box", Shape: geometry.ShapeBox, Position: p.Position.Add(geometry.Vec3{X: 1.2, Y: 0.2, Z: 0.3}), Size: geometry.Vec3{X: 0.5, Y: 0.4, Z: 0.5}, Rotation: geometry.Vec3{X: 0.3, Y: 0.5, Z: 1.2}, Color: mark("#a16207", identified)},
	}
	return ps, Hitbox{Center: p.Position.Add(geometry.Vec3{Y: 0.7}), Radius: 1.4}
}

func buildBlockedExit(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	yaw := p.Yaw
	ps := []geometry.Primitive{
		{Kind: "exit-frame", Shape: geometry.ShapeBox, Position: offset(at, yaw, -0.6, 1.25, 0), Size: geometry.Vec3{X: 0.1, Y: 2.5, Z: 1.2}, Rotation: geometry.Vec3{X: 0, Y: yaw, Z: 0}, Color: "#374151"},
		{Kind: "exit-frame", Shape: geometry.ShapeBox, Position: offset(at, yaw, 0.6, 1.25, 0), Size: geometry.Vec3{X: 0.1, Y: 2.5, Z: 1.2}, Rotation: geometry.Vec3{X: 0, Y: yaw, Z: 0}, Color: "#374151"},
		{Kind: "exit-frame", Shape: geometry.ShapeBox, Position: offset(at, yaw, 0, 2.5, 0), Size: geometry.Vec3{X: 1.3, Y: 0.1, Z: 1.2}, Rotation: geometry.Vec3{X: 0, Y: yaw, Z: 0}, Color: "#374151"},
		{Kind: "exit-sign", Shape: geometry.ShapeBox, Position: offset(at, yaw, 0, 2.3, 0.6), Size: geometry.Vec3{X: 0.6, Y: 0.2, Z: 0.05}, Rotation: geometry.Vec3{X: 0, Y: yaw, Z: 0}, Color: "#dc2626", Emissive: 0.5},
		{Kind: "blocking-box", Shape: geometry.ShapeBox, Position: offset(at, yaw, 0, 0.25, 0.4), Size: geometry.Vec3{X: 0.6, Y: 0.5, Z: 0.5}, Rotation: geometry.Vec3{X: 0, Y: yaw, Z: 0}, Color: mark("#b45309", identified)},
		{Kind: "blocking-box", Shape: geometry.ShapeBox, Position: offset(at, yaw, 0.3, 0.55, 0.3), Size: geometry.Vec3{X: 0.5, Y: 0.6, Z: 0.5}, Rotation: geometry.Vec3{X: 0, Y: yaw, Z: 0}, Color: mark("#92400e", identified)},
		{Kind: "blocking-box", Shape: geometry.ShapeBox, Position: offset(at, yaw, -0.25, 0.7, 0.5), Size: geometry.Vec3{X: 0.4, Y: 0.4, Z: 0.4}, Rotation: geometry.Vec3{X: 0, Y: yaw, Z: 0}, Color: mark("#a16207", identified)},
	}
	return ps, Hitbox{Center: offset(at, yaw, 0, 0.5, 0.4), Radius: 1.2}
}

func buildEquipment(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	body := mark("#fbbf24", identified)
	ps := []geometry.Primitive{
		{Kind: "forklift-body", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0, Y: 0.4, Z: 0}), Size: geometry.Vec3{X: 1.2, Y: 0.8, Z: 1.8}, Color: body},
		{Kind: "forklift-cab", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0, Y: 1.3, Z: -0.4}), Size: geometry.Vec3{X: 1.1, Y: 1, Z: 0.8}, Color: body},
		{Kind: "forklift-mast", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: -0.4, Y: 1, Z: 0.7}), Size: geometry.Vec3{X: 0.1, Y: 2, Z: 0.1}, Color: "#374151"},
		{Kind: "forklift-mast", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0.4, Y: 1, Z: 0.7}), Size: geometry.Vec3{X: 0.1, Y: 2, Z: 0.1}, Color: "#374151"},
		{Kind: "forklift-fork", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: -0.3, Y: 0.1, Z: 1.2}), Size: geometry.Vec3{X: 0.08, Y: 0.05, Z: 1}, Color: "#374151"},
		{Kind: "forklift-fork", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0.3, Y: 0.1, Z: 1.2}), Size: geometry.Vec3{X: 0.08, Y: 0.05, Z: 1}, Color: "#374151"},
		{Kind: "wheel", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: -0.6, Y: 0.2, Z: 0.6}), Size: geometry.Vec3{X: 0.2, Y: 0.15, Z: 0.2}, Rotation: geometry.Vec3{X: 0, Y: 0, Z: math.Pi / 2}, Color: "#1f2937"},
		{Kind: "wheel", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0.6, Y: 0.2, Z: 0.6}), Size: geometry.Vec3{X: 0.2, Y: 0.15, Z: 0.2}, Rotation: geometry.Vec3{X: 0, Y: 0, Z: math.Pi / 2}, Color: "#1f2937"},
		{Kind: "wheel", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: -0.6, Y: 0.2, Z: -0.6}), Size: geometry.Vec3{X: 0.2, Y: 0.15, Z: 0.2}, Rotation: geometry.Vec3{X: 0, Y: 0, Z: math.Pi / 2}, Color: "#1f2937"},
		// The defect: rear wheel sagging on a flat tire.
		{Kind: "flat-wheel", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0.6, Y: 0.1, Z: -0.6}), Size: geometry.Vec3{X: 0.2, Y: 0.15, Z: 0.2}, Rotation: geometry.Vec3{X: 0, Y: 0, Z: math.Pi / 2}, Color: mark("#dc2626", identified)},
		{Kind: "flat-bulge", Shape: geometry.ShapeSphere, Position: at.Add(geometry.Vec3{X: 0.6, Y: 0.05, Z: -0.6}), Size: geometry.Vec3{X: 0.12}, Color: "#1f2937"},
	}
	return ps, Hitbox{Center: at.Add(geometry.Vec3{Y: 0.8}), Radius: 1.6}
}

func buildLighting(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	bulb := mark("#fef3c7", identified)
	emissive := 0.8
	if identified {
		emissive = 0.3
	}
	ps := []geometry.Primitive{
		{Kind: "fixture", Shape: geometry.ShapeBox, Position: at, Size: geometry.Vec3{X: 0.8, Y: 0.1, Z: 0.3}, Color: mark("#6b7280", identified)},
		{Kind: "bulb", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0, Y: -0.15, Z: 0}), Size: geometry.Vec3{X: 0.1, Y: 0.2, Z: 0.15}, Color: bulb, Emissive: emissive},
	}
	if !identified {
		ps = append(ps, geometry.Primitive{Kind: "flicker-light", Shape: geometry.ShapeLight, Position: at.Add(geometry.Vec3{X: 0, Y: -0.3, Z: 0}), Color: "#fef3c7", Intensity: 1, Range: 8})
	}
	return ps, Hitbox{Center: at, Radius: 0.8}
}

func buildPPESign(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	ps := []geometry.Primitive{
		{Kind: "sign-post", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0, Y: 1, Z: 0}), Size: geometry.Vec3{X: 0.05, Y: 2, Z: 0.05}, Color: "#6b7280"},
		// Empty bracket: the sign itself is missing.
		{Kind: "sign-bracket", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0, Y: 1.8, Z: 0.05}), Size: geometry.Vec3{X: 0.6, Y: 0.4, Z: 0.02}, Color: mark("#374151", identified), Opacity: 0.3},
		{Kind: "fallen-sign", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0.4, Y: 0.02, Z: 0.3}), Size: geometry.Vec3{X: 0.5, Y: 0.35, Z: 0.02}, Rotation: geometry.Vec3{X: -math.Pi / 2, Y: 0, Z: 0.3}, Color: mark("#fbbf24", identified)},
	}
	return ps, Hitbox{Center: at.Add(geometry.Vec3{Y: 1}), Radius: 1}
}

func buildDockEdge(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	ps := []geometry.Primitive{
		// Unmarked dock edge: stripe peeled away, barrier post knocked over.
		{Kind: "edge-stripe", Shape: geometry.ShapePlane, Position: at.Add(geometry.Vec3{X: 0, Y: 0.01, Z: 0}), Size: geometry.Vec3{X: 2.5, Y: 0, Z: 0.4}, Rotation: geometry.Vec3{X: -math.Pi / 2}, Color: mark("#57534e", identified), Opacity: 0.8},
		{Kind: "fallen-post", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0.6, Y: 0.08, Z: 0.4}), Size: geometry.Vec3{X: 0.06, Y: 1.2, Z: 0.06}, Rotation: geometry.Vec3{X: 0, Y: 0, Z: math.Pi / 2}, Color: mark("#f97316", identified)},
		{Kind: "fallen-sign", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: -0.4, Y: 0.02, Z: 0.2}), Size: geometry.Vec3{X: 0.5, Y: 0.35, Z: 0.02}, Rotation: geometry.Vec3{X: -math.Pi / 2, Y: 0, Z: -0.4}, Color: mark("#fbbf24", identified)},
	}
	return ps, Hitbox{Center: at.Add(geometry.Vec3{Y: 0.3}), Radius: 1.2}
}

func buildSafetyShower(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	ps := []geometry.Primitive{
		{Kind: "shower-post", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0, Y: 1.1, Z: 0}), Size: geometry.Vec3{X: 0.06, Y: 2.2, Z: 0.06}, Color: "#16a34a"},
		{Kind: "shower-head", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0, Y: 2.2, Z: 0.25}), Size: geometry.Vec3{X: 0.25, Y: 0.08, Z: 0.25}, Color: "#16a34a"},
		{Kind: "pull-handle", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0.15, Y: 1.7, Z: 0}), Size: geometry.Vec3{X: 0.25, Y: 0.04, Z: 0.04}, Color: "#d1d5db"},
		// Obstruction in the access zone.
		{Kind: "blocking-box", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0.2, Y: 0.3, Z: 0.5}), Size: geometry.Vec3{X: 0.7, Y: 0.6, Z: 0.6}, Color: mark("#b45309", identified)},
		{Kind: "blocking-box", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: -0.3, Y: 0.25, Z: 0.4}), Size: geometry.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Color: mark("#92400e", identified)},
	}
	return ps, Hitbox{Center: at.Add(geometry.Vec3{Y: 0.6}), Radius: 1.2}
}

func buildFire(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	ps := []geometry.Primitive{
		{Kind: "extinguisher", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0, Y: 0.5, Z: -0.15}), Size: geometry.Vec3{X: 0.1, Y: 0.5, Z: 0.1}, Color: "#dc2626"},
		{Kind: "extinguisher-hose", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0, Y: 0.8, Z: -0.1}), Size: geometry.Vec3{X: 0.03, Y: 0.15, Z: 0.03}, Rotation: geometry.Vec3{X: 0.3, Y: 0, Z: 0}, Color: "#1f2937"},
		{Kind: "wall-mount", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0, Y: 0.5, Z: -0.2}), Size: geometry.Vec3{X: 0.3, Y: 0.4, Z: 0.05}, Color: "#dc2626"},
		{Kind: "blocking-barrel", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: -0.4, Y: 0.4, Z: 0.4}), Size: geometry.Vec3{X: 0.3, Y: 0.8, Z: 0.3}, Color: mark("#3b82f6", identified)},
		{Kind: "blocking-barrel", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0.4, Y: 0.4, Z: 0.5}), Size: geometry.Vec3{X: 0.3, Y: 0.8, Z: 0.3}, Color: mark("#3b82f6", identified)},
	}
	return ps, Hitbox{Center: at.Add(geometry.Vec3{Y: 0.5, Z: 0.3}), Radius: 1.1}
}

func buildElectrical(p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	yaw := p.Yaw
	ps := []geometry.Primitive{
		{Kind: "panel", Shape: geometry.ShapeBox, Position: offset(at, yaw, 0, 0.4, 0), Size: geometry.Vec3{X: 0.6, Y: 0.8, Z: 0.15}, Rotation: geometry.Vec3{X: 0, Y: yaw, Z: 0}, Color: "#374151"},
		{Kind: "wire", Shape: geometry.ShapeCylinder, Position: offset(at, yaw, 0.1, 0.1, 0.1), Size: geometry.Vec3{X: 0.02, Y: 0.4, Z: 0.02}, Rotation: geometry.Vec3{X: 0.5, Y: yaw, Z: 0.3}, Color: mark("#f97316", identified)},
		{Kind: "wire", Shape: geometry.ShapeCylinder, Position: offset(at, yaw, -0.1, 0.15, 0.12), Size: geometry.Vec3{X: 0.02, Y: 0.35, Z: 0.02}, Rotation: geometry.Vec3{X: 0.3, Y: yaw, Z: -0.4}, Color: mark("#3b82f6", identified)},
		{Kind: "wire", Shape: geometry.ShapeCylinder, Position: offset(at, yaw, 0, 0.05, 0.1), Size: geometry.Vec3{X: 0.02, Y: 0.3, Z: 0.02}, Rotation: geometry.Vec3{X: 0.7, Y: yaw, Z: 0}, Color: "#22c55e"},
	}
	if !identified {
		ps = append(ps, geometry.Primitive{Kind: "spark-light", Shape: geometry.ShapeLight, Position: offset(at, yaw, 0, 0.1, 0.15), Color: "#60a5fa", Intensity: 0, Range: 2})
	}
	return ps, Hitbox{Center: offset(at, yaw, 0, 0.4, 0.1), Radius: 0.9}
}

func buildChemical(h safety.Hazard, p Placement, identified bool) ([]geometry.Primitive, Hitbox) {
	at := p.Position
	size := h.Size
	if size == 0 {
		size = defaultChemicalSize
	}
	ps := []geometry.Primitive{
		{Kind: "leaking-drum", Shape: geometry.ShapeCylinder, Position: at.Add(geometry.Vec3{X: 0, Y: 0.45, Z: 0}), Size: geometry.Vec3{X: 0.35, Y: 0.9, Z: 0.35}, Rotation: geometry.Vec3{X: 0.15, Y: 0, Z: 0.1}, Color: mark("#dc2626", identified)},
		{Kind: "hazmat-label", Shape: geometry.ShapeBox, Position: at.Add(geometry.Vec3{X: 0, Y: 0.5, Z: 0.36}), Size: geometry.Vec3{X: 0.15, Y: 0.15, Z: 0.01}, Rotation: geometry.Vec3{X: 0.15, Y: 0, Z: 0.1}, Color: "#fbbf24"},
		{Kind: "chemical-pool", Shape: geometry.ShapeDisc, Position: at.Add(geometry.Vec3{X: 0.5, Y: 0.01, Z: 0.5}), Size: geometry.Vec3{X: size}, Rotation: geometry.Vec3{X: -math.Pi / 2}, Color: "#22c55e", Opacity: 0.6, Emissive: 0.3},
	}
	return ps, Hitbox{Center: at.Add(geometry.Vec3{X: 0.3, Y: 0.4, Z: 0.3}), Radius: size}
}

// offset rotates a local-frame offset by yaw around Y and adds it to at.
func offset(at geometry.Vec3, yaw, x, y, z float64) geometry.Vec3 {
	sin, cos := math.Sin(yaw), math.Cos(yaw)
	return geometry.Vec3{
		X: at.X + x*cos + z*sin,
		Y: at.Y + y,
		Z: at.Z - x*sin + z*cos,
	}
}
