package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/wareguard/hazardhunt/internal/safety"
)

func countKind(ps []Primitive, kind string) int {
	n := 0
	for _, p := range ps {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func TestBuildUnknownArchetype(t *testing.T) {
	_, err := Build("office", rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrUnknownSceneType) {
		t.Fatalf("Build(office) error = %v, want ErrUnknownSceneType", err)
	}
}

func TestBuildSharedStructure(t *testing.T) {
	for _, a := range []safety.Archetype{safety.ArchetypeStorage, safety.ArchetypeLoading, safety.ArchetypeChemical} {
		t.Run(string(a), func(t *testing.T) {
			ps, err := Build(a, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("Build(%s): %v", a, err)
			}

			if got := countKind(ps, "wall"); got != 4 {
				t.Errorf("walls = %d, want 4", got)
			}
			if got := countKind(ps, "floor"); got != 1 {
				t.Errorf("floors = %d, want 1", got)
			}
			if got := countKind(ps, "ceiling"); got != 1 {
				t.Errorf("ceilings = %d, want 1", got)
			}
			if got := countKind(ps, "pillar"); got != 4 {
				t.Errorf("pillars = %d, want 4", got)
			}
			if got := countKind(ps, "rafter"); got != 10 {
				t.Errorf("rafters = %d, want 10", got)
			}
			if got := countKind(ps, "light-point"); got != 9 {
				t.Errorf("ceiling lights = %d, want 9", got)
			}
		})
	}
}

func TestBuildArchetypeFurniture(t *testing.T) {
	tests := []struct {
		archetype safety.Archetype
		kind      string
		want      int
	}{
		{safety.ArchetypeStorage, "pallet-base", 3},
		{safety.ArchetypeStorage, "safety-cabinet", 1},
		{safety.ArchetypeLoading, "dock-panel", 3},
		{safety.ArchetypeLoading, "pallet-base", 4},
		{safety.ArchetypeLoading, "forklift-body", 1},
		{safety.ArchetypeChemical, "barrel", 6},
		{safety.ArchetypeChemical, "safety-cabinet", 2},
		{safety.ArchetypeChemical, "floor-stripe", 2},
	}

	for _, tt := range tests {
		ps, err := Build(tt.archetype, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("Build(%s): %v", tt.archetype, err)
		}
		if got := countKind(ps, tt.kind); got != tt.want {
			t.Errorf("%s: %s = %d, want %d", tt.archetype, tt.kind, got, tt.want)
		}
	}
}

func TestBuildShelfCounts(t *testing.T) {
	// Six racks in storage, two in loading and chemical: four posts each.
	wantPosts := map[safety.Archetype]int{
		safety.ArchetypeStorage:  24,
		safety.ArchetypeLoading:  8,
		safety.ArchetypeChemical: 8,
	}
	for a, want := range wantPosts {
		ps, err := Build(a, rand.New(rand.NewSource(3)))
		if err != nil {
			t.Fatalf("Build(%s): %v", a, err)
		}
		if got := countKind(ps, "shelf-post"); got != want {
			t.Errorf("%s: shelf posts = %d, want %d", a, got, want)
		}
	}
}

func TestBuildWithinRoomBounds(t *testing.T) {
	for _, a := range []safety.Archetype{safety.ArchetypeStorage, safety.ArchetypeLoading, safety.ArchetypeChemical} {
		ps, err := Build(a, rand.New(rand.NewSource(11)))
		if err != nil {
			t.Fatalf("Build(%s): %v", a, err)
		}
		for _, p := range ps {
			if math.Abs(p.Position.X) > RoomExtent+0.5 || math.Abs(p.Position.Z) > RoomExtent+0.5 {
				t.Errorf("%s: %s at (%.2f, %.2f) outside room", a, p.Kind, p.Position.X, p.Position.Z)
			}
			if p.Position.Y < -0.1 || p.Position.Y > WallHeight+0.1 {
				t.Errorf("%s: %s at y=%.2f outside room height", a, p.Kind, p.Position.Y)
			}
		}
	}
}

func TestBuildDeterministicForSeed(t *testing.T) {
	a, err := Build(safety.ArchetypeStorage, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(safety.ArchetypeStorage, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("primitive counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("primitive %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
