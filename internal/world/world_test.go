package world

import (
	"math/rand"
	"strings"
	"testing"

	"meadow/internal/assets"
	"meadow/internal/config"
	"meadow/internal/geom"
	"meadow/internal/logger"

	"github.com/chewxy/math32"
)

// seq returns its values in order, repeating the last one when exhausted.
type seq struct {
	vals []float32
	i    int
}

func (s *seq) Float32() float32 {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v
}

func worldOf(size float32) config.World {
	w := config.Default().World
	w.Size = size
	return w
}

func TestAssetCount(t *testing.T) {
	cases := []struct {
		size    float32
		density float32
		want    int
	}{
		{150, 0.08, 1800},
		{50, 0.08, 200},
		{10, 0.08, 8},
		{3, 0.08, 0},
		{7, 0.08, 3},
		{0, 0.08, 0},
		{100, 0, 0},
	}
	for _, c := range cases {
		if got := AssetCount(c.size, c.density); got != c.want {
			t.Errorf("AssetCount(%v, %v): expected %d, got %d", c.size, c.density, c.want, got)
		}
	}
}

func TestPopulateKeepsPathClear(t *testing.T) {
	for _, size := range []float32{10, 50, 150} {
		rng := rand.New(rand.NewSource(int64(size)))
		placed, stats := Populate(rng, worldOf(size), nil)

		if stats.Attempts != AssetCount(size, 0.08) {
			t.Fatalf("size %v: expected %d attempts, got %d", size, AssetCount(size, 0.08), stats.Attempts)
		}
		if len(placed) != stats.Placed || stats.Placed > stats.Attempts {
			t.Fatalf("size %v: placed %d of %d attempts", size, stats.Placed, stats.Attempts)
		}
		if stats.Placed+stats.Rejected != stats.Attempts {
			t.Fatalf("size %v: placed + rejected must equal attempts", size)
		}
		if stats.Trees+stats.Rocks+stats.Flowers != stats.Placed {
			t.Fatalf("size %v: kind counts do not add up", size)
		}
		half := size / 2
		for _, a := range placed {
			if math32.Abs(a.Position.Z) < 3.0 {
				t.Fatalf("asset at %v is inside the path corridor", a.Position)
			}
			if math32.Abs(a.Position.X) > half || math32.Abs(a.Position.Z) > half {
				t.Fatalf("asset at %v is outside the world", a.Position)
			}
			if a.Position.Y != 0 {
				t.Fatalf("asset at %v is not on the ground", a.Position)
			}
		}
	}
}

func TestPopulateRejectionRate(t *testing.T) {
	// 150-unit world, clearance 3 on both sides: about 6/150 = 4% of samples land on the path.
	rng := rand.New(rand.NewSource(99))
	_, stats := Populate(rng, worldOf(150), nil)
	rate := float64(stats.Rejected) / float64(stats.Attempts)
	if rate < 0.02 || rate > 0.06 {
		t.Fatalf("expected roughly 4%% rejections, got %.3f", rate)
	}
}

func TestPopulateKindSplit(t *testing.T) {
	cases := []struct {
		name string
		draw float32
		want assets.Kind
	}{
		{"tree_low", 0, assets.KindTree},
		{"tree_high", 0.49, assets.KindTree},
		{"rock_low", 0.5, assets.KindRock},
		{"rock_high", 0.79, assets.KindRock},
		{"flower", 0.8, assets.KindFlower},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// x=0.9, z=0.9 lands well outside the path on a 10-unit world (8 attempts);
			// the remaining draws feed the kind choice and the factory.
			rng := &seq{vals: []float32{0.9, 0.9, c.draw, 0.5}}
			placed, stats := Populate(rng, worldOf(10), nil)
			if stats.Attempts != 8 || len(placed) == 0 {
				t.Fatalf("expected placements, got %+v", stats)
			}
			if placed[0].Kind != c.want {
				t.Fatalf("expected %v, got %v", c.want, placed[0].Kind)
			}
			if !placed[0].Position.ApproxEqual(geom.V(4, 0, 4), 1e-5) {
				t.Fatalf("expected position (4,0,4), got %v", placed[0].Position)
			}
		})
	}
}

func TestPopulateRejectsWithoutRetry(t *testing.T) {
	// Every sample lands on z=0, so nothing is placed and no extra attempts are made.
	rng := &seq{vals: []float32{0.5}}
	placed, stats := Populate(rng, worldOf(50), nil)
	if len(placed) != 0 || stats.Rejected != stats.Attempts || stats.Attempts != 200 {
		t.Fatalf("expected all 200 attempts rejected, got %+v", stats)
	}
	if rng.i != 2*stats.Attempts {
		t.Fatalf("expected exactly two draws per rejected attempt, got %d", rng.i)
	}
}

func TestPopulateLogs(t *testing.T) {
	log := logger.New("")
	rng := rand.New(rand.NewSource(3))
	_, stats := Populate(rng, worldOf(20), log)
	lines := log.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected two log lines, got %v", lines)
	}
	if !strings.HasSuffix(lines[0], "Attempting to place 32 assets...") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if stats.Attempts != 32 {
		t.Fatalf("expected 32 attempts, got %d", stats.Attempts)
	}
}
