// Package world scatters trees, rocks and flowers across the square meadow while keeping
// the central path clear.
package world

import (
	"math"
	"strconv"

	"meadow/internal/assets"
	"meadow/internal/config"
	"meadow/internal/geom"
	"meadow/internal/logger"

	"github.com/chewxy/math32"
)

// Kind thresholds against one uniform draw: [0, 0.5) tree, [0.5, 0.8) rock, [0.8, 1) flower.
const (
	treeThreshold = 0.5
	rockThreshold = 0.8
)

// Stats describes one population run. Placed is usually below Attempts because samples
// inside the path corridor are dropped, not retried.
type Stats struct {
	Attempts int
	Placed   int
	Rejected int
	Trees    int
	Rocks    int
	Flowers  int
}

// AssetCount is the number of placement attempts for a square world: floor(size² × density).
func AssetCount(size, density float32) int {
	if size <= 0 || density <= 0 {
		return 0
	}
	// Widen through the shortest decimal form so 0.08 stays 0.08 rather than 0.0799999982.
	s, d := widen(size), widen(density)
	return int(math.Floor(s * s * d))
}

func widen(f float32) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return v
}

// InPath reports whether a ground position falls inside the corridor that runs along X.
func InPath(pos geom.Vec3, clearance float32) bool {
	return math32.Abs(pos.Z) < clearance
}

// Populate makes AssetCount attempts at uniform positions in the square of side cfg.Size
// centred on the origin and builds an asset for each one outside the path corridor.
// log may be nil.
func Populate(rng assets.Rand, cfg config.World, log *logger.Logger) ([]assets.Asset, Stats) {
	stats := Stats{Attempts: AssetCount(cfg.Size, cfg.Density)}
	if log != nil {
		log.Logf("Attempting to place %d assets...", stats.Attempts)
	}

	placed := make([]assets.Asset, 0, stats.Attempts)
	for i := 0; i < stats.Attempts; i++ {
		x := (rng.Float32() - 0.5) * cfg.Size
		z := (rng.Float32() - 0.5) * cfg.Size
		pos := geom.V(x, 0, z)
		if InPath(pos, cfg.PathClearance) {
			stats.Rejected++
			continue
		}

		var a assets.Asset
		switch kind := rng.Float32(); {
		case kind < treeThreshold:
			a = assets.NewTree(rng, pos)
			stats.Trees++
		case kind < rockThreshold:
			a = assets.NewRock(rng, pos)
			stats.Rocks++
		default:
			a = assets.NewFlower(rng, pos)
			stats.Flowers++
		}
		placed = append(placed, a)
	}
	stats.Placed = len(placed)

	if log != nil {
		log.Logf("Placed %d assets.", stats.Placed)
	}
	return placed, stats
}
