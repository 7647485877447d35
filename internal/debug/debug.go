package debug

import (
	"fmt"
	"runtime"

	"meadow/internal/app"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the on-screen overlays. All overlays are off by default.
type Debug struct {
	ShowFPS   bool
	ShowStats bool

	frameCount uint32
	fpsText    string
	memText    string
	statsLines []string
	memStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders enabled overlays for a. Call after the scene in the draw loop.
// FPS and heap size go top-right in green; world stats, camera and player state top-left.
func (d *Debug) Draw(a *app.App) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.fpsText == "") || (d.ShowStats && d.statsLines == nil) {
		update = true
	}

	if d.ShowFPS {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		screenW := int32(rl.GetScreenWidth())
		y := int32(padding)
		for _, text := range []string{d.fpsText, d.memText} {
			w := rl.MeasureText(text, fontSize)
			rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
			y += lineHeight
		}
	}

	if d.ShowStats {
		if update {
			d.statsLines = statsLines(a)
		}
		y := int32(padding)
		for _, line := range d.statsLines {
			rl.DrawText(line, padding, y, fontSize, rl.DarkGray)
			y += lineHeight
		}
	}
}

func statsLines(a *app.App) []string {
	p := a.Player.Pose
	lines := []string{
		fmt.Sprintf("Seed %d: %d/%d placed (%d trees, %d rocks, %d flowers)",
			a.Seed(), a.Stats.Placed, a.Stats.Attempts, a.Stats.Trees, a.Stats.Rocks, a.Stats.Flowers),
		fmt.Sprintf("Player: (%.1f, %.1f) facing %.2f rad", p.Position.X, p.Position.Z, p.Facing),
		fmt.Sprintf("Camera: %s, zoom %.2f", a.Camera.Mode(), a.Camera.Zoom()),
	}
	if a.Log != nil {
		if last := a.Log.Last(); last != "" {
			lines = append(lines, last)
		}
	}
	return lines
}
