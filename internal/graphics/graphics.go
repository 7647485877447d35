package graphics

import (
	"image/color"

	"meadow/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and runs the main loop until it is closed. Each frame it calls update
// with the previous frame's duration in seconds, then clears to clear and calls draw.
// Pacing follows vsync; TargetFPS caps it further when set.
// onClose runs after the loop ends but before the window and GL context are destroyed.
func Run(cfg config.Window, clear color.RGBA, update func(dt float32), draw func(), onClose ...func()) {
	flags := uint32(rl.FlagVsyncHint | rl.FlagWindowResizable)
	if cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(clear)
		draw()
		rl.EndDrawing()
	}
	for _, fn := range onClose {
		fn()
	}
}
