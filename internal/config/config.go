package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"meadow/internal/palette"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/meadow.yaml"

// Config is everything the meadow reads at startup. Fields missing from the YAML file keep their defaults.
type Config struct {
	Window Window `yaml:"window"`
	World  World  `yaml:"world"`
	Player Player `yaml:"player"`
	Camera Camera `yaml:"camera"`
	Colors Colors `yaml:"colors"`
	Debug  Debug  `yaml:"debug"`
}

// Window controls the raylib window. TargetFPS 0 leaves pacing to vsync.
type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	MSAA      bool   `yaml:"msaa"`
}

// World controls procedural placement. Seed 0 uses a time-based seed.
type World struct {
	Size          float32 `yaml:"size"`
	Density       float32 `yaml:"density"`
	PathClearance float32 `yaml:"path_clearance"`
	PathWidth     float32 `yaml:"path_width"`
	Seed          int64   `yaml:"seed"`
}

type Player struct {
	MoveSpeed float32    `yaml:"move_speed"`
	Start     [3]float32 `yaml:"start"`
}

// Camera holds the orthographic orbit rig settings.
// FrustumSize is the vertical extent of the view at zoom 1.
type Camera struct {
	FrustumSize     float32    `yaml:"frustum_size"`
	Position        [3]float32 `yaml:"position"`
	Target          [3]float32 `yaml:"target"`
	MinZoom         float32    `yaml:"min_zoom"`
	MaxZoom         float32    `yaml:"max_zoom"`
	RotateSpeed     float32    `yaml:"rotate_speed"`
	WheelZoomFactor float32    `yaml:"wheel_zoom_factor"`
}

// Colors are CSS colour names or #RRGGBB.
type Colors struct {
	Sky    string `yaml:"sky"`
	Ground string `yaml:"ground"`
	Path   string `yaml:"path"`
}

// Debug holds overlay toggles.
type Debug struct {
	ShowFPS     bool `yaml:"show_fps"`
	ShowStats   bool `yaml:"show_stats"`
	GridVisible bool `yaml:"grid_visible"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "meadow",
			Width:     1280,
			Height:    720,
			TargetFPS: 0,
			MSAA:      true,
		},
		World: World{
			Size:          150,
			Density:       0.08,
			PathClearance: 3.0,
			PathWidth:     3.0,
			Seed:          0,
		},
		Player: Player{
			MoveSpeed: 5,
			Start:     [3]float32{0, 0.75, 0},
		},
		Camera: Camera{
			FrustumSize:     25,
			Position:        [3]float32{15, 15, 15},
			Target:          [3]float32{0, 0, 0},
			MinZoom:         0.3,
			MaxZoom:         5.0,
			RotateSpeed:     0.005,
			WheelZoomFactor: 0.001,
		},
		Colors: Colors{
			Sky:    "skyblue",
			Ground: "lightgreen",
			Path:   "tan",
		},
		Debug: Debug{
			ShowFPS:     false,
			ShowStats:   false,
			GridVisible: false,
		},
	}
}

// Load reads the YAML config at path on top of Default(). A missing file is not an error.
// If the file is malformed or fails validation, Default() is returned together with the error
// so the caller can log it and keep running.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err = parse(path, data)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Reload re-reads path for a running process. Any failure, including a missing file
// mid-save, returns current unchanged together with the error.
func Reload(path string, current Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return current, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(path, data)
	if err != nil {
		return current, err
	}
	return cfg, nil
}

// parse decodes data on top of Default() and validates the result.
func parse(path string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that cannot produce a usable scene.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.World.Size <= 0:
		return fmt.Errorf("world.size must be positive, got %v", c.World.Size)
	case c.World.Density < 0:
		return fmt.Errorf("world.density must not be negative, got %v", c.World.Density)
	case c.World.PathClearance < 0 || c.World.PathWidth < 0:
		return errors.New("world path settings must not be negative")
	case c.Player.MoveSpeed < 0:
		return fmt.Errorf("player.move_speed must not be negative, got %v", c.Player.MoveSpeed)
	case c.Camera.FrustumSize <= 0:
		return fmt.Errorf("camera.frustum_size must be positive, got %v", c.Camera.FrustumSize)
	case c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom:
		return fmt.Errorf("camera zoom range [%v, %v] is invalid", c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.Position == c.Camera.Target:
		return errors.New("camera.position must differ from camera.target")
	}
	colors := []struct{ name, value string }{
		{"sky", c.Colors.Sky},
		{"ground", c.Colors.Ground},
		{"path", c.Colors.Path},
	}
	for _, col := range colors {
		if _, ok := palette.Parse(col.value); !ok {
			return fmt.Errorf("colors.%s: unknown colour %q", col.name, col.value)
		}
	}
	return nil
}
