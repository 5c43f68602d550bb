// Package demo hosts the example applications: an Ebiten window, a
// software-projected scene camera, and panels that bind UI surfaces to
// offscreen textures with a clickable button each.
package demo

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type UIConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type CameraConfig struct {
	FOVDegrees float32    `toml:"fov_degrees"`
	Eye        [3]float32 `toml:"eye"`
}

type Config struct {
	Window WindowConfig `toml:"window"`
	UI     UIConfig     `toml:"ui"`
	Camera CameraConfig `toml:"camera"`
}

func DefaultConfig(title string) Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: title},
		UI:     UIConfig{Width: 512, Height: 256},
		Camera: CameraConfig{FOVDegrees: 45, Eye: [3]float32{0, 1.5, 6}},
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error; the defaults apply as-is.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
