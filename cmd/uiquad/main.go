// Command uiquad shows a single world-space UI surface: a quad in 3D
// with a clickable button rendered on its texture.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/diegetic/demo"
	"github.com/lixenwraith/diegetic/vmath"
)

func main() {
	cfg, err := demo.Load("uiquad.toml", demo.DefaultConfig("ui on a quad"))
	if err != nil {
		log.Fatal(err)
	}

	host, err := demo.NewHost(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// One 4x2 unit quad facing the camera
	transform := vmath.Scaling(vmath.V3(4, 2, 1))
	if _, err := host.AddPanel(1, transform, "launch"); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}
}
