// Command uiquads shows two independent world-space UI surfaces, each
// with its own texture, virtual pointer, and button. Clicking one
// never affects the other.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/diegetic/demo"
	"github.com/lixenwraith/diegetic/vmath"
)

func main() {
	cfg, err := demo.Load("uiquads.toml", demo.DefaultConfig("ui on two quads"))
	if err != nil {
		log.Fatal(err)
	}

	host, err := demo.NewHost(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Two quads angled toward the camera, left and right of center
	size := vmath.Scaling(vmath.V3(3, 1.5, 1))
	left := vmath.Translation(vmath.V3(-2, 0, 0)).Mul(vmath.RotationY(0.4)).Mul(size)
	right := vmath.Translation(vmath.V3(2, 0, 0)).Mul(vmath.RotationY(-0.4)).Mul(size)

	if _, err := host.AddPanel(1, left, "port"); err != nil {
		log.Fatal(err)
	}
	if _, err := host.AddPanel(2, right, "starboard"); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}
}
