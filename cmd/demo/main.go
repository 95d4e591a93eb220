package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"hexisland/config"
	"hexisland/core/window"
	"hexisland/renderer"
	"hexisland/scene"
)

// demo is one of the runnable scenes.
type demo interface {
	// Setup populates the scene from cfg.
	Setup(cfg config.Config) error
	// Reconfigure rebuilds after the config file changed.
	Reconfigure(cfg config.Config) error
	Update(dt float32)
	Emitters() []*scene.ParticleEmitter
}

// app is the state shared by every demo.
type app struct {
	window *window.Window
	engine *renderer.RenderEngine
	scene  *scene.Scene
}

func newDemo(name string, a *app) (demo, error) {
	switch name {
	case "island":
		return &islandDemo{app: a}, nil
	case "heightmap":
		return &heightmapDemo{app: a}, nil
	case "globe":
		return &globeDemo{app: a}, nil
	case "fire":
		return &fireDemo{app: a}, nil
	}
	return nil, fmt.Errorf("unknown demo %q (want island, heightmap, globe or fire)", name)
}

// orbitControls turns left-drag into camera orbit and scroll into zoom.
type orbitControls struct {
	lastX, lastY float64
	dragging     bool
}

const (
	orbitSpeed = 0.005 // radians per pixel
	zoomSpeed  = 2.0   // world units per scroll notch
)

func (o *orbitControls) update(w *window.Window, cam *scene.OrbitCamera) {
	x, y := w.GetCursorPos()
	if w.IsMouseButtonPressed(window.MouseLeft) {
		if o.dragging {
			cam.Orbit(-float32(x-o.lastX)*orbitSpeed, float32(y-o.lastY)*orbitSpeed)
		}
		o.dragging = true
	} else {
		o.dragging = false
	}
	o.lastX, o.lastY = x, y

	if s := w.TakeScroll(); s != 0 {
		cam.Zoom(-float32(s) * zoomSpeed)
	}
}

func main() {
	configPath := flag.String("config", "", "TOML config file; edits are picked up live")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: demo [-config file.toml] [island|heightmap|globe|fire]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	name := "island"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}

	if err := run(name, *configPath); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(name, configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	fmt.Printf("Starting %s demo...\n", name)

	windowConfig := cfg.Window
	windowConfig.Title = fmt.Sprintf("%s - %s", cfg.Window.Title, name)

	win, err := window.New(windowConfig)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	engine, err := renderer.NewRenderEngine(win)
	if err != nil {
		return fmt.Errorf("create render engine: %w", err)
	}
	defer engine.Destroy()

	a := &app{window: win, engine: engine, scene: scene.NewScene()}
	d, err := newDemo(name, a)
	if err != nil {
		return err
	}
	if err := d.Setup(cfg); err != nil {
		return fmt.Errorf("%s setup: %w", name, err)
	}
	engine.SetScene(a.scene)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes <-chan struct{}
	if configPath != "" {
		changes, err = config.Watch(ctx, configPath)
		if err != nil {
			fmt.Printf("[Config] watch disabled: %v\n", err)
		} else {
			fmt.Printf("[Config] watching %s\n", configPath)
		}
	}

	var controls orbitControls
	width, height := win.Width, win.Height
	lastTime := time.Now()
	frames, fpsTimer := 0, float32(0)

	for !win.ShouldClose() {
		win.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if win.IsKeyPressed(window.KeyEscape) {
			break
		}

		select {
		case _, ok := <-changes:
			if !ok {
				changes = nil
				break
			}
			next, err := config.Load(configPath)
			if err != nil {
				fmt.Printf("[Config] reload failed, keeping previous settings: %v\n", err)
				break
			}
			if err := d.Reconfigure(next); err != nil {
				fmt.Printf("[Config] apply failed: %v\n", err)
				break
			}
			fmt.Println("[Config] reloaded")
		default:
		}

		if win.Width != width || win.Height != height {
			width, height = win.Width, win.Height
			engine.Resize(width, height)
		}

		controls.update(win, a.scene.Camera)
		d.Update(dt)

		if err := engine.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		for _, e := range d.Emitters() {
			engine.DrawEmitter(e)
		}
		engine.Present()

		frames++
		fpsTimer += dt
		if fpsTimer >= 1 {
			objects, vertices, triangles, resident := engine.DrawStats()
			win.SetTitle(fmt.Sprintf("%s | %d fps | %d objects, %d verts, %d tris, %d on GPU",
				windowConfig.Title, frames, objects, vertices, triangles, resident))
			frames, fpsTimer = 0, 0
		}
	}

	fmt.Println("Shutting down...")
	return nil
}
