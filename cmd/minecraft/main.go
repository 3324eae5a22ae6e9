package main

import (
	"log"
	"math"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Jax-Hax/Minecraft-Clone/internal/camera"
	"github.com/Jax-Hax/Minecraft-Clone/internal/config"
	"github.com/Jax-Hax/Minecraft-Clone/internal/mesh"
	"github.com/Jax-Hax/Minecraft-Clone/internal/player"
	"github.com/Jax-Hax/Minecraft-Clone/internal/render"
	"github.com/Jax-Hax/Minecraft-Clone/internal/terrain"
	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	monitor := glfw.GetPrimaryMonitor()
	var fullscreenOn *glfw.Monitor
	width, height := cfg.Window.Width, cfg.Window.Height
	if cfg.Window.Fullscreen {
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
		fullscreenOn = monitor
	}
	window, err := glfw.CreateWindow(width, height, "Minecraft Clone", fullscreenOn, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.Vsync {
		glfw.SwapInterval(1)
	}

	renderer, err := render.New(cfg.Assets.Atlas)
	if err != nil {
		log.Fatalf("init renderer: %v", err)
	}

	sampler, err := terrain.NewSampler(cfg.World.Noise, cfg.World.Seed)
	if err != nil {
		log.Fatalf("init terrain: %v", err)
	}
	gen := terrain.NewGenerator(sampler, cfg.World.NoiseScale)

	start := time.Now()
	grid := world.NewGrid()
	if err := grid.Generate(gen); err != nil {
		log.Fatalf("generate world: %v", err)
	}
	err = grid.BuildMeshes(func(i int, blocks *world.BlockGrid, nb world.Neighbors) (world.Mesh, error) {
		row, col := world.WorldOffset(i)
		d, err := mesh.BuildChunk(blocks, float32(row), float32(col), nb)
		if err != nil {
			return nil, err
		}
		return renderer.Upload(d)
	})
	if err != nil {
		log.Fatalf("build world meshes: %v", err)
	}
	log.Printf("world ready in %.2fs", time.Since(start).Seconds())

	var hud *render.HUD
	if cfg.Debug.HUD {
		hud, err = render.NewHUD(cfg.Assets.Font)
		if err != nil {
			log.Printf("hud disabled: %v", err)
			hud = nil
		}
	}

	cam := &camera.Camera{Yaw: -float32(math.Pi / 2)}
	proj := camera.NewProjection(width, height)
	ctl := player.New(cfg.Player.Speed, cfg.Player.Sensitivity, cfg.Player.FallSpeed)

	a := &app{
		window:   window,
		monitor:  monitor,
		cfg:      cfg,
		grid:     grid,
		renderer: renderer,
		hud:      hud,
		cam:      cam,
		proj:     proj,
		player:   ctl,
		showHUD:  cfg.Debug.HUD,
	}
	a.run()
}
