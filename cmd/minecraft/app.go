package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Jax-Hax/Minecraft-Clone/internal/camera"
	"github.com/Jax-Hax/Minecraft-Clone/internal/config"
	"github.com/Jax-Hax/Minecraft-Clone/internal/player"
	"github.com/Jax-Hax/Minecraft-Clone/internal/render"
	"github.com/Jax-Hax/Minecraft-Clone/internal/world"
)

// app ties the window, world and player together for the frame loop.
type app struct {
	window   *glfw.Window
	monitor  *glfw.Monitor
	cfg      config.Config
	grid     *world.Grid
	renderer *render.Renderer
	hud      *render.HUD
	cam      *camera.Camera
	proj     camera.Projection
	player   *player.Controller

	showHUD    bool
	fullscreen bool

	lastX      float64
	lastY      float64
	firstMouse bool

	frameCount int
	fpsStart   time.Time
	fps        float64
	fpsLogged  time.Time
}

var movementKeys = map[glfw.Key]player.Key{
	glfw.KeyW:     player.KeyForward,
	glfw.KeyUp:    player.KeyForward,
	glfw.KeyS:     player.KeyBackward,
	glfw.KeyDown:  player.KeyBackward,
	glfw.KeyA:     player.KeyLeft,
	glfw.KeyLeft:  player.KeyLeft,
	glfw.KeyD:     player.KeyRight,
	glfw.KeyRight: player.KeyRight,
}

func (a *app) installCallbacks() {
	a.window.SetKeyCallback(a.onKey)
	a.window.SetCursorPosCallback(a.onCursorPos)
	a.window.SetFramebufferSizeCallback(a.onResize)
}

func (a *app) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	if k, ok := movementKeys[key]; ok {
		a.player.ProcessKey(k, action == glfw.Press)
		return
	}
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeySpace:
		a.player.ProcessKey(player.KeyJump, true)
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyF3:
		a.showHUD = !a.showHUD
	case glfw.KeyF11:
		a.toggleFullscreen()
	}
}

func (a *app) toggleFullscreen() {
	mode := a.monitor.GetVideoMode()
	if !a.fullscreen {
		a.window.SetMonitor(a.monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		w, h := a.cfg.Window.Width, a.cfg.Window.Height
		a.window.SetMonitor(nil, (mode.Width-w)/2, (mode.Height-h)/2, w, h, 0)
	}
	a.fullscreen = !a.fullscreen
}

func (a *app) onCursorPos(w *glfw.Window, xPos, yPos float64) {
	if a.firstMouse {
		a.lastX = xPos
		a.lastY = yPos
		a.firstMouse = false
	}
	a.player.ProcessMouse(xPos-a.lastX, yPos-a.lastY)
	a.lastX = xPos
	a.lastY = yPos
}

func (a *app) onResize(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	a.proj.Resize(width, height)
}

func (a *app) updateFPS() {
	a.frameCount++
	elapsed := time.Since(a.fpsStart)
	if elapsed >= 100*time.Millisecond {
		a.fps = float64(a.frameCount) / elapsed.Seconds()
		a.frameCount = 0
		a.fpsStart = time.Now()
	}
	if time.Since(a.fpsLogged) >= 5*time.Second {
		log.Printf("fps: %.1f", a.fps)
		a.fpsLogged = time.Now()
	}
}

func (a *app) hudLines() []string {
	pos := a.cam.Position
	wp := a.player.WorldPos()
	return []string{
		fmt.Sprintf("FPS: %.1f", a.fps),
		fmt.Sprintf("Pos: %.2f, %.2f, %.2f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("Block: %d, %d, %d", wp[0], wp[1], wp[2]),
	}
}

func (a *app) run() {
	a.firstMouse = true
	a.fpsStart = time.Now()
	a.fpsLogged = time.Now()
	a.installCallbacks()
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	meshes := a.grid.Meshes()
	previous := time.Now()
	for !a.window.ShouldClose() {
		glfw.PollEvents()
		dt := float32(time.Since(previous).Seconds())
		previous = time.Now()

		if err := a.player.Update(a.cam, dt, a.grid); err != nil {
			log.Fatalf("update player: %v", err)
		}
		a.updateFPS()

		gl.ClearColor(0.1, 0.2, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		viewProj := a.proj.Matrix().Mul4(a.cam.ViewMatrix())
		a.renderer.Draw(viewProj, a.cam.Position.Vec4(1), meshes)

		if a.hud != nil && a.showHUD {
			if err := a.hud.SetText(a.hudLines()); err != nil {
				log.Printf("hud: %v", err)
			}
			w, h := a.window.GetFramebufferSize()
			a.hud.Draw(w, h)
		}
		a.window.SwapBuffers()
	}
}
