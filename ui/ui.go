package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"chip8go/chip8"
)

// ticksPerSecond is the timer cadence the hardware specifies; the
// display is refreshed on the same beat.
const ticksPerSecond = 60

func mainLoop(window *glfw.Window, console *chip8.Console, clock int, audio *audio) error {
	stepsPerFrame := clock / ticksPerSecond
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	for range time.Tick(time.Second / ticksPerSecond) {
		for i := 0; i < stepsPerFrame; i++ {
			if err := console.Step(); err != nil {
				return err
			}
			if console.AwaitingKey() {
				// The program is suspended on a key press. Skip the
				// rest of this frame's instruction budget and keep
				// servicing timers, display and input below.
				break
			}
		}
		console.Tick()
		audio.feed(console.SoundActive())
		updateTexture(console.DisplaySnapshot())
		window.SwapBuffers()
		glfw.PollEvents()
		setKeys(window, console)
		if window.ShouldClose() {
			return nil
		}
	}
	return nil
}

// Start opens the window and drives the console: clock instructions per
// second, timer ticks and frames at 60Hz. It must run on the main
// thread.
func Start(console *chip8.Console, clock int, scale int) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(chip8.DisplayWidth*scale, chip8.DisplayHeight*scale, "chip8go", nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	program, err := newProgram()
	if err != nil {
		return err
	}
	gl.UseProgram(program)
	audio := newAudio()
	if err := audio.start(); err != nil {
		glog.Errorf("Failed to start audio, running silent: %v", err)
	} else {
		defer audio.terminate()
	}
	glog.Infof("running at %dHz", clock)
	return mainLoop(window, console, clock, audio)
}
