package main

import (
	"runtime"

	"chip8go/cmd"
)

// The GLFW event loop must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
