package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"chip8go/chip8"
)

// keyMap is the conventional mapping of the left side of a QWERTY
// keyboard onto the 4x4 hex keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = map[glfw.Key]byte{
	glfw.Key1: 0x1, glfw.Key2: 0x2, glfw.Key3: 0x3, glfw.Key4: 0xC,
	glfw.KeyQ: 0x4, glfw.KeyW: 0x5, glfw.KeyE: 0x6, glfw.KeyR: 0xD,
	glfw.KeyA: 0x7, glfw.KeyS: 0x8, glfw.KeyD: 0x9, glfw.KeyF: 0xE,
	glfw.KeyZ: 0xA, glfw.KeyX: 0x0, glfw.KeyC: 0xB, glfw.KeyV: 0xF,
}

// setKeys pushes the state of the mapped keys to the keypad.
func setKeys(window *glfw.Window, console *chip8.Console) {
	for key, pad := range keyMap {
		console.SetKey(pad, window.GetKey(key) == glfw.Press)
	}
}
