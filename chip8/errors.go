package chip8

import "errors"

// Error kinds surfaced by the interpreter. Callers match them with
// errors.Is; none of them is retried internally, since re-executing an
// identical fetch is never meaningful.
var (
	// ErrCapacityExceeded is reported at load time when a program image
	// does not fit in the program / data space above 0x200.
	ErrCapacityExceeded = errors.New("program image exceeds memory capacity")

	// ErrOutOfBounds is reported on any access outside the 4096-byte
	// space. Unreachable while the PC and I invariants hold.
	ErrOutOfBounds = errors.New("memory access out of bounds")

	// ErrUnknownOpcode is reported per Step for opcode patterns outside
	// the CHIP-8 instruction set. The caller decides whether to halt or
	// skip the instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrStackOverflow is reported on a CALL beyond 16 nested levels.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is reported on a RET with no return address.
	ErrStackUnderflow = errors.New("stack underflow")
)
