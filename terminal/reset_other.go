//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls differ; RIS covers most terminals
func resetTerminalMode() {}
