//go:build !windows

package util

// IsRunFromGUI is always false off Windows; service managers start the
// server there.
func IsRunFromGUI() bool { return false }

func HideConsoleWindow() {}
