// Package util detects a double-click launch on Windows so the binary can
// start the server and hide its console.
package util

import (
	"slices"
	"strings"
)

var cliProcesses = []string{
	"cmd.exe",
	"powershell.exe",
	"pwsh.exe",
	"wt.exe",
	"conhost.exe",
	"windowsterminal.exe",
	"bash.exe",
	"nu.exe",
}

// isCliProcess reports whether a parent executable name is a shell or
// terminal.
func isCliProcess(name string) bool {
	return slices.Contains(cliProcesses, strings.ToLower(name))
}
