//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/VISE/internal/util"
)

// A double-click from Explorer starts the server.
func init() {
	if !util.IsRunFromGUI() {
		return
	}
	if len(os.Args) >= 2 && os.Args[1] == "serve" {
		return
	}
	slog.Info("Detected GUI startup, injecting 'serve' argument")
	slog.Warn("Run from a CLI for more options!")
	args := make([]string, 0, len(os.Args)+1)
	args = append(args, os.Args[0], "serve")
	os.Args = append(args, os.Args[1:]...)
}
