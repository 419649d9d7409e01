//go:build windows

package util

import (
	"log/slog"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
)

// IsRunFromGUI reports whether the process was started without a console,
// or by Explorer rather than a shell.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	hasConsole := hwnd != 0
	parentName := parentProcessName()
	slog.Debug("Parent Process Info", "parentName", parentName, "hasConsole", hasConsole)

	switch {
	case !hasConsole:
		return true
	case isCliProcess(parentName):
		return false
	default:
		return strings.EqualFold(parentName, "explorer.exe")
	}
}

func HideConsoleWindow() {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		slog.Debug("HideConsoleWindow: no console window found")
		return
	}
	_, _, _ = procShowWindow.Call(hwnd, windows.SW_HIDE)
	_, _, _ = procFreeConsole.Call()
}

func parentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	self, ok := findProcess(snapshot, uint32(os.Getpid()))
	if !ok || self.ParentProcessID == 0 {
		return ""
	}
	parent, ok := findProcess(snapshot, self.ParentProcessID)
	if !ok {
		return ""
	}
	return windows.UTF16ToString(parent.ExeFile[:])
}

func findProcess(snapshot windows.Handle, pid uint32) (windows.ProcessEntry32, bool) {
	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	for err := windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		if pe.ProcessID == pid {
			return pe, true
		}
	}
	return windows.ProcessEntry32{}, false
}
