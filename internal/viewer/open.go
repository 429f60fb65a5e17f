// Package viewer opens generated files with the platform's default handler.
package viewer

import (
	"os/exec"
	"runtime"
)

// Open launches the platform opener on a file or directory. Best-effort: a
// missing opener is reported but never blocks generation.
func Open(path string) error {
	return openWith(runtime.GOOS, path, startCommand)
}

// startCommand is swappable for tests.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

func openWith(goos, path string, start func(string, ...string) error) error {
	switch goos {
	case "windows":
		return start("cmd", "/c", "start", "", path)
	case "darwin":
		return start("open", path)
	default:
		return start("xdg-open", path)
	}
}
