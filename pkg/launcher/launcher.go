package launcher

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/mudler/xlog"
)

// UnsupportedPlatformError is returned when the current operating
// system has no known way to open applications or URLs.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("no launcher available on platform %q", e.Platform)
}

// Launcher starts local applications and opens URLs in the default
// browser using the platform opener (start/open/xdg-open).
type Launcher struct {
	goos string
}

func New() *Launcher {
	return NewForPlatform(runtime.GOOS)
}

// NewForPlatform builds a launcher for an explicit GOOS value. Used by
// New and by tests exercising the unsupported-platform path.
func NewForPlatform(goos string) *Launcher {
	return &Launcher{goos: goos}
}

func (l *Launcher) command(target string) (*exec.Cmd, error) {
	switch l.goos {
	case "windows":
		// "start" is a cmd.exe builtin, not an executable.
		return exec.Command("cmd", "/c", "start", "", target), nil
	case "darwin":
		return exec.Command("open", target), nil
	case "linux":
		return exec.Command("xdg-open", target), nil
	}
	return nil, &UnsupportedPlatformError{Platform: l.goos}
}

// OpenApp asks the operating system to start the named application.
// The process is detached: we only care that the launch was accepted.
func (l *Launcher) OpenApp(name string) error {
	cmd, err := l.command(name)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	xlog.Debug("Launched application", "app", name, "platform", l.goos)
	return nil
}

// OpenURL opens a URL in the default browser. Fire and forget: failures
// are logged, never surfaced.
func (l *Launcher) OpenURL(url string) {
	cmd, err := l.command(url)
	if err != nil {
		xlog.Warn("Cannot open URL on this platform", "url", url, "platform", l.goos)
		return
	}
	if err := cmd.Start(); err != nil {
		xlog.Warn("Failed to open URL", "url", url, "error", err)
		return
	}
	xlog.Debug("Opened URL in browser", "url", url)
}
