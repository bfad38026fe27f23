//go:build !windows

package launcher

import (
	"runtime"

	"github.com/frudas24/deskremote/internal/proc"
)

// OpenerLauncher delegates to the desktop "open" helper (xdg-open or open).
type OpenerLauncher struct {
	runner *proc.Runner
	opener string
}

// New returns the platform launcher.
func New() Launcher {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	return &OpenerLauncher{runner: proc.NewRunner(), opener: opener}
}

// OpenURL opens url in the default browser.
func (l *OpenerLauncher) OpenURL(url string) error {
	return l.runner.Start(l.opener, url)
}

// OpenApp opens target; extra args are ignored by desktop openers.
func (l *OpenerLauncher) OpenApp(target string, _ ...string) error {
	return l.runner.Start(l.opener, target)
}
