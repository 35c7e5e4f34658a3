//go:build linux

package sim

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EnterCbreak switches the terminal on f to cbreak mode so single key presses
// arrive without Enter. The returned func restores the previous mode.
func EnterCbreak(f *os.File) (func() error, error) {
	var canAttr unix.Termios
	if err := termios.Tcgetattr(f.Fd(), &canAttr); err != nil {
		return nil, fmt.Errorf("read terminal attributes: %w", err)
	}

	cbreakAttr := canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &cbreakAttr); err != nil {
		return nil, fmt.Errorf("enter cbreak mode: %w", err)
	}

	return func() error {
		return termios.Tcsetattr(f.Fd(), termios.TCSANOW, &canAttr)
	}, nil
}
