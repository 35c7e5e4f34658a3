//go:build !linux

package sim

import "os"

// EnterCbreak is a no-op where termios is unavailable; keys need Enter.
func EnterCbreak(*os.File) (func() error, error) {
	return func() error { return nil }, nil
}
