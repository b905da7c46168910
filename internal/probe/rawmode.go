package probe

import "golang.org/x/term"

// Test seams for environments without a real TTY.
var (
	makeRaw     = term.MakeRaw
	restoreMode = term.Restore
)

// modeGuard captures the terminal state at acquisition and restores it
// exactly once. The probe defers Restore immediately after acquiring the
// guard so the saved mode comes back on every exit path: completion,
// timeout, or panic. Leaving raw mode enabled corrupts the user's shell.
type modeGuard struct {
	fd    int
	state *term.State
}

// enterRaw switches the descriptor to raw mode, saving the prior state.
func enterRaw(fd int) (*modeGuard, error) {
	state, err := makeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &modeGuard{fd: fd, state: state}, nil
}

// Restore puts the saved mode back. Safe to call more than once.
func (g *modeGuard) Restore() {
	if g == nil || g.state == nil {
		return
	}
	restoreMode(g.fd, g.state)
	g.state = nil
}
