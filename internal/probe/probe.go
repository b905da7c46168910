package probe

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"

	"github.com/vovakirdan/termtint/internal/colormath"
)

const (
	// DefaultTimeout bounds the wait for the full response batch.
	DefaultTimeout = 500 * time.Millisecond

	// drainWindow is the short extra read after the main wait ends, to
	// swallow stray late replies before they leak into program output.
	drainWindow = 50 * time.Millisecond
)

// Options controls a probe run. The zero value probes the process terminal
// with the default timeout.
type Options struct {
	// Input is the stream replies arrive on; nil means os.Stdin.
	Input *os.File

	// Output is the stream queries are written to; nil means os.Stdout.
	Output *os.File

	// Timeout bounds the whole exchange; 0 means DefaultTimeout.
	Timeout time.Duration

	// RequireTTY aborts (nil result, zero bytes written) when Output is
	// not a terminal.
	RequireTTY bool

	// Logger receives debug output; nil means silent.
	Logger *log.Logger
}

// Run performs one palette probe. It returns nil on any environmental
// failure: non-TTY output under RequireTTY, unsupported raw mode, timeout
// with no replies. It never returns an error and never retries; callers
// decide whether the snapshot qualifies for a palette-level theme. Not
// re-entrant: run at most one probe per input stream at a time.
func Run(ctx context.Context, opts Options) *Snapshot {
	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if opts.RequireTTY && !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		debugf(opts.Logger, "probe skipped", "reason", "output is not a tty")
		return nil
	}

	// Raw mode must be acquired before any query bytes go out; otherwise
	// the replies would be echoed and line-buffered.
	guard, err := enterRaw(int(in.Fd()))
	if err != nil {
		debugf(opts.Logger, "probe skipped", "reason", "raw mode unsupported", "error", err)
		return nil
	}
	defer guard.Restore()

	reader, err := cancelreader.NewReader(in)
	if err != nil {
		debugf(opts.Logger, "probe skipped", "reason", "cannot wrap input", "error", err)
		return nil
	}

	if _, err := out.Write(Query()); err != nil {
		reader.Close()
		debugf(opts.Logger, "probe failed", "reason", "query write", "error", err)
		return nil
	}

	raw := collect(ctx, reader, timeout)

	responses := Parse(raw)
	if len(responses) == 0 {
		debugf(opts.Logger, "probe got no parseable replies", "bytes", len(raw))
		return nil
	}
	snap := aggregate(responses)
	debugf(opts.Logger, "probe finished",
		"colors", len(snap.ANSI),
		"foreground", snap.Foreground != nil,
		"background", snap.Background != nil)
	return snap
}

// collect reads until 18 distinct responses have been parsed, the timeout
// elapses, or the context is canceled, then keeps reading for one short
// drain window regardless of how the main wait ended.
func collect(ctx context.Context, reader cancelreader.CancelReader, timeout time.Duration) []byte {
	defer reader.Close()

	chunks := make(chan []byte)
	go func() {
		defer close(chunks)
		buf := make([]byte, 512)
		for {
			n, err := reader.Read(buf)
			if n > 0 {
				b := make([]byte, n)
				copy(b, buf[:n])
				chunks <- b
			}
			if err != nil {
				return
			}
		}
	}()

	var raw []byte
	timer := time.NewTimer(timeout)
	defer timer.Stop()

wait:
	for {
		select {
		case b, ok := <-chunks:
			if !ok {
				return raw
			}
			raw = append(raw, b...)
			if distinctResponses(raw) >= expectedResponses {
				break wait
			}
		case <-timer.C:
			break wait
		case <-ctx.Done():
			break wait
		}
	}

	drain := time.NewTimer(drainWindow)
	defer drain.Stop()
drainLoop:
	for {
		select {
		case b, ok := <-chunks:
			if !ok {
				return raw
			}
			raw = append(raw, b...)
		case <-drain.C:
			break drainLoop
		}
	}

	// Unblock the reader and let it finish; a send in flight is received
	// here rather than leaking the goroutine.
	reader.Cancel()
	for b := range chunks {
		raw = append(raw, b...)
	}
	return raw
}

func distinctResponses(raw []byte) int {
	seen := make(map[[2]int]struct{})
	for _, r := range Parse(raw) {
		seen[[2]int{int(r.Kind), r.Index}] = struct{}{}
	}
	return len(seen)
}

// aggregate folds parsed units into a snapshot. Later duplicates win, which
// matches terminals that answer a repeated query twice.
func aggregate(responses []Response) *Snapshot {
	snap := &Snapshot{ANSI: make(map[int]colormath.RGB, 16)}
	for _, r := range responses {
		switch r.Kind {
		case KindColor:
			snap.ANSI[r.Index] = r.RGB
		case KindForeground:
			rgb := r.RGB
			snap.Foreground = &rgb
		case KindBackground:
			rgb := r.RGB
			snap.Background = &rgb
		}
	}
	return snap
}

func debugf(logger *log.Logger, msg string, kv ...any) {
	if logger != nil {
		logger.Debug(msg, kv...)
	}
}
