package progress

import (
	"github.com/pterm/pterm"
)

// Bar tracks per-message progress while the archive is filtered.
type Bar struct {
	pb      *pterm.ProgressbarPrinter
	total   int
	enabled bool
}

// New creates a progress bar when logLevel is "info". At other levels the
// bar is inert and Hook/Stop are no-ops.
func New(total int, logLevel string) *Bar {
	enabled := logLevel == "info" && total > 0

	bar := &Bar{total: total, enabled: enabled}
	if enabled {
		pb, _ := pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle("Filtering messages").
			Start()
		bar.pb = pb
	}
	return bar
}

// Hook returns the per-message callback to install on the filter, or nil
// when the bar is disabled.
func (b *Bar) Hook() func() {
	if !b.enabled || b.pb == nil {
		return nil
	}
	return func() {
		b.pb.Increment()
	}
}

// Stop finalizes the progress bar.
func (b *Bar) Stop() {
	if !b.enabled || b.pb == nil {
		return
	}

	// Ensure we reach 100%
	if b.pb.Current < b.total {
		b.pb.Current = b.total
	}
	b.pb.Stop()
}
