// Package progress provides concrete progress-callback implementations and
// a throttling tracker for marketplace download operations.
package progress

import (
	"github.com/schollz/progressbar/v3"
)

// Console renders download progress as a terminal progress bar. It
// implements models.ProgressCallback.
type Console struct {
	description string
	bar         *progressbar.ProgressBar
	current     int64
}

// NewConsole creates a console progress callback with the given bar
// description (typically the asset title)
func NewConsole(description string) *Console {
	return &Console{description: description}
}

// OnStart creates the bar; a total below zero renders a spinner-style bar
// with unknown length
func (c *Console) OnStart(total int64) {
	c.bar = progressbar.NewOptions64(total,
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetDescription(c.description),
	)
	c.current = 0
}

// OnProgress advances the bar to the reported position
func (c *Console) OnProgress(current, total int64) {
	if c.bar == nil {
		return
	}
	delta := current - c.current
	if delta > 0 {
		_ = c.bar.Add64(delta)
		c.current = current
	}
}

// OnComplete finishes and clears the bar
func (c *Console) OnComplete() {
	if c.bar != nil {
		_ = c.bar.Finish()
	}
}

// OnError abandons the bar, leaving the terminal clean
func (c *Console) OnError(err error) {
	if c.bar != nil {
		_ = c.bar.Exit()
	}
}
