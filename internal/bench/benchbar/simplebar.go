// Package benchbar wraps a terminal progress bar for the benchmark runs.
package benchbar

import (
	"github.com/schollz/progressbar/v3"
)

// Bar tracks progress of a single benchmark phase.
type Bar struct {
	pb *progressbar.ProgressBar
}

// NewBar creates a bar that counts up to total items.
func NewBar(description string, total int) *Bar {
	pb := progressbar.Default(int64(total), description)
	_ = pb.Set(0)
	return &Bar{pb: pb}
}

func (b *Bar) Inc() {
	_ = b.pb.Add(1)
}

func (b *Bar) Finish() {
	_ = b.pb.Finish()
	_ = b.pb.Close()
}
