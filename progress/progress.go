package progress

import (
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// ProgressBar wrapper structure
type ProgressBar struct {
	*pb.ProgressBar
	done chan struct{}
}

// NewTimedBar instantiates a progress bar for a run of known duration. It
// advances once per second until Finish is called; the rendering goroutine
// touches only the terminal, never the device under test.
func NewTimedBar(total time.Duration) *ProgressBar {
	// Progress bar specific theme customization.
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(int64(total / time.Second))
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{string . "prefix"}} {{bar . }} {{percent . }}`)
	bar.Start()

	p := &ProgressBar{ProgressBar: bar, done: make(chan struct{})}
	go p.tick()
	return p
}

func (p *ProgressBar) tick() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			if p.ProgressBar.Current() < p.ProgressBar.Total() {
				p.ProgressBar.Increment()
			}
		}
	}
}

// SetCaption sets the caption of the progress bar.
func (p *ProgressBar) SetCaption(caption string) *ProgressBar {
	p.ProgressBar.Set("prefix", caption)
	return p
}

// Finish stops the ticker and completes the bar.
func (p *ProgressBar) Finish() {
	close(p.done)
	p.ProgressBar.SetCurrent(p.ProgressBar.Total())
	p.ProgressBar.Finish()
}
