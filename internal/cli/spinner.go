package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a one-line progress indicator on uiOut until it is
// stopped or its context is cancelled. Runs longer than a second show the
// elapsed time.
type Spinner struct {
	message string
	ctx     context.Context
	cancel  context.CancelFunc

	startOnce sync.Once
	stopped   chan struct{}
}

func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation. Calling it again has no effect.
func (s *Spinner) Start() {
	s.startOnce.Do(func() { go s.run() })
}

func (s *Spinner) run() {
	defer close(s.stopped)

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	start := time.Now()
	width := 0
	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			fmt.Fprintf(uiOut, "\r%s\r", strings.Repeat(" ", width))
			return
		case <-ticker.C:
			line := s.message
			if elapsed := time.Since(start); elapsed >= time.Second {
				line += fmt.Sprintf(" (%ds)", int(elapsed.Seconds()))
			}
			icon := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(uiOut, "\r%s %s", styleIconSpinner.Render(icon), StyleDim.Render(line))
			width = max(width, len(line)+2)
		}
	}
}

// Stop ends the animation and clears the line. It is safe to call more
// than once, and before Start.
func (s *Spinner) Stop() {
	s.cancel()
	s.startOnce.Do(func() { close(s.stopped) })
	<-s.stopped
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}
