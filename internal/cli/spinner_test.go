package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

// captureUI redirects status output for the duration of a test.
func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = prev })
	return &buf
}

func TestSpinnerDrawsFrames(t *testing.T) {
	buf := captureUI(t)

	s := newSpinnerWithContext(context.Background(), "Loading catalog")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Loading catalog") {
		t.Errorf("spinner output %q should contain the message", buf.String())
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	captureUI(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Loading catalog")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	captureUI(t)
	s := newSpinnerWithContext(context.Background(), "Loading catalog")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessage(t *testing.T) {
	buf := captureUI(t)

	s := newSpinnerWithContext(context.Background(), "Rendering")
	s.Start()
	s.StopWithSuccess("Rendered")
	if !strings.Contains(buf.String(), iconSuccess+" Rendered") {
		t.Errorf("output %q missing success line", buf.String())
	}

	s = newSpinnerWithContext(context.Background(), "Rendering")
	s.Start()
	s.StopWithError("Failed")
	if !strings.Contains(buf.String(), iconError+" Failed") {
		t.Errorf("output %q missing error line", buf.String())
	}
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	captureUI(t)
	s := newSpinnerWithContext(context.Background(), "Loading catalog")
	s.Stop()
	s.Start()
}
