package emojislider

import (
	"strings"
	"testing"
)

func TestFPSOverlayText(t *testing.T) {
	s := newTestSlider(t, nil)
	o := NewFPSOverlay(s)
	defer o.Close()

	got := o.text(59.96, 60)
	if !strings.HasPrefix(got, "FPS: 60.0\nTPS: 60.0") {
		t.Errorf("text = %q", got)
	}
	if !strings.HasSuffix(got, "idle") {
		t.Errorf("text = %q, want interaction state suffix", got)
	}

	if n := NewFPSOverlay(nil); strings.Count(n.text(1, 1), "\n") != 1 {
		t.Error("overlay without slider should have two lines")
	}
}

func TestFPSOverlayRefreshInterval(t *testing.T) {
	o := NewFPSOverlay(nil)
	defer o.Close()

	o.Update(frame) // first update refreshes immediately
	if o.label == "" || o.elapsed != 0 {
		t.Fatalf("first update did not refresh: label=%q elapsed=%v", o.label, o.elapsed)
	}
	o.label = ""
	o.Update(0.25)
	if o.label != "" {
		t.Error("refreshed before the interval elapsed")
	}
	o.Update(0.25)
	if o.label == "" {
		t.Error("did not refresh after the interval elapsed")
	}
}
