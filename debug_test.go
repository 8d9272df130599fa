package emojislider

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDebugModeLogsSpringTicks(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSlider(t, nil)
	s.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s.SetDebugMode(true)

	s.HandlePointer(press(160, 28))
	s.Update(frame)

	out := buf.String()
	if !strings.Contains(out, "spring tick") || !strings.Contains(out, "spring=thumb") {
		t.Errorf("debug output missing spring stats:\n%s", out)
	}
	if !strings.Contains(out, "from=idle to=dragging") {
		t.Errorf("debug output missing state transition:\n%s", out)
	}
}

func TestDebugModeOffIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSlider(t, nil)
	s.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	s.HandlePointer(press(160, 28))
	s.Update(frame)
	if strings.Contains(buf.String(), "spring tick") {
		t.Error("spring stats logged with debug mode off")
	}
}

func TestDebugCheckViewDepth(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	root := NewView("root")
	leaf := root
	for i := 0; i < debugMaxViewDepth+1; i++ {
		child := NewView("v")
		leaf.AddChild(child)
		leaf = child
	}
	debugCheckViewDepth(logger, leaf)
	if !strings.Contains(buf.String(), "view tree too deep") {
		t.Errorf("expected depth warning, got %q", buf.String())
	}

	buf.Reset()
	debugCheckViewDepth(logger, root)
	if buf.Len() != 0 {
		t.Errorf("unexpected warning for a root view: %q", buf.String())
	}
}
