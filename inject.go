package emojislider

// syntheticPointerEvent represents a single injected pointer event.
// Screen coordinates are used and converted to local coordinates through the
// source's view, identical to real input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	cancel           bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Poll.
func (p *PointerSource) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (p *PointerSource) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (p *PointerSource) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectCancel queues a gesture cancellation.
func (p *PointerSource) InjectCancel() {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{cancel: true})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (p *PointerSource) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames; the minimum is 2.
func (p *PointerSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (p *PointerSource) Pending() int {
	return len(p.injectQueue)
}

// processInjectedInput pops one event from the inject queue and runs it
// through the tracker. consumed is false when the queue is empty; ok is
// false when the injected sample produced no event.
func (p *PointerSource) processInjectedInput() (ev PointerEvent, ok, consumed bool) {
	if len(p.injectQueue) == 0 {
		return PointerEvent{}, false, false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	if evt.cancel {
		ev, ok = p.tracker.cancel()
		return ev, ok, true
	}
	lx, ly := p.toLocal(evt.screenX, evt.screenY)
	if !evt.pressed {
		// Releases report the injected position rather than the last move.
		p.tracker.lastX, p.tracker.lastY = lx, ly
	}
	ev, ok = p.tracker.update(evt.pressed, lx, ly)
	return ev, ok, true
}
