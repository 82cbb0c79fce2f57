package flick

// syntheticEvent is a single injected input event. Injected events replace
// real device polling for the frame that consumes them, so tests and scripted
// demos drive the widget through exactly the same state machine as a user.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	scroll  bool
	offset  float64
}

// InjectPress queues a pointer press at the given coordinates. The event is
// consumed on the next Update.
func (w *Widget) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (w *Widget) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given coordinates.
func (w *Widget) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectScroll queues a scroll offset report (the value NotifyScroll would
// receive from a host).
func (w *Widget) InjectScroll(offset float64) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{scroll: true, offset: offset})
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` Updates; minimum is 2.
func (w *Widget) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		w.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	w.InjectRelease(toX, toY)
}

// consumeInjected pops one event from the queue and feeds it through the
// normal input paths. Returns true if an event was consumed (real device
// input is skipped for this frame).
func (w *Widget) consumeInjected() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	if evt.scroll {
		w.NotifyScroll(evt.offset)
		return true
	}
	w.handlePointer(evt.x, evt.y, evt.pressed)
	return true
}
