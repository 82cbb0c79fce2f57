package flick

import "testing"

func TestInjectDragInterpolation(t *testing.T) {
	w, _ := newTestWidget()

	w.InjectDrag(0, 0, 100, 100, 5)
	if len(w.injectQueue) != 5 {
		t.Fatalf("queue length = %d, want 5", len(w.injectQueue))
	}

	first := w.injectQueue[0]
	if !first.pressed || first.x != 0 || first.y != 0 {
		t.Errorf("first event = %+v, want press at (0, 0)", first)
	}
	last := w.injectQueue[4]
	if last.pressed || last.x != 100 || last.y != 100 {
		t.Errorf("last event = %+v, want release at (100, 100)", last)
	}
	for i, want := range []float64{25, 50, 75} {
		evt := w.injectQueue[i+1]
		if !evt.pressed || evt.x != want || evt.y != want {
			t.Errorf("move %d = %+v, want pressed at (%v, %v)", i, evt, want, want)
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	w, _ := newTestWidget()
	w.InjectDrag(0, 0, 50, 50, 0)
	if len(w.injectQueue) != 2 {
		t.Errorf("queue length = %d, want press + release", len(w.injectQueue))
	}
}

func TestInjectConsumesOnePerUpdate(t *testing.T) {
	w, _ := newTestWidget()
	w.InjectPress(10, 10)
	w.InjectMove(20, 20)
	w.InjectRelease(20, 20)

	for want := 2; want >= 0; want-- {
		w.Update()
		if len(w.injectQueue) != want {
			t.Fatalf("queue length after update = %d, want %d", len(w.injectQueue), want)
		}
	}
}

func TestInjectScrollDrops(t *testing.T) {
	w, _ := newTestWidget()
	w.InjectScroll(60)
	w.Update()
	if !w.Dropped() {
		t.Error("injected scroll past the threshold should drop")
	}
}
