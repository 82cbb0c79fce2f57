package flick

import "testing"

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 83, 83},
		{"full turn", 360, 0},
		{"over a turn", 450, 90},
		{"negative", -90, 270},
		{"large negative", -720, 0},
		{"many turns", 3690, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeDegrees(tt.in)
			if got != tt.want {
				t.Errorf("normalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("normalizeDegrees(%v) = %v, outside [0, 360)", tt.in, got)
			}
		})
	}
}

func TestSnapRightAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"just under 90", 83, 90},
		{"just over 90", 97, 90},
		{"near zero", 10, 0},
		{"near full turn", 350, 0},
		{"midpoint rounds up", 45, 90},
		{"near 180", 170, 180},
		{"near 270", 260, 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snapRightAngle(tt.in); got != tt.want {
				t.Errorf("snapRightAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBodyRect(t *testing.T) {
	b := Body{X: 10, Y: 20, Width: 120, Height: 48}
	want := Rect{X: 10, Y: 20, Width: 120, Height: 48}
	if got := b.Rect(); got != want {
		t.Errorf("Body.Rect() = %+v, want %+v", got, want)
	}
}

func TestBodyStopAll(t *testing.T) {
	b := Body{VX: 300, VY: -150, Angular: 45}
	b.stopAll()
	if b.VX != 0 || b.VY != 0 || b.Angular != 0 {
		t.Errorf("stopAll left velocities (%v, %v, %v), want all zero", b.VX, b.VY, b.Angular)
	}
}
