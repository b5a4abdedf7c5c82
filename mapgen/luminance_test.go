package mapgen

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float64
	}{
		{name: "black", r: 0, g: 0, b: 0, want: 0.0},
		{name: "white", r: 255, g: 255, b: 255, want: 1.0},
		{name: "pure red", r: 255, g: 0, b: 0, want: 1.0 / 3.0},
		{name: "mixed", r: 60, g: 120, b: 180, want: 120.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := solidBuffer(t, 2, 2, tt.r, tt.g, tt.b)
			got := Luminance(src, 0, 0)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLuminancePlaneClampedEdges(t *testing.T) {
	// Out-of-bounds samples must repeat the nearest edge pixel, never
	// wrap to the opposite side.
	src, err := makeHorizontalRamp(4, 3)
	if err != nil {
		t.Fatalf("failed to build ramp: %v", err)
	}
	plane := newLuminancePlane(src)

	if got, want := plane.at(-1, 0), plane.at(0, 0); got != want {
		t.Errorf("at(-1,0) = %v, want edge value %v", got, want)
	}
	if got, want := plane.at(4, 1), plane.at(3, 1); got != want {
		t.Errorf("at(4,1) = %v, want edge value %v", got, want)
	}
	if got, want := plane.at(2, -5), plane.at(2, 0); got != want {
		t.Errorf("at(2,-5) = %v, want edge value %v", got, want)
	}
	if got, want := plane.at(2, 3), plane.at(2, 2); got != want {
		t.Errorf("at(2,3) = %v, want edge value %v", got, want)
	}

	// A wrap would pull the bright right edge into the dark left corner.
	if plane.at(-1, 0) == plane.at(3, 0) {
		t.Error("left edge sample equals right edge value; clamping looks like wrapping")
	}
}

func TestLuminancePlaneSmoothed(t *testing.T) {
	// On a uniform buffer the 3x3 average is the pixel value itself,
	// even in corners where all neighbors clamp to the same pixel.
	src := grayBuffer(t, 3, 3, 90)
	plane := newLuminancePlane(src)

	want := 90.0 / 255.0
	for _, pos := range [][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 2}} {
		got := plane.smoothed(pos[0], pos[1])
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("smoothed(%d,%d) = %v, want %v", pos[0], pos[1], got, want)
		}
	}
}
