package mapgen

import (
	"errors"
	"testing"
)

func TestAOMapValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{name: "black fully occluded", r: 0, g: 0, b: 0, want: 0},
		{name: "dark half gray", r: 50, g: 50, b: 50, want: 128},
		{name: "just below threshold", r: 99, g: 99, b: 99, want: 252},
		{name: "at threshold", r: 100, g: 100, b: 100, want: 255},
		{name: "above threshold", r: 180, g: 180, b: 180, want: 255},
		{name: "white", r: 255, g: 255, b: 255, want: 255},
		{name: "dark red averages below threshold", r: 255, g: 0, b: 0, want: 217},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := solidBuffer(t, 2, 2, tt.r, tt.g, tt.b)

			out, err := AOMap(src)
			if err != nil {
				t.Fatalf("AOMap failed: %v", err)
			}
			assertGrayscale(t, out)
			assertUniform(t, out, tt.want)
		})
	}
}

func TestAOMapThresholdBoundary(t *testing.T) {
	// The threshold itself is unoccluded: pixels at exactly the cutoff
	// must jump to full white, never to the scaled value.
	src := grayBuffer(t, 2, 2, 100)

	out, err := AOMap(src)
	if err != nil {
		t.Fatalf("AOMap failed: %v", err)
	}
	v, _, _, _ := out.At(0, 0)
	if v != 255 {
		t.Errorf("threshold pixel = %d, want 255", v)
	}
}

func TestAOMapInvalidSource(t *testing.T) {
	if _, err := AOMap(nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("nil source error = %v, want ErrNilSource", err)
	}
}
