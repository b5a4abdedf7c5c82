package mapgen

import (
	"testing"

	"github.com/OnlyRezxx/pbr/texture"
)

// solidBuffer creates a buffer filled with one RGBA value.
func solidBuffer(t *testing.T, width, height int, r, g, b uint8) *texture.PixelBuffer {
	t.Helper()
	buf, err := texture.NewPixelBuffer(width, height)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, r, g, b, 255)
		}
	}
	return buf
}

// grayBuffer creates a buffer filled with one grayscale value.
func grayBuffer(t *testing.T, width, height int, v uint8) *texture.PixelBuffer {
	t.Helper()
	return solidBuffer(t, width, height, v, v, v)
}

// makeHorizontalRamp builds a grayscale ramp brightening left to right.
func makeHorizontalRamp(width, height int) (*texture.PixelBuffer, error) {
	buf, err := texture.NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(x * 255 / (width - 1))
			buf.Set(x, y, v, v, v, 255)
		}
	}
	return buf, nil
}

// makeVerticalRamp builds a grayscale ramp brightening top to bottom.
func makeVerticalRamp(width, height int) (*texture.PixelBuffer, error) {
	buf, err := texture.NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(y * 255 / (height - 1))
			buf.Set(x, y, v, v, v, 255)
		}
	}
	return buf, nil
}

// assertGrayscale fails unless every pixel has R=G=B and opaque alpha.
func assertGrayscale(t *testing.T, buf *texture.PixelBuffer) {
	t.Helper()
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, a := buf.At(x, y)
			if r != g || g != b {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d) is not grayscale", x, y, r, g, b)
			}
			if a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

// assertUniform fails unless every pixel equals the given grayscale value.
func assertUniform(t *testing.T, buf *texture.PixelBuffer, want uint8) {
	t.Helper()
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, _ := buf.At(x, y)
			if r != want || g != want || b != want {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want uniform %d", x, y, r, g, b, want)
			}
		}
	}
}
