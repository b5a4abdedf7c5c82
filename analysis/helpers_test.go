package analysis

import (
	"math/rand"
	"testing"

	"github.com/OnlyRezxx/pbr/logging"
	"github.com/OnlyRezxx/pbr/texture"
)

// testLogger returns a silent logger for tests.
func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	return logging.Nop()
}

// encodeTestPNG builds a buffer via fill and encodes it as PNG bytes.
func encodeTestPNG(t *testing.T, width, height int, fill func(x, y int) (r, g, b uint8)) []byte {
	t.Helper()
	buf, err := texture.NewPixelBuffer(width, height)
	if err != nil {
		t.Fatalf("failed to create buffer: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := fill(x, y)
			buf.Set(x, y, r, g, b, 255)
		}
	}
	data, err := texture.EncodePNG(buf)
	if err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return data
}

// noisyPNG encodes an image of uniformly random pixels around a base
// luminance, seeded for repeatability.
func noisyPNG(t *testing.T, width, height int, base uint8, spread int, seed int64) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	return encodeTestPNG(t, width, height, func(x, y int) (uint8, uint8, uint8) {
		v := int(base) + rng.Intn(2*spread+1) - spread
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		return uint8(v), uint8(v), uint8(v)
	})
}
