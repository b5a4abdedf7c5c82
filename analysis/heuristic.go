// Package analysis estimates material properties for an albedo image.
//
// heuristic.go implements the offline analyzer: no network, just color
// statistics. Desaturated bright surfaces read as metallic; dark, busy
// surfaces read as rough. The estimates are crude, but a pipeline
// without a vision model still gets something better than the fixed
// defaults.
//
// This molecule composes:
//   - muesli/kmeans + clusters: palette clustering in Lab space
//   - lucasb-eyer/go-colorful: color-space conversion
//   - cenkalti/dominantcolor: dominant swatch extraction
//   - gonum/stat: luminance statistics
package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/OnlyRezxx/pbr/logging"
	"github.com/OnlyRezxx/pbr/texture"
)

// Heuristic tuning constants.
const (
	// heuristicSampleDim bounds the image sampled for statistics.
	heuristicSampleDim = 128

	// heuristicClusters is the palette size used for saturation stats.
	heuristicClusters = 4
)

// HeuristicAnalyzer estimates material properties from color statistics
// alone. It never fails on image content, only on undecodable input.
type HeuristicAnalyzer struct {
	logger *logging.Logger
}

// NewHeuristicAnalyzer creates a local statistics-based analyzer.
// A nil logger disables logging.
func NewHeuristicAnalyzer(logger *logging.Logger) *HeuristicAnalyzer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &HeuristicAnalyzer{logger: logger.Named("analysis")}
}

// Analyze estimates roughness from luminance statistics and metalness
// from palette saturation.
func (h *HeuristicAnalyzer) Analyze(ctx context.Context, imageData []byte) (Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return Suggestion{}, err
	}

	buf, err := texture.Decode(imageData)
	if err != nil {
		return Suggestion{}, fmt.Errorf("analysis: %w", err)
	}

	sample, err := ResizeForAnalysis(buf, heuristicSampleDim)
	if err != nil {
		return Suggestion{}, fmt.Errorf("analysis: %w", err)
	}

	luminances, observations := collectSamples(sample)

	mean, variance := stat.MeanVariance(luminances, nil)
	stddev := math.Sqrt(variance)

	satMean := paletteSaturation(observations)

	// Darker and busier surfaces suggest crevices and grain: rougher.
	roughness := clamp01(0.15 + 0.6*(1.0-mean) + 0.5*stddev)

	// Desaturated surfaces with mid-to-high luminance suggest bare metal.
	metalness := clamp01(0.65*(1.0-satMean) + 0.35*(mean-0.35))

	dominant := dominantcolor.Find(sample.ToImage())
	h.logger.Debug("heuristic analysis",
		zap.String("dominant_color", dominantcolor.Hex(dominant)),
		zap.Float64("luminance_mean", mean),
		zap.Float64("luminance_stddev", stddev),
		zap.Float64("palette_saturation", satMean))

	return Suggestion{Roughness: roughness, Metalness: metalness}, nil
}

// collectSamples walks the sample buffer once, producing the luminance
// series and Lab-space observations for clustering.
func collectSamples(buf *texture.PixelBuffer) ([]float64, clusters.Observations) {
	luminances := make([]float64, 0, buf.Width*buf.Height)
	observations := make(clusters.Observations, 0, buf.Width*buf.Height)

	for o := 0; o < len(buf.Pix); o += texture.BytesPerPixel {
		r := float64(buf.Pix[o]) / 255.0
		g := float64(buf.Pix[o+1]) / 255.0
		b := float64(buf.Pix[o+2]) / 255.0

		luminances = append(luminances, (r+g+b)/3.0)

		l, a, bb := colorful.Color{R: r, G: g, B: b}.Lab()
		observations = append(observations, clusters.Coordinates{l, a, bb})
	}
	return luminances, observations
}

// paletteSaturation clusters the observations and returns the
// size-weighted mean saturation of the cluster centers. Falls back to 0.5
// (neutral) when the image is too small to cluster.
func paletteSaturation(observations clusters.Observations) float64 {
	if len(observations) < heuristicClusters {
		return 0.5
	}

	km := kmeans.New()
	partitions, err := km.Partition(observations, heuristicClusters)
	if err != nil || len(partitions) == 0 {
		return 0.5
	}

	var weightedSat, total float64
	for _, c := range partitions {
		center := c.Center
		if len(center) < 3 {
			continue
		}
		col := colorful.Lab(center[0], center[1], center[2]).Clamped()
		_, s, _ := col.Hsv()
		weight := float64(len(c.Observations))
		weightedSat += s * weight
		total += weight
	}
	if total == 0 {
		return 0.5
	}
	return weightedSat / total
}

// clamp01 clamps v into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Ensure HeuristicAnalyzer implements Analyzer at compile time.
var _ Analyzer = (*HeuristicAnalyzer)(nil)
