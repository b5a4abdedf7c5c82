// Package mapgen derives PBR material maps from a single albedo buffer.
//
// deriver.go implements the pipeline organism that runs all five
// generators concurrently off the same read-only source and joins their
// results.
//
// This organism composes:
//   - the generator atoms (normal.go, roughness.go, ao.go, metalness.go, height.go)
//   - logging.Logger: for structured operation tracking
package mapgen

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OnlyRezxx/pbr/logging"
	"github.com/OnlyRezxx/pbr/texture"
)

// Deriver runs the full map derivation pipeline.
//
// Thread-Safety: Deriver is safe for concurrent use. Each Derive call
// allocates its own output buffers; the shared source is read-only and no
// locking is needed.
type Deriver struct {
	logger *logging.Logger
}

// NewDeriver creates a pipeline deriver. A nil logger disables logging.
func NewDeriver(logger *logging.Logger) *Deriver {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Deriver{logger: logger.Named("mapgen")}
}

// derivation is one generator task scheduled by Derive.
type derivation struct {
	kind MapKind
	run  func() (*texture.PixelBuffer, error)
}

// Derive derives all five material maps from the source albedo.
//
// The generators are independent and run concurrently; the only
// synchronization point is the final join. Failure in one generator does
// not corrupt or block the others, but the pipeline is fail-fast: the
// first error (in canonical kind order) aborts the overall result, tagged
// with the kind of the map that failed. No retries are performed and no
// internal timeout is imposed; cancellation belongs to the caller's ctx.
func (d *Deriver) Derive(ctx context.Context, src *texture.PixelBuffer, params Params) (*MapSet, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()
	log := d.logger.With(
		zap.String("correlation_id", correlationID),
		zap.Int("width", src.Width),
		zap.Int("height", src.Height),
	)
	log.Debug("starting map derivation",
		zap.Float64("normal_strength", params.NormalStrength),
		zap.Float64("roughness_multiplier", params.RoughnessMultiplier),
		zap.Bool("metal", params.Metal))

	set := &MapSet{}
	tasks := []derivation{
		{KindNormal, func() (*texture.PixelBuffer, error) { return NormalMap(src, params.NormalStrength) }},
		{KindRoughness, func() (*texture.PixelBuffer, error) { return RoughnessMap(src, params.RoughnessMultiplier) }},
		{KindAO, func() (*texture.PixelBuffer, error) { return AOMap(src) }},
		{KindMetalness, func() (*texture.PixelBuffer, error) { return MetalnessMap(src, params.Metal) }},
		{KindHeight, func() (*texture.PixelBuffer, error) { return HeightMap(src) }},
	}

	results := make([]*texture.PixelBuffer, len(tasks))
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task derivation) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = task.run()
		}(i, task)
	}
	wg.Wait()

	for i, task := range tasks {
		if errs[i] != nil {
			log.Error("map derivation failed",
				zap.String("map", string(task.kind)),
				zap.Error(errs[i]))
			return nil, fmt.Errorf("mapgen: %s map: %w", task.kind, errs[i])
		}
	}

	set.Normal = results[0]
	set.Roughness = results[1]
	set.AO = results[2]
	set.Metalness = results[3]
	set.Height = results[4]

	if err := set.Validate(src); err != nil {
		return nil, err
	}

	log.Debug("map derivation complete")
	return set, nil
}

// DeriveMaps is the package-level pipeline entry point for callers that
// do not need logging: it derives all five maps with a silent Deriver.
func DeriveMaps(ctx context.Context, src *texture.PixelBuffer, params Params) (*MapSet, error) {
	return NewDeriver(nil).Derive(ctx, src, params)
}
