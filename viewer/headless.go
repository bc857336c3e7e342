package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Elitism/Earth-Population-Map/heatmap"
	"github.com/Elitism/Earth-Population-Map/scene"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
}

// RunHeadless composes frames off a ticker without opening a window. Draw
// calls go to a null renderer; the value is exercising the full
// load-compose path in environments with no display (smoke runs, CI). It
// returns after Ticks frames, or when ctx is done.
func RunHeadless(ctx context.Context, s *scene.Scene, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var r nullRenderer
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			scene.Compose(&r, s)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// nullRenderer discards draw calls, counting frames.
type nullRenderer struct {
	frames int
}

func (r *nullRenderer) Clear() { r.frames++ }

func (r *nullRenderer) DrawSphere(model mgl32.Mat4) {}

func (r *nullRenderer) DrawPoints(model mgl32.Mat4, positions []mgl32.Vec3, colors []heatmap.Color) {
}
