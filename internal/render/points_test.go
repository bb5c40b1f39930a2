package render

import (
	"image/color"
	"testing"

	"pengine/internal/core"
	"pengine/internal/sim"
)

func TestFillPointsPlotsLiveParticles(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.Bounds = core.Rect{W: 8, H: 8}
	cfg.BatchCap = 4
	cfg.FieldIntensity = 0
	w := sim.NewWithConfig(cfg)

	w.Spawn(core.Vec2{X: 1, Y: 1}, core.Vec2{})
	w.Spawn(core.Vec2{X: 6, Y: 3}, core.Vec2{})
	w.Spawn(core.Vec2{X: 20, Y: 20}, core.Vec2{}) // outside the viewport

	buf := make([]byte, 4*8*8)
	fillPoints(buf, 8, 8, w.Batches(), color.White, color.Black)

	lit := func(x, y int) bool { return buf[(y*8+x)*4] == 0xff }
	if !lit(1, 1) || !lit(6, 3) {
		t.Fatal("live particles inside the viewport must be plotted")
	}

	count := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if lit(x, y) {
				count++
			}
		}
	}
	if count != 2 {
		t.Fatalf("%d pixels lit, want 2 (out-of-viewport spawns skipped)", count)
	}
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0xff {
			t.Fatalf("background alpha at byte %d = %d, want opaque", i, buf[i])
		}
	}
}

func TestFillPointsIgnoresStaleSlots(t *testing.T) {
	// Bounds smaller than the viewport: the removed particle's stale column
	// data stays at a plottable coordinate and must still not be drawn.
	cfg := sim.DefaultConfig()
	cfg.Bounds = core.Rect{W: 4, H: 4}
	cfg.BatchCap = 4
	cfg.FieldIntensity = 0
	cfg.Workers = 1
	w := sim.NewWithConfig(cfg)

	w.Spawn(core.Vec2{X: 2, Y: 2}, core.Vec2{})
	w.Spawn(core.Vec2{X: 6, Y: 6}, core.Vec2{}) // outside the bounds, inside the viewport

	e := sim.NewEngine(w)
	defer e.Close()
	e.Step()

	if got := w.Batches()[0].Len(); got != 1 {
		t.Fatalf("batch population = %d after pass, want 1", got)
	}

	buf := make([]byte, 4*8*8)
	fillPoints(buf, 8, 8, w.Batches(), color.White, color.Black)

	lit := func(x, y int) bool { return buf[(y*8+x)*4] == 0xff }
	if !lit(2, 2) {
		t.Fatal("surviving particle must be plotted")
	}
	if lit(6, 6) {
		t.Fatal("stale slot of a removed particle must not be plotted")
	}
}
