package core

import "testing"

func TestRectContainsHalfOpenEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 800, H: 600}

	inside := []Vec2{{X: 0, Y: 0}, {X: 400, Y: 300}, {X: 799.999, Y: 599.999}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Fatalf("%v should be inside %v", p, r)
		}
	}

	outside := []Vec2{
		{X: 800, Y: 300},
		{X: 400, Y: 600},
		{X: -0.001, Y: 300},
		{X: 400, Y: -0.001},
	}
	for _, p := range outside {
		if r.Contains(p) {
			t.Fatalf("%v should be outside %v", p, r)
		}
	}
}

func TestRectContainsOffsetOrigin(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 5}
	if !r.Contains(Vec2{X: 10, Y: 20}) {
		t.Fatal("minimum corner is inclusive")
	}
	if r.Contains(Vec2{X: 15, Y: 24}) {
		t.Fatal("maximum x edge is exclusive")
	}
}
