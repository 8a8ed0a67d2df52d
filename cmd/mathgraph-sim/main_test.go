package main

import (
	"testing"

	"github.com/automoto/mathgraph/components"
	"github.com/automoto/mathgraph/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestParseRoster(t *testing.T) {
	roster, err := parseRoster("ada:left, bob:R ,cy:right")
	if err != nil {
		t.Fatalf("parseRoster: %v", err)
	}
	if len(roster) != 3 {
		t.Fatalf("len = %d, want 3", len(roster))
	}
	if roster[0].Name != "ada" || roster[0].Team != components.TeamLeft {
		t.Fatalf("roster[0] = %+v", roster[0])
	}
	if roster[1].Name != "bob" || roster[1].Team != components.TeamRight {
		t.Fatalf("roster[1] = %+v", roster[1])
	}
	for _, p := range roster {
		if !p.Bot {
			t.Fatalf("%s is not a bot", p.Name)
		}
	}

	for _, bad := range []string{"", "ada", ":left", "ada:up"} {
		if _, err := parseRoster(bad); err == nil {
			t.Fatalf("parseRoster(%q) succeeded", bad)
		}
	}
}

func TestRasterize(t *testing.T) {
	s := scene{
		bounds: gamemath.Bounds{XEdge: 10, YEdge: 5},
		obstacles: []gamemath.Polygon{{
			{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 4}, {X: 2, Y: 4},
		}},
		trail: []dmath.Vec2{{X: 0, Y: 4}},
		players: []components.PlayerData{
			{ID: 0, Team: components.TeamLeft, Alive: true, Position: dmath.Vec2{X: -8, Y: 0}},
			{ID: 1, Team: components.TeamRight, Alive: false, Position: dmath.Vec2{X: 8, Y: -4}},
			{ID: 2, Team: components.TeamRight, Alive: true, Position: dmath.Vec2{X: 8, Y: 2}},
		},
		activeID: 0,
	}
	grid := rasterize(s, 40, 10)

	cases := []struct {
		col, row int
		want     cellKind
	}{
		{0, 0, cellEmpty},
		{20, 7, cellAxis},
		{0, 5, cellAxis},
		{28, 1, cellObstacle},
		{20, 1, cellTrail},
		{4, 5, cellActive},
		{36, 9, cellDead},
		{36, 3, cellRight},
	}
	for _, c := range cases {
		if got := grid[c.row][c.col]; got != c.want {
			t.Fatalf("cell (%d,%d) = %d, want %d", c.col, c.row, got, c.want)
		}
	}
}

func TestRasterizeEmptyGrid(t *testing.T) {
	if got := rasterize(scene{bounds: gamemath.Bounds{XEdge: 1, YEdge: 1}}, 0, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
