package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeYAML(t *testing.T) {
	f, err := Decode(".yaml", []byte("field:\n  y_edge: 20\nmatch:\n  friendly_fire: false\n"))
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if f.Field.YEdge != 20 {
		t.Fatalf("YEdge = %v, want 20", f.Field.YEdge)
	}
	if f.Field.Proportion != Field.Proportion {
		t.Fatalf("Proportion = %v, want default %v", f.Field.Proportion, Field.Proportion)
	}
	if f.Match.FriendlyFire {
		t.Fatalf("FriendlyFire = true, want false")
	}
	if len(f.Obstacle.Palette) != len(Obstacle.Palette) {
		t.Fatalf("Palette lost on decode")
	}
}

func TestDecodeTOML(t *testing.T) {
	src := "[shot]\nsamples_per_tick = 6\n\n[bot]\nformulas = [\"x\", \"sin x\"]\n"
	f, err := Decode("toml", []byte(src))
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if f.Shot.SamplesPerTick != 6 {
		t.Fatalf("SamplesPerTick = %d, want 6", f.Shot.SamplesPerTick)
	}
	if len(f.Bot.Formulas) != 2 || f.Bot.Formulas[1] != "sin x" {
		t.Fatalf("Formulas = %v, want [x sin x]", f.Bot.Formulas)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		ext, src string
	}{
		{".json", "{}"},
		{".yaml", "field: [1, 2"},
		{".yaml", "field:\n  y_edge: -1\n"},
		{".toml", "[match]\nmax_turn_time = 0\n"},
		{".toml", "[bot]\nmin_delay = 5.0\nmax_delay = 1.0\n"},
		{".yaml", "match:\n  roster:\n    - {name: a, team: left}\n"},
		{".toml", "[[match.roster]]\nname = \"a\"\nteam = \"up\"\n"},
	}
	for _, tt := range tests {
		if _, err := Decode(tt.ext, []byte(tt.src)); err == nil {
			t.Fatalf("Decode(%s, %q) error = nil, want error", tt.ext, tt.src)
		}
	}
}

func TestLoadFileApplies(t *testing.T) {
	saved := current()
	defer saved.apply()

	path := filepath.Join(t.TempDir(), "mathgraph.yml")
	if err := os.WriteFile(path, []byte("blast:\n  radius: 2.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile error = %v", err)
	}
	if Blast.Radius != 2.5 {
		t.Fatalf("Blast.Radius = %v, want 2.5", Blast.Radius)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[field]\ny_edge = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(bad); err == nil {
		t.Fatalf("LoadFile(bad) error = nil, want error")
	}
	if Field.YEdge != saved.Field.YEdge {
		t.Fatalf("Field.YEdge = %v after failed load, want %v", Field.YEdge, saved.Field.YEdge)
	}
}

func TestDecodeKeys(t *testing.T) {
	saved := current()
	defer saved.apply()

	f, err := Decode(".toml", []byte("[keys]\nfire = [\"Space\"]\n"))
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	f.apply()
	if got := Input.Bindings[ActionFire].Keys; len(got) != 1 || got[0] != "Space" {
		t.Fatalf("fire keys = %v, want [Space]", got)
	}
	if got := Input.Bindings[ActionSkip].Keys; len(got) != 1 || got[0] != "F5" {
		t.Fatalf("skip keys = %v, want [F5]", got)
	}

	if _, err := Decode(".yaml", []byte("keys:\n  jump: [W]\n")); err == nil {
		t.Fatalf("Decode with unknown action error = nil, want error")
	}
}

func TestRejectedDecodeLeavesGlobals(t *testing.T) {
	roster := append([]RosterEntry(nil), Match.Roster...)
	formulas := append([]string(nil), Bot.Formulas...)

	srcs := []struct{ ext, src string }{
		{".toml", "[[match.roster]]\nname = \"a\"\nteam = \"up\"\n"},
		{".yaml", "match:\n  roster:\n    - {name: a, team: up}\n    - {name: b, team: up}\nbot:\n  formulas: [\"1/0\"]\n  min_delay: 5\n  max_delay: 1\n"},
	}
	for _, s := range srcs {
		if _, err := Decode(s.ext, []byte(s.src)); err == nil {
			t.Fatalf("Decode(%s) error = nil, want error", s.ext)
		}
	}

	if len(Match.Roster) != len(roster) {
		t.Fatalf("len(Roster) = %d, want %d", len(Match.Roster), len(roster))
	}
	for i := range roster {
		if Match.Roster[i] != roster[i] {
			t.Fatalf("Roster[%d] = %+v, want %+v", i, Match.Roster[i], roster[i])
		}
	}
	for i := range formulas {
		if Bot.Formulas[i] != formulas[i] {
			t.Fatalf("Formulas[%d] = %q, want %q", i, Bot.Formulas[i], formulas[i])
		}
	}
}
