package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	obstacleGroup = "Obstacles"
	spawnGroup    = "Spawns"

	defaultYEdge = 16
)

// ErrNoSpawns is returned for a preset that lacks a spawn for either team.
var ErrNoSpawns = errors.New("preset needs at least one spawn per team")

// LoadField parses a TMX preset. It takes an fs.FS so callers can pass
// embed.FS (client) or os.DirFS (simulator).
//
// The map's pixel area becomes the field; the y_edge map property sets the
// field half-height (16 when absent). Objects in the "Obstacles" group become
// obstacles (polygons, or rectangles when the object has no polygon); points
// in the "Spawns" group with a team property of "left" or "right" become
// spawn points.
func LoadField(fsys fs.FS, tmxPath string) (*Field, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	if mapW <= 0 || mapH <= 0 {
		return nil, fmt.Errorf("TMX %s has an empty map area", tmxPath)
	}

	var yEdge float64
	if levelMap.Properties != nil {
		yEdge = levelMap.Properties.GetFloat("y_edge")
	}
	if yEdge <= 0 {
		yEdge = defaultYEdge
	}
	field := &Field{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		YEdge:      yEdge,
		Proportion: mapW / mapH,
	}
	toField := func(px, py float64) Vertex {
		return Vertex{
			X: (px/mapW*2 - 1) * field.XEdge(),
			Y: (1 - py/mapH*2) * field.YEdge,
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case obstacleGroup:
			for _, o := range og.Objects {
				if poly := objectOutline(o); len(poly) >= 3 {
					verts := make([]Vertex, len(poly))
					for i, p := range poly {
						verts[i] = toField(p.X, p.Y)
					}
					field.Obstacles = append(field.Obstacles, verts)
				}
			}
		case spawnGroup:
			for _, o := range og.Objects {
				team, ok := parseTeam(o.Properties.GetString("team"))
				if !ok {
					continue
				}
				v := toField(o.X, o.Y)
				field.Spawns = append(field.Spawns, Spawn{X: v.X, Y: v.Y, Team: team})
			}
		}
	}

	if len(field.SpawnsFor(0)) == 0 || len(field.SpawnsFor(1)) == 0 {
		return nil, fmt.Errorf("TMX %s: %w", tmxPath, ErrNoSpawns)
	}
	return field, nil
}

// objectOutline returns the object's outline in map pixels.
func objectOutline(o *tiled.Object) []Vertex {
	if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
		var out []Vertex
		for _, p := range *o.Polygons[0].Points {
			out = append(out, Vertex{X: o.X + p.X, Y: o.Y + p.Y})
		}
		return out
	}
	if o.Width > 0 && o.Height > 0 {
		return []Vertex{
			{X: o.X, Y: o.Y},
			{X: o.X + o.Width, Y: o.Y},
			{X: o.X + o.Width, Y: o.Y + o.Height},
			{X: o.X, Y: o.Y + o.Height},
		}
	}
	return nil
}

func parseTeam(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "left":
		return 0, true
	case "right":
		return 1, true
	default:
		return 0, false
	}
}

// LoadAllFields discovers all .tmx files in dir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllFields(fsys fs.FS, dir string) (map[string]*Field, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	fields := make(map[string]*Field, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		f, err := LoadField(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		fields[f.Name] = f
		names = append(names, f.Name)
	}

	sort.Strings(names)
	return fields, names, nil
}
