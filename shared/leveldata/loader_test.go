package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="10" tileheight="10" infinite="0" nextlayerid="3" nextobjectid="6">
 <properties>
  <property name="y_edge" type="float" value="10"/>
 </properties>
 <objectgroup id="1" name="Obstacles">
  <object id="1" x="200" y="100">
   <polygon points="0,0 20,0 20,20"/>
  </object>
  <object id="2" x="0" y="0" width="40" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="3" x="100" y="100">
   <properties>
    <property name="team" value="left"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="300" y="50">
   <properties>
    <property name="team" value="Right"/>
   </properties>
   <point/>
  </object>
  <object id="5" x="350" y="50">
   <point/>
  </object>
 </objectgroup>
</map>
`

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLoadField(t *testing.T) {
	fsys := fstest.MapFS{"fields/test.tmx": {Data: []byte(testMap)}}
	f, err := LoadField(fsys, "fields/test.tmx")
	if err != nil {
		t.Fatalf("LoadField error = %v", err)
	}
	if f.Name != "test" {
		t.Fatalf("Name = %q, want test", f.Name)
	}
	if f.YEdge != 10 || f.Proportion != 2 || f.XEdge() != 20 {
		t.Fatalf("edges = %v/%v/%v, want 10/2/20", f.YEdge, f.Proportion, f.XEdge())
	}
	if len(f.Obstacles) != 2 {
		t.Fatalf("%d obstacles, want 2", len(f.Obstacles))
	}

	// Map centre (200,100) is the field origin; y flips.
	tri := f.Obstacles[0]
	if len(tri) != 3 || !near(tri[0].X, 0) || !near(tri[0].Y, 0) || !near(tri[2].X, 2) || !near(tri[2].Y, -2) {
		t.Fatalf("triangle = %v, want (0,0) ... (2,-2)", tri)
	}
	rect := f.Obstacles[1]
	if len(rect) != 4 || !near(rect[0].X, -20) || !near(rect[0].Y, 10) {
		t.Fatalf("rectangle = %v, want top-left corner (-20,10)", rect)
	}

	if len(f.Spawns) != 2 {
		t.Fatalf("%d spawns, want 2 (untagged point ignored)", len(f.Spawns))
	}
	right := f.SpawnsFor(1)
	if len(right) != 1 || !near(right[0].X, 10) || !near(right[0].Y, 5) {
		t.Fatalf("right spawns = %v, want one at (10,5)", right)
	}
}

func TestLoadFieldNeedsBothTeams(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="2" tilewidth="10" tileheight="10">
 <objectgroup id="1" name="Spawns">
  <object id="1" x="5" y="5">
   <properties>
    <property name="team" value="left"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"one.tmx": {Data: []byte(src)}}
	if _, err := LoadField(fsys, "one.tmx"); !errors.Is(err, ErrNoSpawns) {
		t.Fatalf("LoadField error = %v, want ErrNoSpawns", err)
	}
}

func TestLoadAllFields(t *testing.T) {
	fsys := fstest.MapFS{
		"fields/b.tmx": {Data: []byte(testMap)},
		"fields/a.tmx": {Data: []byte(testMap)},
	}
	fields, names, err := LoadAllFields(fsys, "fields")
	if err != nil {
		t.Fatalf("LoadAllFields error = %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v, want [a b]", names)
	}
	if fields["a"] == nil {
		t.Fatalf("field a missing")
	}
	if _, _, err := LoadAllFields(fstest.MapFS{}, "fields"); err == nil {
		t.Fatalf("LoadAllFields on empty fs error = nil, want error")
	}
}

func TestLoadFieldDefaultYEdge(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="2" tilewidth="10" tileheight="10">
 <objectgroup id="1" name="Spawns">
  <object id="1" x="5" y="5">
   <properties>
    <property name="team" value="left"/>
   </properties>
   <point/>
  </object>
  <object id="2" x="35" y="5">
   <properties>
    <property name="team" value="right"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"plain.tmx": {Data: []byte(src)}}
	f, err := LoadField(fsys, "plain.tmx")
	if err != nil {
		t.Fatalf("LoadField error = %v", err)
	}
	if f.YEdge != defaultYEdge {
		t.Fatalf("YEdge = %v, want %v", f.YEdge, defaultYEdge)
	}
}
