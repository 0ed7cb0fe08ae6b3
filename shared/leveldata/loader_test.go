package leveldata

import (
	"strconv"
	"testing"
	"testing/fstest"
)

const tileset = ` <tileset firstgid="1" name="blocks" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="blocks.png" width="16" height="16"/>
 </tileset>
`

func tmx(width, height int, tiles, objects string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="` +
		itoa(width) + `" height="` + itoa(height) + `" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="10">
` + tileset + ` <layer id="1" name="solid" width="` + itoa(width) + `" height="` + itoa(height) + `">
  <data encoding="csv">
` + tiles + `
</data>
 </layer>
` + objects + `</map>
`
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func TestLoadScene(t *testing.T) {
	objects := ` <objectgroup id="2" name="Bodies">
  <object id="1" x="16" y="0" width="8" height="8">
   <properties>
    <property name="mass" value="3.5"/>
    <property name="vx" value="-2"/>
   </properties>
   <ellipse/>
  </object>
  <object id="2" x="32" y="8" width="10" height="10">
   <properties>
    <property name="shape" value="square"/>
    <property name="static" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Platforms">
  <object id="3" x="0" y="16" width="16" height="16">
   <properties>
    <property name="dx" value="32"/>
    <property name="dy" value="-8"/>
    <property name="seconds" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
`
	fsys := fstest.MapFS{
		"levels/one.tmx": {Data: []byte(tmx(4, 3, "0,0,0,0,\n0,0,0,0,\n1,1,0,1", objects))},
	}

	data, err := LoadScene(fsys, "levels/one.tmx")
	if err != nil {
		t.Fatalf("LoadScene() error = %v", err)
	}

	if data.MapWidth != 64 || data.MapHeight != 48 {
		t.Errorf("map size = %dx%d, want 64x48", data.MapWidth, data.MapHeight)
	}

	wantWalls := []Wall{
		{X: 8, Y: 8, Edge: 16},
		{X: 24, Y: 8, Edge: 16},
		{X: 56, Y: 8, Edge: 16},
	}
	if len(data.Walls) != len(wantWalls) {
		t.Fatalf("got %d walls, want %d", len(data.Walls), len(wantWalls))
	}
	for i, w := range wantWalls {
		if data.Walls[i] != w {
			t.Errorf("wall %d = %+v, want %+v", i, data.Walls[i], w)
		}
	}

	if len(data.Bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(data.Bodies))
	}
	circle := data.Bodies[0]
	if circle.Shape != "circle" || circle.Size != 4 || circle.X != 20 || circle.Y != 44 ||
		circle.Mass != 3.5 || circle.VX != -2 || circle.Static {
		t.Errorf("circle = %+v", circle)
	}
	square := data.Bodies[1]
	if square.Shape != "square" || square.Size != 10 || square.X != 37 || square.Y != 35 || !square.Static {
		t.Errorf("square = %+v", square)
	}

	if len(data.Platforms) != 1 {
		t.Fatalf("got %d platforms, want 1", len(data.Platforms))
	}
	want := PlatformSpawn{FromX: 8, FromY: 24, ToX: 40, ToY: 32, Edge: 16, Seconds: 1.5}
	if data.Platforms[0] != want {
		t.Errorf("platform = %+v, want %+v", data.Platforms[0], want)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name    string
		objects string
	}{
		{
			name: "unknown_shape",
			objects: ` <objectgroup id="2" name="Bodies">
  <object id="1" x="0" y="0" width="8" height="8">
   <properties><property name="shape" value="triangle"/></properties>
  </object>
 </objectgroup>
`,
		},
		{
			name: "bad_mass",
			objects: ` <objectgroup id="2" name="Bodies">
  <object id="1" x="0" y="0" width="8" height="8">
   <properties><property name="mass" value="heavy"/></properties>
  </object>
 </objectgroup>
`,
		},
		{
			name: "sizeless_body",
			objects: ` <objectgroup id="2" name="Bodies">
  <object id="1" x="0" y="0"/>
 </objectgroup>
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"bad.tmx": {Data: []byte(tmx(2, 1, "0,0", tt.objects))},
			}
			if _, err := LoadScene(fsys, "bad.tmx"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	if _, err := LoadScene(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadAllScenes(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":      {Data: []byte(tmx(2, 1, "1,0", ""))},
		"levels/a.tmx":      {Data: []byte(tmx(2, 1, "1,1", ""))},
		"levels/readme.txt": {Data: []byte("not a map")},
	}

	scenes, names, err := LoadAllScenes(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllScenes() error = %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
	if len(scenes["a"].Walls) != 2 || len(scenes["b"].Walls) != 1 {
		t.Errorf("walls: a=%d b=%d", len(scenes["a"].Walls), len(scenes["b"].Walls))
	}

	if _, _, err := LoadAllScenes(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected an error for an empty directory")
	}
}
