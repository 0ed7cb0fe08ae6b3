package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from a map.
const (
	SolidLayer     = "solid"
	BodiesGroup    = "Bodies"
	PlatformsGroup = "Platforms"
)

// LoadScene parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadScene(fsys fs.FS, tmxPath string) (*SceneData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	data := &SceneData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	mapH := float64(data.MapHeight)

	// Solid tiles become walls
	edge := float64(levelMap.TileWidth)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				data.Walls = append(data.Walls, Wall{
					X:    float64(x)*edge + edge/2,
					Y:    mapH - (float64(y)*edge + edge/2),
					Edge: edge,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case BodiesGroup:
			for _, o := range og.Objects {
				spawn, err := parseBody(o, mapH)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
				}
				data.Bodies = append(data.Bodies, spawn)
			}
		case PlatformsGroup:
			for _, o := range og.Objects {
				spawn, err := parsePlatform(o, mapH)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
				}
				data.Platforms = append(data.Platforms, spawn)
			}
		}
	}

	return data, nil
}

func parseBody(o *tiled.Object, mapH float64) (BodySpawn, error) {
	spawn := BodySpawn{
		Shape:  o.Properties.GetString("shape"),
		X:      o.X + o.Width/2,
		Y:      mapH - (o.Y + o.Height/2),
		Static: o.Properties.GetString("static") == "true",
	}

	switch spawn.Shape {
	case "", "circle":
		spawn.Shape = "circle"
		spawn.Size = o.Width / 2
	case "square":
		spawn.Size = o.Width
	default:
		return BodySpawn{}, fmt.Errorf("unknown shape %q", spawn.Shape)
	}
	if spawn.Size <= 0 {
		return BodySpawn{}, fmt.Errorf("%s has no size", spawn.Shape)
	}

	var err error
	if spawn.Mass, err = floatProperty(o, "mass"); err != nil {
		return BodySpawn{}, err
	}
	if spawn.VX, err = floatProperty(o, "vx"); err != nil {
		return BodySpawn{}, err
	}
	if spawn.VY, err = floatProperty(o, "vy"); err != nil {
		return BodySpawn{}, err
	}
	return spawn, nil
}

func parsePlatform(o *tiled.Object, mapH float64) (PlatformSpawn, error) {
	spawn := PlatformSpawn{
		FromX: o.X + o.Width/2,
		FromY: mapH - (o.Y + o.Height/2),
		Edge:  o.Width,
	}
	if spawn.Edge <= 0 {
		return PlatformSpawn{}, fmt.Errorf("platform has no size")
	}

	dx, err := floatProperty(o, "dx")
	if err != nil {
		return PlatformSpawn{}, err
	}
	dy, err := floatProperty(o, "dy")
	if err != nil {
		return PlatformSpawn{}, err
	}
	// Offsets are authored in map space, Y down.
	spawn.ToX = spawn.FromX + dx
	spawn.ToY = spawn.FromY - dy

	if spawn.Seconds, err = floatProperty(o, "seconds"); err != nil {
		return PlatformSpawn{}, err
	}
	if spawn.Seconds <= 0 {
		spawn.Seconds = 2
	}
	return spawn, nil
}

// floatProperty returns 0 for a missing property.
func floatProperty(o *tiled.Object, name string) (float64, error) {
	raw := o.Properties.GetString(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}

// LoadAllScenes discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllScenes(fsys fs.FS, levelsDir string) (map[string]*SceneData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	scenes := make(map[string]*SceneData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadScene(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		scenes[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return scenes, names, nil
}
