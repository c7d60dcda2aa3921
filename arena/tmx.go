package arena

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

const (
	wallLayer   = "walls"
	spawnGroup  = "Spawns"
	spawnIndex  = "spawnIndex"
	spawnFacing = "facing" // degrees, 0 = +Z
)

// LoadLayout parses a TMX arena. Every non-empty tile of the "walls" layer
// becomes a solid block and every object of the "Spawns" group a spawn point.
// One tile is cfg.TileUnits world units. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string, cfg config.ArenaConfig) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	unit := cfg.TileUnits
	if unit <= 0 {
		unit = 1
	}
	layout := &Layout{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width) * unit,
		Depth: float64(levelMap.Height) * unit,
	}
	// Pixel coordinates to centred world coordinates.
	toWorld := func(px, py float64) (float64, float64) {
		x := px/float64(levelMap.TileWidth)*unit - layout.Width/2
		z := py/float64(levelMap.TileHeight)*unit - layout.Depth/2
		return x, z
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != wallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				minX, minZ := toWorld(float64(x*levelMap.TileWidth), float64(y*levelMap.TileHeight))
				layout.Walls = append(layout.Walls, Rect{
					MinX: minX,
					MinZ: minZ,
					MaxX: minX + unit,
					MaxZ: minZ + unit,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			x, z := toWorld(o.X, o.Y)
			layout.Spawns = append(layout.Spawns, Spawn{
				Position: gamemath.Vec3{X: x, Z: z},
				Facing:   gamemath.WrapAngle(o.Properties.GetFloat(spawnFacing) * math.Pi / 180),
				Index:    o.Properties.GetInt(spawnIndex),
			})
		}
	}

	// Sort spawns by index, then left-to-right for consistent assignment
	sort.SliceStable(layout.Spawns, func(i, j int) bool {
		a, b := layout.Spawns[i], layout.Spawns[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.Position.X < b.Position.X
	})

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return layout, nil
}

// LoadAllLayouts discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllLayouts(fsys fs.FS, dir string, cfg config.ArenaConfig) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		l, err := LoadLayout(fsys, path, cfg)
		if err != nil {
			return nil, nil, err
		}
		layouts[l.Name] = l
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return layouts, names, nil
}
