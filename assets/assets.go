package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/firstperson/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
	"golang.org/x/sync/errgroup"
)

//go:embed all:levels
var assetFS embed.FS

// DefaultArena is the level loaded when none is named.
const DefaultArena = "arena"

// Object group names read from the TMX.
const (
	groupSolids = "Solids"
	groupSpawns = "PlayerSpawn"
)

var ErrNoSpawn = errors.New("no player spawn")

// Spawn is a player start: feet position and initial yaw in degrees.
type Spawn struct {
	Name     string
	Position mgl64.Vec3
	Yaw      float64
}

// Arena is a level read from Tiled. The map plane is the world's XZ plane
// with one tile per metre; solid heights come from object properties.
type Arena struct {
	Name   string
	Width  float64 // X extent in metres
	Depth  float64 // Z extent in metres
	Boxes  []physics.Box
	Spawns []Spawn
}

// LoadArena parses the TMX at tmxPath inside fsys. It takes an fs.FS so
// callers can pass the embedded levels or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("%s: tile size must be positive", tmxPath)
	}

	// pixels per metre on each map axis
	sx := float64(levelMap.TileWidth)
	sz := float64(levelMap.TileHeight)

	arena := &Arena{
		Name:  strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupSolids:
			for _, o := range og.Objects {
				bottom := o.Properties.GetFloat("bottom")
				top := o.Properties.GetFloat("top")
				if top <= bottom {
					return nil, fmt.Errorf("%s: solid %q: top %v must be above bottom %v", tmxPath, o.Name, top, bottom)
				}
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("%s: solid %q has no area", tmxPath, o.Name)
				}
				arena.Boxes = append(arena.Boxes, physics.Box{
					Min: mgl64.Vec3{o.X / sx, bottom, o.Y / sz},
					Max: mgl64.Vec3{(o.X + o.Width) / sx, top, (o.Y + o.Height) / sz},
				})
			}
		case groupSpawns:
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, Spawn{
					Name:     o.Name,
					Position: mgl64.Vec3{o.X / sx, o.Properties.GetFloat("y"), o.Y / sz},
					Yaw:      o.Properties.GetFloat("yaw"),
				})
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	return arena, nil
}

// LoadArenas loads every .tmx in dir, keyed by file stem, plus the sorted
// list of names.
func LoadArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	// Levels are independent, so they parse concurrently.
	loaded := make([]*Arena, len(matches))
	var g errgroup.Group
	for i, p := range matches {
		g.Go(func() error {
			a, err := LoadArena(fsys, p)
			if err != nil {
				return err
			}
			loaded[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	arenas := make(map[string]*Arena, len(loaded))
	names := make([]string, 0, len(loaded))
	for _, a := range loaded {
		arenas[a.Name] = a
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return arenas, names, nil
}

// MustLoadArena loads an embedded level by name and panics if it is missing
// or malformed.
func MustLoadArena(name string) *Arena {
	a, err := LoadArena(assetFS, path.Join("levels", name+".tmx"))
	if err != nil {
		panic(err)
	}
	return a
}

// FS exposes the embedded levels.
func FS() fs.FS {
	return assetFS
}
