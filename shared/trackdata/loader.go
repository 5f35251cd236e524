package trackdata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupWalls       = "Walls"
	GroupSpawn       = "VehicleSpawn"
	GroupCheckpoints = "Checkpoints"
	GroupFinishLine  = "FinishLine"
)

var (
	// ErrNoSpawn is returned for a track without a VehicleSpawn object.
	ErrNoSpawn = errors.New("track has no vehicle spawn")
	// ErrNoTracks is returned when a directory holds no .tmx files.
	ErrNoTracks = errors.New("no .tmx tracks found")
)

// LoadTrack parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTrack(fsys fs.FS, tmxPath string) (*Track, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	t := &Track{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Path:   tmxPath,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	spawned := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				t.Walls = append(t.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			if len(og.Objects) > 1 {
				return nil, fmt.Errorf("track %s: %d vehicle spawns, want 1", tmxPath, len(og.Objects))
			}
			o := og.Objects[0]
			t.Spawn = SpawnPoint{
				X:        o.X,
				Y:        o.Y,
				Rotation: o.Rotation,
				Profile:  o.Properties.GetString("profile"),
			}
			spawned = true
		case GroupCheckpoints:
			for _, o := range og.Objects {
				t.Checkpoints = append(t.Checkpoints, Checkpoint{
					Rect:  Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Order: o.Properties.GetInt("order"),
				})
			}
		case GroupFinishLine:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			t.FinishLine = &Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
		}
	}

	if !spawned {
		return nil, fmt.Errorf("track %s: %w", tmxPath, ErrNoSpawn)
	}

	sort.SliceStable(t.Checkpoints, func(i, j int) bool {
		return t.Checkpoints[i].Order < t.Checkpoints[j].Order
	})
	for i := 1; i < len(t.Checkpoints); i++ {
		if t.Checkpoints[i].Order == t.Checkpoints[i-1].Order {
			return nil, fmt.Errorf("track %s: duplicate checkpoint order %d", tmxPath, t.Checkpoints[i].Order)
		}
	}

	return t, nil
}

// LoadAllTracks loads every .tmx file in dir and returns them keyed by stem
// name plus a sorted list of names.
func LoadAllTracks(fsys fs.FS, dir string) (map[string]*Track, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", dir, ErrNoTracks)
	}

	tracks := make(map[string]*Track, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		t, err := LoadTrack(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		tracks[t.Name] = t
		names = append(names, t.Name)
	}

	sort.Strings(names)
	return tracks, names, nil
}
