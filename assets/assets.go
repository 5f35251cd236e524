package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/skidmark/shared/trackdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/rs/zerolog"
)

var (
	//go:embed all:tracks
	trackFS embed.FS
)

// FS returns the embedded asset tree.
func FS() fs.FS {
	return trackFS
}

// LoadTracks loads every embedded track in dir.
func LoadTracks(dir string) (map[string]*trackdata.Track, []string, error) {
	return trackdata.LoadAllTracks(trackFS, dir)
}

// LoadBackground renders the track's tile layers marked with the "render"
// property into one image. Tracks drawn only from object groups have no tile
// layers and get a nil image; the renderer falls back to flat asphalt.
func LoadBackground(t *trackdata.Track, log zerolog.Logger) (*ebiten.Image, error) {
	m, err := tiled.LoadFile(t.Path, tiled.WithFileSystem(trackFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", t.Path, err)
	}

	var layers []int
	for i, layer := range m.Layers {
		if layer.Properties.GetBool("render") && layer.Opacity > 0 {
			layers = append(layers, i)
		}
	}
	if len(layers) == 0 {
		return nil, nil
	}

	renderer, err := render.NewRendererWithFileSystem(m, trackFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", t.Path, err)
	}

	bg := ebiten.NewImage(t.Width, t.Height)
	for _, i := range layers {
		if err := renderer.RenderLayer(i); err != nil {
			log.Warn().Err(err).Int("layer", i).Str("track", t.Name).Msg("skipping layer")
			renderer.Clear()
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(m.Layers[i].Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return bg, nil
}
