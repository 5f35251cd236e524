package components

import (
	"github.com/automoto/skidmark/shared/trackdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type TrackData struct {
	*trackdata.Track
	Background *ebiten.Image // nil draws flat asphalt
}

var Track = donburi.NewComponentType[TrackData]()
