package factory

import (
	"time"

	"github.com/automoto/skidmark/archetypes"
	"github.com/automoto/skidmark/components"
	"github.com/automoto/skidmark/shared/trackdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTrack(ecs *ecs.ECS, t *trackdata.Track, background *ebiten.Image) *donburi.Entry {
	track := archetypes.Track.Spawn(ecs)
	components.Track.SetValue(track, components.TrackData{Track: t, Background: background})
	return track
}

// CreateRace creates the lap state for a track. bestLap is the stored record
// for this track and profile, zero when there is none.
func CreateRace(ecs *ecs.ECS, t *trackdata.Track, profile string, bestLap time.Duration) *donburi.Entry {
	race := archetypes.Race.Spawn(ecs)
	components.Race.SetValue(race, components.RaceData{
		Track:       t.Name,
		Profile:     profile,
		Checkpoints: len(t.Checkpoints),
		BestLap:     bestLap,
	})
	return race
}
