package systems

import (
	"time"

	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints moves the player's probe onto the chassis, passes
// checkpoints in lap order and completes laps on the finish line.
func UpdateCheckpoints(e *ecs.ECS) {
	raceEntry, ok := components.Race.First(e.World)
	if !ok {
		return
	}
	race := components.Race.Get(raceEntry)
	race.Clock += cfg.C.FrameDuration()

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	data := components.Vehicle.Get(playerEntry)
	if data.Destroyed() || data.Probe == nil {
		return
	}
	syncProbe(data)

	onFinish := false
	if check := data.Probe.Check(0, 0, tags.ResolvCheckpoint, tags.ResolvFinishLine); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvCheckpoint) {
			entry, ok := checkpointEntry(obj)
			if !ok {
				continue
			}
			cp := components.Checkpoint.Get(entry)
			if PassCheckpoint(race, cp.Index) {
				cp.Passed = true
				logger.Debug().Int("order", cp.Order).Int("next", race.Next).Msg("checkpoint passed")
			}
		}
		onFinish = len(check.ObjectsByTags(tags.ResolvFinishLine)) > 0
	}

	finishEntry, ok := components.FinishLine.First(e.World)
	if !ok {
		return
	}
	finish := components.FinishLine.Get(finishEntry)
	entered := onFinish && !finish.Occupied
	finish.Occupied = onFinish
	if !entered {
		return
	}

	lap, completed := CrossFinish(race)
	if !completed {
		return
	}
	resetCheckpoints(e)

	if _, err := RecordLap(race.Profile, race.Track, lap); err != nil {
		logger.Warn().Err(err).Msg("could not save lap record")
	}
	logger.Info().
		Int("lap", race.Lap).
		Dur("time", lap).
		Bool("best", race.NewBest).
		Msg("lap completed")
}

func checkpointEntry(obj *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() || !entry.HasComponent(components.Checkpoint) {
		return nil, false
	}
	return entry, true
}

// syncProbe centers the trigger probe on the chassis.
func syncProbe(data *components.VehicleData) {
	if data.Probe == nil {
		return
	}
	pos := data.GetPosition()
	data.Probe.X = cfg.C.ToPixels(pos.X) - data.Probe.W/2
	data.Probe.Y = cfg.C.ToPixels(pos.Y) - data.Probe.H/2
	data.Probe.Update()
}

func resetCheckpoints(e *ecs.ECS) {
	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		components.Checkpoint.Get(entry).Passed = false
	})
}

// PassCheckpoint advances the race when index is the next checkpoint of the
// lap. Out-of-order checkpoints are ignored. Before the first finish-line
// crossing nothing counts.
func PassCheckpoint(race *components.RaceData, index int) bool {
	if !race.Started || index != race.Next || race.Next >= race.Checkpoints {
		return false
	}
	race.Next++
	return true
}

// CrossFinish handles entering the finish line. The first crossing starts
// timing. Later crossings complete a lap only when every checkpoint was
// passed; the lap time is returned with completed set.
func CrossFinish(race *components.RaceData) (lap time.Duration, completed bool) {
	if !race.Started {
		race.Started = true
		race.LapStart = race.Clock
		race.Next = 0
		return 0, false
	}
	if race.Next < race.Checkpoints {
		return 0, false
	}

	lap = race.Clock - race.LapStart
	race.Lap++
	race.LastLap = lap
	race.LapStart = race.Clock
	race.Next = 0
	race.NewBest = race.BestLap == 0 || lap < race.BestLap
	if race.NewBest {
		race.BestLap = lap
	}
	return lap, true
}

// CurrentLap is the running time of the lap in progress.
func CurrentLap(race *components.RaceData) time.Duration {
	if !race.Started {
		return 0
	}
	return race.Clock - race.LapStart
}
