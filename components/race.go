package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// RaceData is the lap state of the player's run on the current track.
type RaceData struct {
	Track       string
	Profile     string
	Checkpoints int // checkpoints per lap
	Next        int // index of the next checkpoint to pass

	Clock    time.Duration
	LapStart time.Duration
	Started  bool // timing starts on the first finish-line crossing
	Lap      int  // completed laps
	LastLap  time.Duration
	BestLap  time.Duration // zero when no lap has been recorded
	NewBest  bool          // last completed lap beat the stored record
}

var Race = donburi.NewComponentType[RaceData]()
