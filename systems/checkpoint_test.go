package systems

import (
	"testing"
	"time"

	"github.com/automoto/skidmark/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLapFlow(t *testing.T) {
	race := &components.RaceData{Checkpoints: 2}

	assert.False(t, PassCheckpoint(race, 0), "nothing counts before the first crossing")

	race.Clock = 2 * time.Second
	lap, completed := CrossFinish(race)
	assert.False(t, completed)
	assert.Zero(t, lap)
	assert.True(t, race.Started)
	assert.Equal(t, 2*time.Second, race.LapStart)

	t.Run("out of order checkpoint is ignored", func(t *testing.T) {
		assert.False(t, PassCheckpoint(race, 1))
		assert.Equal(t, 0, race.Next)
	})

	require.True(t, PassCheckpoint(race, 0))
	assert.False(t, PassCheckpoint(race, 0), "a checkpoint counts once per lap")

	t.Run("finish before every checkpoint does not complete", func(t *testing.T) {
		race.Clock = 10 * time.Second
		_, completed := CrossFinish(race)
		assert.False(t, completed)
		assert.Equal(t, 0, race.Lap)
	})

	require.True(t, PassCheckpoint(race, 1))
	race.Clock = 32 * time.Second
	lap, completed = CrossFinish(race)
	require.True(t, completed)
	assert.Equal(t, 30*time.Second, lap)
	assert.Equal(t, 1, race.Lap)
	assert.Equal(t, 0, race.Next)
	assert.Equal(t, lap, race.LastLap)
	assert.Equal(t, lap, race.BestLap)
	assert.True(t, race.NewBest)

	// slower second lap
	PassCheckpoint(race, 0)
	PassCheckpoint(race, 1)
	race.Clock = 72 * time.Second
	lap, completed = CrossFinish(race)
	require.True(t, completed)
	assert.Equal(t, 40*time.Second, lap)
	assert.Equal(t, 30*time.Second, race.BestLap)
	assert.False(t, race.NewBest)
}

func TestCrossFinishWithoutCheckpoints(t *testing.T) {
	race := &components.RaceData{}
	CrossFinish(race)
	race.Clock = 5 * time.Second

	lap, completed := CrossFinish(race)
	assert.True(t, completed)
	assert.Equal(t, 5*time.Second, lap)
}

func TestCrossFinishKeepsStoredBest(t *testing.T) {
	race := &components.RaceData{BestLap: 20 * time.Second}
	CrossFinish(race)
	race.Clock = 25 * time.Second

	_, completed := CrossFinish(race)
	require.True(t, completed)
	assert.False(t, race.NewBest)
	assert.Equal(t, 20*time.Second, race.BestLap)
}

func TestCurrentLap(t *testing.T) {
	race := &components.RaceData{Clock: time.Second}
	assert.Zero(t, CurrentLap(race))

	CrossFinish(race)
	race.Clock = 4 * time.Second
	assert.Equal(t, 3*time.Second, CurrentLap(race))
}

func TestFormatLap(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "-:--.---"},
		{1234 * time.Millisecond, "0:01.234"},
		{61*time.Second + 5*time.Millisecond, "1:01.005"},
		{10*time.Minute + 59*time.Second, "10:59.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLap(tt.in))
	}
}
