package trackdata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
`

const fullTrack = header + ` <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="16"/>
  <object id="2" x="0" y="144" width="320" height="0"/>
 </objectgroup>
 <objectgroup id="2" name="VehicleSpawn">
  <object id="3" x="40" y="80" rotation="90">
   <properties>
    <property name="profile" value="kart"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Checkpoints">
  <object id="4" x="200" y="16" width="16" height="64">
   <properties>
    <property name="order" type="int" value="2"/>
   </properties>
  </object>
  <object id="5" x="100" y="16" width="16" height="64">
   <properties>
    <property name="order" type="int" value="1"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="FinishLine">
  <object id="6" x="60" y="16" width="8" height="128"/>
 </objectgroup>
</map>
`

func TestLoadTrack(t *testing.T) {
	fsys := fstest.MapFS{"tracks/loop.tmx": {Data: []byte(fullTrack)}}

	track, err := LoadTrack(fsys, "tracks/loop.tmx")
	require.NoError(t, err)

	assert.Equal(t, "loop", track.Name)
	assert.Equal(t, 320, track.Width)
	assert.Equal(t, 160, track.Height)

	// zero-height wall is skipped
	require.Len(t, track.Walls, 1)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 320, H: 16}, track.Walls[0])

	assert.Equal(t, SpawnPoint{X: 40, Y: 80, Rotation: 90, Profile: "kart"}, track.Spawn)

	require.Len(t, track.Checkpoints, 2)
	assert.Equal(t, 1, track.Checkpoints[0].Order)
	assert.InDelta(t, 100, track.Checkpoints[0].X, 1e-9)
	assert.Equal(t, 2, track.Checkpoints[1].Order)

	require.NotNil(t, track.FinishLine)
	x, y := track.FinishLine.Center()
	assert.InDelta(t, 64, x, 1e-9)
	assert.InDelta(t, 80, y, 1e-9)
}

func TestLoadTrackWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(header + "</map>\n")}}

	_, err := LoadTrack(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrNoSpawn)
}

func TestLoadTrackDuplicateCheckpointOrder(t *testing.T) {
	data := header + ` <objectgroup id="1" name="VehicleSpawn">
  <object id="1" x="10" y="10"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="Checkpoints">
  <object id="2" x="0" y="0" width="8" height="8"><properties><property name="order" type="int" value="1"/></properties></object>
  <object id="3" x="20" y="0" width="8" height="8"><properties><property name="order" type="int" value="1"/></properties></object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"dup.tmx": {Data: []byte(data)}}

	_, err := LoadTrack(fsys, "dup.tmx")
	assert.ErrorContains(t, err, "duplicate checkpoint order")
}

func TestLoadAllTracks(t *testing.T) {
	fsys := fstest.MapFS{
		"tracks/b.tmx":    {Data: []byte(fullTrack)},
		"tracks/a.tmx":    {Data: []byte(fullTrack)},
		"tracks/notes.md": {Data: []byte("not a track")},
	}

	tracks, names, err := LoadAllTracks(fsys, "tracks")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, tracks, 2)
	assert.Equal(t, "tracks/a.tmx", tracks["a"].Path)

	_, _, err = LoadAllTracks(fsys, "missing")
	assert.ErrorIs(t, err, ErrNoTracks)
}
