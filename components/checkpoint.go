package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	Order  int  // order property from the map
	Index  int  // 0-based position in the lap
	Passed bool // passed during the current lap
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
