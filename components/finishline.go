package components

import "github.com/yohamta/donburi"

type FinishLineData struct {
	// Occupied is true while a vehicle overlaps the line, so a lap is
	// counted once per crossing.
	Occupied bool
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
