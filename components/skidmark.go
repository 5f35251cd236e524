package components

import "github.com/yohamta/donburi"

type SkidMarkData struct {
	X, Y     float64 // world pixels
	Rotation float64 // radians
}

var SkidMark = donburi.NewComponentType[SkidMarkData]()
