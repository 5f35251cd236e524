package tags

import "github.com/yohamta/donburi"

var (
	Vehicle    = donburi.NewTag().SetName("Vehicle")
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	FinishLine = donburi.NewTag().SetName("FinishLine")
	SkidMark   = donburi.NewTag().SetName("SkidMark")
)

// Resolv tags for trigger volumes
const (
	ResolvVehicle    = "vehicle"
	ResolvCheckpoint = "checkpoint"
	ResolvFinishLine = "finishline"
)
