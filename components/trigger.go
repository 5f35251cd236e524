package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TriggerData is a resolv volume in world pixels. Triggers never push
// anything; collision response is owned by the physics world.
type TriggerData struct {
	*resolv.Object
}

var Trigger = donburi.NewComponentType[TriggerData]()

// Space holds every trigger volume.
var Space = donburi.NewComponentType[resolv.Space]()
