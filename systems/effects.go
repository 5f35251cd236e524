package systems

import (
	"github.com/automoto/skidmark/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components
func UpdateEffects(ecs *ecs.ECS) {
	updateAutoDestroy(ecs)
}

// updateAutoDestroy counts down AutoDestroy entities and removes expired ones
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
		}
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		if e.HasComponent(components.Trigger) {
			obj := components.Trigger.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}

// fadeAlpha is the remaining share of an AutoDestroy lifetime, in [0,1].
func fadeAlpha(ad *components.AutoDestroyData) float64 {
	if ad.Lifetime <= 0 {
		return 1
	}
	a := float64(ad.FramesRemaining) / float64(ad.Lifetime)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
