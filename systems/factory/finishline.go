package factory

import (
	"github.com/automoto/skidmark/archetypes"
	"github.com/automoto/skidmark/components"
	"github.com/automoto/skidmark/shared/trackdata"
	"github.com/automoto/skidmark/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishLine creates the lap line trigger in world pixels
func CreateFinishLine(ecs *ecs.ECS, r trackdata.Rect) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvFinishLine)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = finishLine

	components.Trigger.SetValue(finishLine, components.TriggerData{Object: obj})
	components.FinishLine.SetValue(finishLine, components.FinishLineData{})

	addToSpace(ecs, obj)
	return finishLine
}
