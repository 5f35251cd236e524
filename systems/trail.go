package systems

import (
	"math"
	"sort"

	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/systems/factory"
	"github.com/automoto/skidmark/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type pendingMark struct {
	x, y, rotation float64
}

// Reused across frames
var pendingMarks []pendingMark

// UpdateTrails drops skid marks under sliding tires. Marks are spaced by
// Trail.MinSpacing and the oldest are dropped past Trail.MaxMarks.
func UpdateTrails(e *ecs.ECS) {
	pendingMarks = pendingMarks[:0]
	spacing := cfg.C.ToPixels(cfg.Trail.MinSpacing)

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		data := components.Vehicle.Get(entry)
		if data.Destroyed() {
			return
		}
		for i, t := range data.Tires() {
			if !t.IsSliding() {
				data.HasMark[i] = false
				continue
			}
			pos := t.Position()
			x, y := cfg.C.ToPixels(pos.X), cfg.C.ToPixels(pos.Y)
			if data.HasMark[i] && math.Hypot(x-data.LastMark[i][0], y-data.LastMark[i][1]) < spacing {
				continue
			}
			data.LastMark[i] = [2]float64{x, y}
			data.HasMark[i] = true
			pendingMarks = append(pendingMarks, pendingMark{x: x, y: y, rotation: t.Rotation()})
		}
	})

	// Spawned outside the query so the archetype table is not mutated mid-iteration
	for _, m := range pendingMarks {
		factory.CreateSkidMark(e, m.x, m.y, m.rotation)
	}
	trimSkidMarks(e, cfg.Trail.MaxMarks)
}

var skidMarkQuery = donburi.NewQuery(filter.Contains(tags.SkidMark))

// trimSkidMarks removes the oldest marks until at most limit remain.
func trimSkidMarks(e *ecs.ECS, limit int) {
	if limit <= 0 || skidMarkQuery.Count(e.World) <= limit {
		return
	}
	var marks []*donburi.Entry
	skidMarkQuery.Each(e.World, func(entry *donburi.Entry) {
		marks = append(marks, entry)
	})
	sort.Slice(marks, func(i, j int) bool {
		return components.AutoDestroy.Get(marks[i]).FramesRemaining < components.AutoDestroy.Get(marks[j]).FramesRemaining
	})
	for _, entry := range marks[:len(marks)-limit] {
		entry.Remove()
	}
}
