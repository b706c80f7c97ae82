package systems

import (
	"fmt"
	"math"
	"sort"

	"github.com/automoto/jumpcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BodyState is the recorded state of one body.
type BodyState struct {
	ID       int     `json:"id"`
	Desc     string  `json:"desc"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	SpeedX   float64 `json:"speedX"`
	SpeedY   float64 `json:"speedY"`
	OnGround bool    `json:"onGround"`
}

// Snapshot is the state of every body after a given number of steps.
type Snapshot struct {
	Level  string      `json:"level"`
	Step   int         `json:"step"`
	Bodies []BodyState `json:"bodies"`
}

// TakeSnapshot records all bodies ordered by ID.
func TakeSnapshot(ecs *ecs.ECS) *Snapshot {
	snap := &Snapshot{}
	if entry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(entry); level.LevelData != nil {
			snap.Level = level.Name
		}
	}
	if entry, ok := components.Clock.First(ecs.World); ok {
		snap.Step = components.Clock.Get(entry).Step
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		snap.Bodies = append(snap.Bodies, BodyState{
			ID:       body.ID,
			Desc:     body.Desc,
			X:        body.X,
			Y:        body.Y,
			SpeedX:   body.Velocity.X,
			SpeedY:   body.Velocity.Y,
			OnGround: body.OnGround,
		})
	})
	sort.Slice(snap.Bodies, func(i, j int) bool {
		return snap.Bodies[i].ID < snap.Bodies[j].ID
	})
	return snap
}

// Diff lists the differences between two snapshots. Positions and speeds
// within tolerance are equal. An empty result means the runs match.
func Diff(want, got *Snapshot, tolerance float64) []string {
	var out []string
	if want.Level != got.Level {
		out = append(out, fmt.Sprintf("level: %q != %q", want.Level, got.Level))
	}
	if want.Step != got.Step {
		out = append(out, fmt.Sprintf("step: %d != %d", want.Step, got.Step))
	}

	byID := make(map[int]BodyState, len(got.Bodies))
	for _, b := range got.Bodies {
		byID[b.ID] = b
	}
	for _, w := range want.Bodies {
		g, ok := byID[w.ID]
		if !ok {
			out = append(out, fmt.Sprintf("body %d (%s): missing", w.ID, w.Desc))
			continue
		}
		delete(byID, w.ID)

		if !near(w.X, g.X, tolerance) || !near(w.Y, g.Y, tolerance) {
			out = append(out, fmt.Sprintf("body %d (%s): position (%g,%g) != (%g,%g)", w.ID, w.Desc, w.X, w.Y, g.X, g.Y))
		}
		if !near(w.SpeedX, g.SpeedX, tolerance) || !near(w.SpeedY, g.SpeedY, tolerance) {
			out = append(out, fmt.Sprintf("body %d (%s): speed (%g,%g) != (%g,%g)", w.ID, w.Desc, w.SpeedX, w.SpeedY, g.SpeedX, g.SpeedY))
		}
		if w.OnGround != g.OnGround {
			out = append(out, fmt.Sprintf("body %d (%s): onGround %v != %v", w.ID, w.Desc, w.OnGround, g.OnGround))
		}
	}

	extra := make([]int, 0, len(byID))
	for id := range byID {
		extra = append(extra, id)
	}
	sort.Ints(extra)
	for _, id := range extra {
		out = append(out, fmt.Sprintf("body %d (%s): unexpected", id, byID[id].Desc))
	}
	return out
}

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
