package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData moves an obstacle along Y by the sequence's value.
type TweenData struct {
	*gween.Sequence
	BaseY float64
}

var Tween = donburi.NewComponentType[TweenData]()
