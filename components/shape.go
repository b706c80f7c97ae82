package components

import (
	"github.com/automoto/jumpcore/shapes"
	"github.com/yohamta/donburi"
)

// ShapeData is a static or kinematic obstacle.
type ShapeData struct {
	*shapes.Shape
	Desc string
}

var Shape = donburi.NewComponentType[ShapeData]()
