package components

import (
	"github.com/automoto/jumpcore/physics"
	"github.com/yohamta/donburi"
)

// BodyData is a mobile body together with what its last step saw.
type BodyData struct {
	*physics.Body
	ID   int
	Desc string

	// Queue size and unmapped-kind count of the last step.
	Contacts int
	Skipped  int
}

var Body = donburi.NewComponentType[BodyData]()
