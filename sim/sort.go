package sim

import (
	"slices"

	"github.com/automoto/jumpcore/components"
)

func sortByID(bodies []*components.BodyData) {
	slices.SortFunc(bodies, func(a, b *components.BodyData) int {
		return a.ID - b.ID
	})
}
