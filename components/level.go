package components

import (
	"github.com/automoto/jumpcore/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	*leveldata.LevelData
}

var Level = donburi.NewComponentType[LevelData]()
