package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Delta float64 // Seconds per step
	Step  int     // Steps run so far
}

var Clock = donburi.NewComponentType[ClockData]()
