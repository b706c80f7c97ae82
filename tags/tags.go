package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Mover            = donburi.NewTag().SetName("Mover")
	Tile             = donburi.NewTag().SetName("Tile")
	Wall             = donburi.NewTag().SetName("Wall")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)
