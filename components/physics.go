package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	Drive          float64 // Horizontal speed re-applied every step, 0 for none
	DriveTime      float64 // Seconds driven in the current direction
	RampTime       float64 // Seconds to reach full drive, 0 for instant
	MaxSpeed       float64
	Gravity        float64
	GroundFriction float64
	AirFriction    float64
	MaxFallSpeed   float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
