package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampFall limits downward speed in a Y-up world. Upward speed is untouched.
func ClampFall(speedY, maxFall float64) float64 {
	if speedY < -maxFall {
		return -maxFall
	}
	return speedY
}
