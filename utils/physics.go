package utils

const gravity = 9.80665 // m/s²

// JumpHeight converts a hang-time stopwatch reading (seconds airborne) into
// a jump height in meters. The airborne time splits evenly into rise and
// fall, so from h = ½g(t/2)² the closed form is g·t²/8. tipToe is the
// user's standing reach offset, added so the result is true jump height
// rather than raw displacement of the stopwatch.
func JumpHeight(hangTime, tipToe float64) float64 {
	return gravity/8*hangTime*hangTime + tipToe
}
