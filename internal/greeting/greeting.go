// Package greeting selects the time-of-day greeting for the welcome payload.
package greeting

// Greeting strings returned to the rendering layer.
const (
	Morning   = "Good morning!"
	Afternoon = "Good afternoon!"
	Evening   = "Good evening!"
)

// Hour boundaries. Half-open on the lower bound: hour 12 is afternoon,
// hour 18 is evening.
const (
	afternoonStart = 12
	eveningStart   = 18
)

// Select returns the greeting for the given clock hour.
// The function is total: hours outside [0,23] are not rejected. Anything
// below 12 (including negatives) is morning, anything at or above 18
// (including values past 23) falls through to evening.
func Select(hour int) string {
	if hour < afternoonStart {
		return Morning
	}
	if hour < eveningStart {
		return Afternoon
	}
	return Evening
}
