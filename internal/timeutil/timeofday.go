package timeutil

import (
	"fmt"
	"time"
)

// formatTimeOfDay renders the wall clock of t. 24h gives "H:MM"; anything
// else gives "h:MM AM" with midnight and noon shown as 12.
func formatTimeOfDay(t time.Time, tf TimeFormat) string {
	h, m := t.Hour(), t.Minute()
	if tf == Clock24h {
		return fmt.Sprintf("%d:%02d", h, m)
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, period)
}
