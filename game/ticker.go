package game

import "time"

// Ticker gates game updates to a fixed real-time interval, independent of
// the frame rate. Times are seconds on a monotonic clock.
type Ticker struct {
	interval float64
	last     float64
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval.Seconds()}
}

// Due reports whether at least one interval has passed since the last time
// it returned true, and if so restarts the interval at now.
func (t *Ticker) Due(now float64) bool {
	if now-t.last >= t.interval {
		t.last = now
		return true
	}
	return false
}
