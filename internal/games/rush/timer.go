package rush

import (
	"math/rand"
	"time"
)

// intervalTimer accumulates simulated time and fires once per elapsed delay.
// The callback runs inside the tick that crossed the deadline, so guards
// against game over are checked at fire time.
type intervalTimer struct {
	elapsed time.Duration
	delay   time.Duration
	next    func() time.Duration // picks the following delay; nil repeats delay
}

func newFixedTimer(period time.Duration) *intervalTimer {
	return &intervalTimer{delay: period}
}

// newRandomTimer fires after a uniform random delay in [lo, hi], drawing a
// fresh delay after every fire.
func newRandomTimer(lo, hi time.Duration, rng *rand.Rand) *intervalTimer {
	pick := func() time.Duration {
		if hi <= lo {
			return lo
		}
		return lo + time.Duration(rng.Int63n(int64(hi-lo)+1))
	}
	return &intervalTimer{delay: pick(), next: pick}
}

// advance adds d and calls fire for every deadline crossed.
func (t *intervalTimer) advance(d time.Duration, fire func()) {
	if t.delay <= 0 {
		return
	}
	t.elapsed += d
	for t.elapsed >= t.delay {
		t.elapsed -= t.delay
		fire()
		if t.next != nil {
			t.delay = t.next()
		}
		if t.delay <= 0 {
			t.elapsed = 0
			return
		}
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
