//go:build !tinygo

package hal

import "time"

const hostTickDur = time.Millisecond

// hostTime converts wall-clock time elapsed between runner steps into 1ms
// ticks, so tick counts stay correct whatever the window or headless rate.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) step(n uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.emit(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / hostTickDur)
	if ticks == 0 {
		return
	}
	t.acc %= hostTickDur
	t.emit(ticks)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
