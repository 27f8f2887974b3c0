package labels

import (
	"io"
	"time"
)

func (w *Worker) SetNow(now func() time.Time) {
	w.now = now
}

func NewTestCarrier(delay time.Duration, now func() time.Time, entropy io.Reader, pick func(int) int) *SimulatedCarrier {
	return &SimulatedCarrier{Delay: delay, now: now, entropy: entropy, pick: pick}
}
