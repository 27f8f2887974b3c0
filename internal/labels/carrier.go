package labels

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"strings"
	"time"
	"unicode"
)

var Carriers = []string{"MockCarrier Express", "ReturnShip Pro", "QuickReturn Logistics"}

type Shipment struct {
	TrackingNumber string
	Carrier        string
}

// SimulatedCarrier stands in for an external carrier API. Each call waits
// Delay before answering.
type SimulatedCarrier struct {
	Delay   time.Duration
	now     func() time.Time
	entropy io.Reader
	pick    func(n int) int
}

func NewSimulatedCarrier(delay time.Duration) *SimulatedCarrier {
	return &SimulatedCarrier{
		Delay:   delay,
		now:     time.Now,
		entropy: rand.Reader,
		pick:    mrand.IntN,
	}
}

func (c *SimulatedCarrier) RequestLabel(ctx context.Context, merchantName string) (Shipment, error) {
	if c.Delay > 0 {
		timer := time.NewTimer(c.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Shipment{}, ctx.Err()
		}
	}

	tn, err := GenerateTrackingNumber(merchantName, c.now(), c.entropy)
	if err != nil {
		return Shipment{}, err
	}
	return Shipment{
		TrackingNumber: tn,
		Carrier:        Carriers[c.pick(len(Carriers))],
	}, nil
}

// GenerateTrackingNumber builds PREFIX-YYYYMMDDHHMM-XXXXXXXX where PREFIX is
// the first three letters of the merchant name without whitespace.
func GenerateTrackingNumber(merchantName string, at time.Time, entropy io.Reader) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, merchantName)
	prefix := []rune(strings.ToUpper(compact))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	buf := make([]byte, 4)
	if _, err := io.ReadFull(entropy, buf); err != nil {
		return "", fmt.Errorf("failed to read tracking entropy: %w", err)
	}

	return fmt.Sprintf("%s-%s-%s", string(prefix), at.Format("200601021504"), strings.ToUpper(hex.EncodeToString(buf))), nil
}
