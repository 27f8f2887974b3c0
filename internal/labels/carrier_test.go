package labels_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/labels"
)

var fixedNow = time.Date(2025, 3, 15, 10, 42, 0, 0, time.UTC)

func TestGenerateTrackingNumber(t *testing.T) {
	entropy := bytes.NewReader([]byte{0x0a, 0x1b, 0x2c, 0x3d})

	tn, err := labels.GenerateTrackingNumber("acme outlet", fixedNow, entropy)
	require.NoError(t, err)
	assert.Equal(t, "ACM-202503151042-0A1B2C3D", tn)

	tn, err = labels.GenerateTrackingNumber("j k", fixedNow, strings.NewReader("abcd"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tn, "JK-202503151042-"), tn)

	_, err = labels.GenerateTrackingNumber("acme", fixedNow, bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestSimulatedCarrier_RequestLabel(t *testing.T) {
	t.Run("returns a shipment from the known carriers", func(t *testing.T) {
		c := labels.NewSimulatedCarrier(0)

		s, err := c.RequestLabel(context.Background(), "Globex")
		require.NoError(t, err)
		assert.Contains(t, labels.Carriers, s.Carrier)
		assert.Regexp(t, regexp.MustCompile(`^GLO-\d{12}-[0-9A-F]{8}$`), s.TrackingNumber)
	})

	t.Run("picks the carrier by index", func(t *testing.T) {
		c := labels.NewTestCarrier(0, func() time.Time { return fixedNow }, strings.NewReader("abcd"), func(int) int { return 2 })

		s, err := c.RequestLabel(context.Background(), "Globex")
		require.NoError(t, err)
		assert.Equal(t, "QuickReturn Logistics", s.Carrier)
	})

	t.Run("delay honours the deadline", func(t *testing.T) {
		c := labels.NewSimulatedCarrier(time.Minute)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := c.RequestLabel(ctx, "Globex")
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, "CarrierTimeout: carrier request failed: context deadline exceeded",
		labels.FailureMessage(&labels.CarrierError{Err: context.DeadlineExceeded}))
	assert.Equal(t, "CarrierError: rate limited",
		labels.FailureMessage(&labels.CarrierError{Err: errors.New("rate limited")}))
	assert.Equal(t, "LabelGenerationError: disk full",
		labels.FailureMessage(errors.New("disk full")))
}

func TestLocalStore_Put(t *testing.T) {
	dir := t.TempDir() + "/labels"
	store, err := labels.NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "label_1_2.png", []byte("png"), "image/png"))
	assert.FileExists(t, dir+"/label_1_2.png")
}
