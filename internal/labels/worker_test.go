package labels_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/labels"
	mock_labels "gitlab.ozon.dev/pupkingeorgij/returns/internal/labels/mocks"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/lifecycle"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/outbox"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

type workerDeps struct {
	requests  *mock_labels.MockReturnRequestRepository
	merchants *mock_labels.MockMerchantRepository
	carrier   *mock_labels.MockCarrier
	store     *mock_labels.MockStore
	labeler   *mock_labels.MockLabeler
}

func newTestWorker(t *testing.T) (*labels.Worker, workerDeps) {
	ctrl := gomock.NewController(t)
	d := workerDeps{
		requests:  mock_labels.NewMockReturnRequestRepository(ctrl),
		merchants: mock_labels.NewMockMerchantRepository(ctrl),
		carrier:   mock_labels.NewMockCarrier(ctrl),
		store:     mock_labels.NewMockStore(ctrl),
		labeler:   mock_labels.NewMockLabeler(ctrl),
	}
	w := labels.NewWorker(d.requests, d.merchants, d.carrier, d.store, d.labeler,
		labels.WorkerConfig{CarrierTimeout: time.Second, PublicPrefix: "/labels/"}, nil)
	w.SetNow(func() time.Time { return fixedNow })
	return w, d
}

func TestWorker_Process(t *testing.T) {
	ctx := context.Background()
	requested := &repository.ReturnRequest{ID: 8, MerchantID: 2, Status: repository.StatusRequested}

	t.Run("success stores the label and approves", func(t *testing.T) {
		w, d := newTestWorker(t)

		d.requests.EXPECT().GetByID(ctx, int64(8)).Return(requested, nil)
		d.merchants.EXPECT().GetByID(ctx, int64(2)).Return(&repository.Merchant{ID: 2, Name: "Acme"}, nil)
		d.carrier.EXPECT().RequestLabel(gomock.Any(), "Acme").Return(labels.Shipment{TrackingNumber: "ACM-202503151042-0A1B2C3D", Carrier: "ReturnShip Pro"}, nil)
		d.store.EXPECT().Put(ctx, "label_8_1742035320.png", gomock.Any(), "image/png").DoAndReturn(func(_ context.Context, _ string, data []byte, _ string) error {
			assert.True(t, strings.HasPrefix(string(data), "\x89PNG"))
			return nil
		})
		d.labeler.EXPECT().ApplyLabel(ctx, int64(8), repository.LabelInfo{
			TrackingNumber: "ACM-202503151042-0A1B2C3D",
			Carrier:        "ReturnShip Pro",
			LabelURL:       "/labels/label_8_1742035320.png",
		}, lifecycle.ActorLabelGenerator).Return(&repository.ReturnRequest{ID: 8, Status: repository.StatusApproved}, nil)

		require.NoError(t, w.Process(ctx, 8))
	})

	t.Run("request no longer requested is a no-op", func(t *testing.T) {
		w, d := newTestWorker(t)

		d.requests.EXPECT().GetByID(ctx, int64(8)).Return(&repository.ReturnRequest{ID: 8, Status: repository.StatusRejected}, nil)

		require.NoError(t, w.Process(ctx, 8))
	})

	t.Run("missing request is permanent", func(t *testing.T) {
		w, d := newTestWorker(t)

		d.requests.EXPECT().GetByID(ctx, int64(8)).Return(nil, repository.ErrObjectNotFound)

		err := w.Process(ctx, 8)
		require.Error(t, err)
		assert.True(t, outbox.IsPermanent(err))
	})

	t.Run("carrier failure is recorded and retried", func(t *testing.T) {
		w, d := newTestWorker(t)

		d.requests.EXPECT().GetByID(ctx, int64(8)).Return(requested, nil)
		d.merchants.EXPECT().GetByID(ctx, int64(2)).Return(&repository.Merchant{ID: 2, Name: "Acme"}, nil)
		d.carrier.EXPECT().RequestLabel(gomock.Any(), "Acme").Return(labels.Shipment{}, context.DeadlineExceeded)
		d.requests.EXPECT().MarkLabelFailure(gomock.Any(), int64(8), fixedNow, "CarrierTimeout: carrier request failed: context deadline exceeded").Return(nil)

		err := w.Process(ctx, 8)
		require.Error(t, err)
		assert.False(t, outbox.IsPermanent(err))
	})

	t.Run("store failure is recorded", func(t *testing.T) {
		w, d := newTestWorker(t)

		d.requests.EXPECT().GetByID(ctx, int64(8)).Return(requested, nil)
		d.merchants.EXPECT().GetByID(ctx, int64(2)).Return(&repository.Merchant{ID: 2, Name: "Acme"}, nil)
		d.carrier.EXPECT().RequestLabel(gomock.Any(), "Acme").Return(labels.Shipment{TrackingNumber: "ACM-1", Carrier: "ReturnShip Pro"}, nil)
		d.store.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), "image/png").Return(errors.New("bucket gone"))
		d.requests.EXPECT().MarkLabelFailure(gomock.Any(), int64(8), fixedNow, "LabelGenerationError: bucket gone").Return(nil)

		assert.EqualError(t, w.Process(ctx, 8), "bucket gone")
	})

	t.Run("concurrent transition wins", func(t *testing.T) {
		w, d := newTestWorker(t)

		d.requests.EXPECT().GetByID(ctx, int64(8)).Return(requested, nil)
		d.merchants.EXPECT().GetByID(ctx, int64(2)).Return(&repository.Merchant{ID: 2, Name: "Acme"}, nil)
		d.carrier.EXPECT().RequestLabel(gomock.Any(), "Acme").Return(labels.Shipment{TrackingNumber: "ACM-1", Carrier: "ReturnShip Pro"}, nil)
		d.store.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), "image/png").Return(nil)
		d.labeler.EXPECT().ApplyLabel(ctx, int64(8), gomock.Any(), lifecycle.ActorLabelGenerator).
			Return(nil, &lifecycle.InvalidTransitionError{From: repository.StatusRejected, Event: lifecycle.EventApprove})

		require.NoError(t, w.Process(ctx, 8))
	})
}

func TestWorker_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the payload", func(t *testing.T) {
		w, d := newTestWorker(t)
		d.requests.EXPECT().GetByID(ctx, int64(15)).Return(&repository.ReturnRequest{ID: 15, Status: repository.StatusApproved}, nil)

		body, err := json.Marshal(repository.LabelJobPayload{ReturnRequestID: 15})
		require.NoError(t, err)
		require.NoError(t, w.Handle(ctx, &repository.OutboxTask{Topic: labels.TopicGenerate, Payload: body}))
	})

	t.Run("garbage payload is discarded", func(t *testing.T) {
		w, _ := newTestWorker(t)

		err := w.Handle(ctx, &repository.OutboxTask{Topic: labels.TopicGenerate, Payload: []byte("{")})
		assert.True(t, outbox.IsPermanent(err))
	})
}
