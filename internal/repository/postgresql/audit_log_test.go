package postgresql_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/returns/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository/postgresql"
)

func TestAuditLogRepo_CreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewAuditLogRepo(mock_database.NewMockDB(ctrl))

	from := repository.StatusRequested
	entry := &repository.StatusAuditLog{
		ReturnRequestID: 7,
		FromStatus:      &from,
		ToStatus:        repository.StatusApproved,
		Event:           "approve",
		TriggeredBy:     "system:label_generator",
		Metadata:        json.RawMessage(`{"request_id":7}`),
	}

	mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Eq(int64(7)), gomock.Eq(&from), gomock.Eq(repository.StatusApproved),
		gomock.Eq("approve"), gomock.Eq("system:label_generator"), gomock.Eq(entry.Metadata),
	).DoAndReturn(func(_ context.Context, dest *repository.StatusAuditLog, _ string, _ ...interface{}) error {
		*dest = *entry
		dest.ID = 100
		return nil
	})

	require.NoError(t, repo.CreateTx(context.Background(), mockTx, entry))
	assert.Equal(t, int64(100), entry.ID)
}

func TestAuditLogRepo_ListByRequest(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name   string
		recent bool
		order  string
	}{
		{name: "oldest first", recent: false, order: "ASC"},
		{name: "newest first", recent: true, order: "DESC"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mock_database.NewMockDB(ctrl)
			repo := postgresql.NewAuditLogRepo(mockDB)

			mockDB.EXPECT().Select(gomock.Any(), gomock.Any(),
				gomock.Cond(func(q any) bool {
					s, _ := q.(string)
					return strings.Contains(s, "ORDER BY created_at "+tc.order+", id "+tc.order)
				}),
				gomock.Eq(int64(7)),
			).Return(nil)

			_, err := repo.ListByRequest(ctx, 7, tc.recent)
			assert.NoError(t, err)
		})
	}

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewAuditLogRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		logs, err := repo.ListByRequest(ctx, 7, false)
		assert.ErrorContains(t, err, "failed to list status audit logs")
		assert.Nil(t, logs)
	})
}
