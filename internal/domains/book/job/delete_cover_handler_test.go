package job_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm-backend/internal/domains/book/job"
	"bookworm-backend/internal/shared"
)

type stubCoverRemover struct {
	bucket    string
	deleted   []string
	deleteErr error
}

func (s *stubCoverRemover) ObjectKey(coverURL string) (string, bool) {
	prefix := "http://minio.local/" + s.bucket + "/"
	if !strings.HasPrefix(coverURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(coverURL, prefix), true
}

func (s *stubCoverRemover) Delete(_ context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func deleteCoverTask(t *testing.T, coverURL string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(shared.DeleteCoverPayload{CoverURL: coverURL})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeDeleteBookCover, payload)
}

func TestProcessTask(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes cover by object key", func(t *testing.T) {
		store := &stubCoverRemover{bucket: "book-covers"}
		h := job.NewDeleteCoverHandler(store)

		err := h.ProcessTask(ctx, deleteCoverTask(t, "http://minio.local/book-covers/covers/abc.jpg"))
		require.NoError(t, err)
		assert.Equal(t, []string{"covers/abc.jpg"}, store.deleted)
	})

	t.Run("skips externally hosted covers", func(t *testing.T) {
		store := &stubCoverRemover{bucket: "book-covers"}
		h := job.NewDeleteCoverHandler(store)

		err := h.ProcessTask(ctx, deleteCoverTask(t, "https://res.cloudinary.com/demo/abc.jpg"))
		require.NoError(t, err)
		assert.Empty(t, store.deleted)
	})

	t.Run("storage failure is returned for retry", func(t *testing.T) {
		store := &stubCoverRemover{bucket: "book-covers", deleteErr: errors.New("bucket unavailable")}
		h := job.NewDeleteCoverHandler(store)

		err := h.ProcessTask(ctx, deleteCoverTask(t, "http://minio.local/book-covers/covers/abc.jpg"))
		assert.Error(t, err)
	})

	t.Run("garbage payload fails", func(t *testing.T) {
		store := &stubCoverRemover{bucket: "book-covers"}
		h := job.NewDeleteCoverHandler(store)

		err := h.ProcessTask(ctx, asynq.NewTask(shared.TypeDeleteBookCover, []byte("not json")))
		assert.Error(t, err)
	})
}
