package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookworm-backend/internal/shared"
)

// CoverRemover is the storage slice the handler needs: map a stored URL
// back to its object key and remove it.
type CoverRemover interface {
	ObjectKey(coverURL string) (string, bool)
	Delete(ctx context.Context, key string) error
}

// DeleteCoverHandler removes a deleted book's cover from object
// storage. Returning an error lets asynq retry; the API side never
// waits on this.
type DeleteCoverHandler struct {
	storage CoverRemover
}

func NewDeleteCoverHandler(storage CoverRemover) *DeleteCoverHandler {
	return &DeleteCoverHandler{storage: storage}
}

func (h *DeleteCoverHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.DeleteCoverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal DeleteCover payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	key, ok := h.storage.ObjectKey(payload.CoverURL)
	if !ok {
		// Externally hosted image (or a URL from another bucket):
		// nothing of ours to delete.
		log.Warn().Str("cover_url", payload.CoverURL).Msg("Cover URL not in our bucket, skipping")
		return nil
	}

	if err := h.storage.Delete(ctx, key); err != nil {
		log.Error().
			Err(err).
			Str("key", key).
			Msg("Failed to delete cover from storage")
		return fmt.Errorf("delete cover: %w", err)
	}

	log.Info().Str("key", key).Msg("Cover deleted")
	return nil
}
