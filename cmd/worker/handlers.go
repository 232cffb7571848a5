package main

import (
	"github.com/hibiken/asynq"

	bookJob "bookworm-backend/internal/domains/book/job"
	"bookworm-backend/internal/shared"
	"bookworm-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	deleteCover *bookJob.DeleteCoverHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		deleteCover: bookJob.NewDeleteCoverHandler(c.Storage),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeDeleteBookCover, h.deleteCover.ProcessTask)
}
