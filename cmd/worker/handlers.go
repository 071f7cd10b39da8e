package main

import (
	"github.com/hibiken/asynq"

	bookJob "bookstore-web/internal/domains/book/job"
	"bookstore-web/internal/infrastructure/queue"
	"bookstore-web/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	processBookImage *bookJob.ProcessImageHandler
	deleteBookImages *bookJob.DeleteImagesHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		processBookImage: bookJob.NewProcessImageHandler(c.BookService),
		deleteBookImages: bookJob.NewDeleteImagesHandler(c.BookService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeProcessBookImage, h.processBookImage.ProcessTask)
	mux.HandleFunc(queue.TypeDeleteBookImages, h.deleteBookImages.ProcessTask)
}
