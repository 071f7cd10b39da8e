package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookstore-web/internal/domains/book/model"
	bookService "bookstore-web/internal/domains/book/service"
	"bookstore-web/internal/infrastructure/queue"
)

// ProcessImageHandler builds the display variant of an uploaded book cover.
type ProcessImageHandler struct {
	images bookService.ImageService
}

func NewProcessImageHandler(images bookService.ImageService) *ProcessImageHandler {
	return &ProcessImageHandler{images: images}
}

func (h *ProcessImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload queue.ProcessBookImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ProcessImage payload")
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	log.Info().
		Int64("book_id", payload.BookID).
		Str("key", payload.OriginalKey).
		Msg("Processing book image")

	err := h.images.ProcessImage(ctx, payload)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrBookNotFound), errors.Is(err, model.ErrInvalidImage), errors.Is(err, model.ErrStorageDisabled):
		// retrying cannot help
		log.Warn().Err(err).Int64("book_id", payload.BookID).Msg("Book image skipped")
		return fmt.Errorf("process image: %v: %w", err, asynq.SkipRetry)
	default:
		log.Error().Err(err).Int64("book_id", payload.BookID).Msg("Failed to process image")
		return fmt.Errorf("process image: %w", err)
	}
}

// DeleteImagesHandler removes the stored images of a deleted book.
type DeleteImagesHandler struct {
	images bookService.ImageService
}

func NewDeleteImagesHandler(images bookService.ImageService) *DeleteImagesHandler {
	return &DeleteImagesHandler{images: images}
}

func (h *DeleteImagesHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload queue.DeleteBookImagesPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.images.DeleteImages(ctx, payload.BookID); err != nil {
		if errors.Is(err, model.ErrStorageDisabled) {
			return fmt.Errorf("delete images: %v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("delete images: %w", err)
	}

	log.Info().Int64("book_id", payload.BookID).Msg("Book images deleted")
	return nil
}
