package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/hibiken/asynq"

	"bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/infrastructure/queue"
	"bookstore-web/internal/infrastructure/storage"
	"bookstore-web/pkg/logger"
)

func imagePrefix(bookID int64) string {
	return fmt.Sprintf("books/%d/", bookID)
}

// attachImage stores the original upload, points the book at it and schedules
// the resized variant. Failures are logged: the book itself is already saved.
func (s *BookService) attachImage(ctx context.Context, b *model.Book, image *ImageUpload) {
	if image == nil || s.storage == nil {
		return
	}

	format, err := s.processor.ValidateImage(image.Data)
	if err != nil {
		logger.Warn("book image rejected", map[string]interface{}{"book_id": b.ID, "error": err.Error()})
		return
	}

	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}
	key := imagePrefix(b.ID) + "original." + ext

	url, err := s.storage.Upload(ctx, key, image.Data, "image/"+format)
	if err != nil {
		logger.Error("book image upload failed", err)
		return
	}

	if err := s.repo.UpdateImage(ctx, b.ID, url); err != nil {
		logger.Error("book image update failed", err)
		return
	}
	b.Image = url

	payload := queue.ProcessBookImagePayload{BookID: b.ID, OriginalKey: key}
	if s.queue == nil {
		if err := s.ProcessImage(ctx, payload); err != nil {
			logger.Error("book image processing failed", err)
		}
		return
	}

	if err := s.queue.Enqueue(ctx, queue.TypeProcessBookImage, payload,
		asynq.Queue(queue.QueueDefault), asynq.MaxRetry(2)); err != nil {
		logger.Error("enqueue book image processing failed", err)
	}
}

func (s *BookService) scheduleImageCleanup(ctx context.Context, bookID int64) {
	if s.queue == nil {
		if err := s.DeleteImages(ctx, bookID); err != nil {
			logger.Error("book image cleanup failed", err)
		}
		return
	}

	payload := queue.DeleteBookImagesPayload{BookID: bookID}
	if err := s.queue.Enqueue(ctx, queue.TypeDeleteBookImages, payload,
		asynq.Queue(queue.QueueLow), asynq.MaxRetry(3)); err != nil {
		logger.Error("enqueue book image cleanup failed", err)
	}
}

// ProcessImage builds the display-size variant of an uploaded original and points the book at it.
func (s *BookService) ProcessImage(ctx context.Context, payload queue.ProcessBookImagePayload) error {
	if s.storage == nil {
		return model.ErrStorageDisabled
	}
	if !strings.HasPrefix(payload.OriginalKey, imagePrefix(payload.BookID)) {
		return fmt.Errorf("%w: key %q does not belong to book %d", model.ErrInvalidImage, payload.OriginalKey, payload.BookID)
	}

	original, err := s.storage.Download(ctx, payload.OriginalKey)
	if err != nil {
		return fmt.Errorf("download original: %w", err)
	}

	resized, err := s.processor.Resize(original, storage.DisplaySize)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidImage, err)
	}

	key := path.Join(path.Dir(payload.OriginalKey), "display.jpg")
	url, err := s.storage.Upload(ctx, key, resized, "image/jpeg")
	if err != nil {
		return fmt.Errorf("upload display image: %w", err)
	}

	if err := s.repo.UpdateImage(ctx, payload.BookID, url); err != nil {
		return err
	}

	logger.Info("book image processed", map[string]interface{}{"book_id": payload.BookID, "key": key})
	return nil
}

// DeleteImages removes every stored image of a book.
func (s *BookService) DeleteImages(ctx context.Context, bookID int64) error {
	if s.storage == nil {
		return model.ErrStorageDisabled
	}
	return s.storage.DeleteByPrefix(ctx, imagePrefix(bookID))
}
