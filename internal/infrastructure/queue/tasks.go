package queue

// Task types
const (
	TypeProcessBookImage = "book:process_image"
	TypeDeleteBookImages = "book:delete_images"
)

// Queues, weighted by cmd/worker.
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// ProcessBookImagePayload asks the worker to build the display variant of an uploaded cover.
type ProcessBookImagePayload struct {
	BookID      int64  `json:"book_id"`
	OriginalKey string `json:"original_key"`
}

// DeleteBookImagesPayload asks the worker to remove every stored image of a deleted book.
type DeleteBookImagesPayload struct {
	BookID int64 `json:"book_id"`
}
