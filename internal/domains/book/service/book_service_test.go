package service_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/domains/book/service"
	"bookstore-web/internal/infrastructure/memstore"
	"bookstore-web/internal/infrastructure/queue"
	"bookstore-web/internal/shared/forms"
)

type memoryObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryObjects() *memoryObjects {
	return &memoryObjects{objects: make(map[string][]byte)}
}

func (m *memoryObjects) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return m.URL(key), nil
}

func (m *memoryObjects) Download(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[key], nil
}

func (m *memoryObjects) DeleteByPrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			delete(m.objects, k)
		}
	}
	return nil
}

func (m *memoryObjects) URL(key string) string {
	return "http://objects.test/" + key
}

func (m *memoryObjects) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	args := m.Called(ctx, taskType, payload)
	return args.Error(0)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1200, 800))))
	return buf.Bytes()
}

func bookForm() model.BookForm {
	return model.BookForm{
		ISBN:        "9780441013593",
		Title:       "Dune",
		SortTitle:   "Dune",
		Year:        "1965",
		Pages:       "412",
		Price:       "9.99",
		RatingCount: "10",
		Plot:        "Spice.",
		Description: "Desert planet.",
	}
}

func TestListBooks_EmptySearch(t *testing.T) {
	svc := service.NewBookService(memstore.New().Books(), nil, nil, nil)

	_, err := svc.ListBooks(context.Background(), model.CatalogQuery{Search: "", HasSearch: true})
	assert.ErrorIs(t, err, model.ErrEmptySearch)

	// whitespace is a search term, not an empty query
	catalog, err := svc.ListBooks(context.Background(), model.CatalogQuery{Search: "   ", HasSearch: true})
	require.NoError(t, err)
	assert.Empty(t, catalog.Books)
}

func TestCreateBook_UnknownAuthor(t *testing.T) {
	svc := service.NewBookService(memstore.New().Books(), nil, nil, nil)

	form := bookForm()
	form.Author = "42"
	_, err := svc.CreateBook(context.Background(), form, nil)

	errs, ok := forms.FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, errs, "author")
}

func TestCreateBook_ImageProcessedInline(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	objects := newMemoryObjects()
	svc := service.NewBookService(store.Books(), objects, nil, nil)

	b, err := svc.CreateBook(ctx, bookForm(), &service.ImageUpload{Filename: "cover.png", Data: pngBytes(t)})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"books/1/original.png", "books/1/display.jpg"}, objects.keys())

	stored, err := store.Books().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://objects.test/books/1/display.jpg", stored.Picture())
}

func TestCreateBook_ImageQueued(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	objects := newMemoryObjects()
	enqueuer := new(mockEnqueuer)
	enqueuer.On("Enqueue", mock.Anything, queue.TypeProcessBookImage,
		queue.ProcessBookImagePayload{BookID: 1, OriginalKey: "books/1/original.png"}).Return(nil).Once()

	svc := service.NewBookService(store.Books(), objects, nil, enqueuer)

	_, err := svc.CreateBook(ctx, bookForm(), &service.ImageUpload{Filename: "cover.png", Data: pngBytes(t)})
	require.NoError(t, err)
	enqueuer.AssertExpectations(t)
	assert.Equal(t, []string{"books/1/original.png"}, objects.keys())

	enqueuer.On("Enqueue", mock.Anything, queue.TypeDeleteBookImages,
		queue.DeleteBookImagesPayload{BookID: 1}).Return(nil).Once()
	require.NoError(t, svc.DeleteBook(ctx, 1))
	enqueuer.AssertExpectations(t)
}

func TestCreateBook_RejectsNonImage(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	objects := newMemoryObjects()
	svc := service.NewBookService(store.Books(), objects, nil, nil)

	_, err := svc.CreateBook(ctx, bookForm(), &service.ImageUpload{Filename: "cover.png", Data: []byte("plain text")})
	errs, ok := forms.FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, errs, "image")

	books, err := store.Books().List(ctx, model.BookFilter{})
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Empty(t, objects.keys())
}

func TestDeleteImages(t *testing.T) {
	ctx := context.Background()
	objects := newMemoryObjects()
	_, _ = objects.Upload(ctx, "books/1/original.png", []byte("x"), "image/png")
	_, _ = objects.Upload(ctx, "books/10/original.png", []byte("x"), "image/png")

	svc := service.NewBookService(memstore.New().Books(), objects, nil, nil)
	require.NoError(t, svc.DeleteImages(ctx, 1))
	assert.Equal(t, []string{"books/10/original.png"}, objects.keys())

	disabled := service.NewBookService(memstore.New().Books(), nil, nil, nil)
	assert.ErrorIs(t, disabled.DeleteImages(ctx, 1), model.ErrStorageDisabled)
}

func TestProcessImage_RejectsForeignKey(t *testing.T) {
	svc := service.NewBookService(memstore.New().Books(), newMemoryObjects(), nil, nil)

	err := svc.ProcessImage(context.Background(), queue.ProcessBookImagePayload{BookID: 1, OriginalKey: "books/2/original.png"})
	assert.ErrorIs(t, err, model.ErrInvalidImage)
}

func TestExportCatalog(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	for _, title := range []string{"Emma", "Dune"} {
		_, err := store.Books().Create(ctx, &model.Book{
			ISBN: "9780000000000", Title: title, SortTitle: title, Price: decimal.RequireFromString("9.5"),
		})
		require.NoError(t, err)
	}
	svc := service.NewBookService(store.Books(), nil, nil, nil)

	data, err := svc.ExportCatalog(ctx, model.CatalogQuery{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Books")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][2])
	assert.Equal(t, "Dune", rows[1][2])
	assert.Equal(t, "Emma", rows[2][2])
	assert.Equal(t, "9.5", rows[1][7])
}
