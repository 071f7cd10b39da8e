package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	authorService "bookstore-web/internal/domains/author/service"
	awardService "bookstore-web/internal/domains/award/service"
	"bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/domains/book/service"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/internal/shared/response"
	"bookstore-web/internal/shared/session"
	"bookstore-web/internal/shared/utils"
)

// maxUploadBytes bounds how much of an uploaded image is read; the image
// processor rejects anything over its own limit.
const maxUploadBytes = 6 << 20

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BookHandler serves the catalog pages and book CRUD.
type BookHandler struct {
	service service.ServiceInterface
	authors authorService.ServiceInterface
	awards  awardService.ServiceInterface
}

func NewBookHandler(
	service service.ServiceInterface,
	authors authorService.ServiceInterface,
	awards awardService.ServiceInterface,
) *BookHandler {
	return &BookHandler{service: service, authors: authors, awards: awards}
}

// Home handles GET /
func (h *BookHandler) Home(c *gin.Context) {
	response.HTML(c, http.StatusOK, "home/index.html", nil)
}

// catalogQuery reads ?sort=&direction=&q= keeping track of which were present.
func catalogQuery(c *gin.Context) model.CatalogQuery {
	var q model.CatalogQuery
	q.Sort, q.HasSort = c.GetQuery("sort")
	q.Direction, q.HasDirection = c.GetQuery("direction")
	q.Search, q.HasSearch = c.GetQuery("q")
	return q
}

// ListBooks handles GET /books/
func (h *BookHandler) ListBooks(c *gin.Context) {
	catalog, err := h.service.ListBooks(c.Request.Context(), catalogQuery(c))
	if err != nil {
		if errors.Is(err, model.ErrEmptySearch) {
			session.Error(c, "Please enter a search criteria")
			response.Redirect(c, "/books/")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "books/books.html", gin.H{
		"books":           catalog.Books,
		"search_term":     catalog.SearchTerm,
		"current_sorting": catalog.CurrentSorting,
	})
}

// ExportBooks handles GET /books/export/
func (h *BookHandler) ExportBooks(c *gin.Context) {
	data, err := h.service.ExportCatalog(c.Request.Context(), catalogQuery(c))
	if err != nil {
		if errors.Is(err, model.ErrEmptySearch) {
			session.Error(c, "Please enter a search criteria")
			response.Redirect(c, "/books/")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="books.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// BookDetail handles GET /books/:id/
func (h *BookHandler) BookDetail(c *gin.Context) {
	book, ok := h.loadBook(c)
	if !ok {
		return
	}

	awards, err := h.awards.ListBookAwards(c.Request.Context(), book.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "books/book_detail.html", gin.H{
		"book":   book,
		"awards": awards,
	})
}

// AddBook handles GET /books/add/
func (h *BookHandler) AddBook(c *gin.Context) {
	h.renderForm(c, "books/add_book.html", nil, model.BookForm{}, nil)
}

// CreateBook handles POST /books/add/
func (h *BookHandler) CreateBook(c *gin.Context) {
	var form model.BookForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	image, err := readImage(c)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.CreateBook(c.Request.Context(), form, image); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Failed to add new book. Please ensure information provided is valid")
			h.renderForm(c, "books/add_book.html", nil, form, errs)
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "New book successfully added")
	response.Redirect(c, "/books/add/")
}

// EditBook handles GET /books/edit/:id/
func (h *BookHandler) EditBook(c *gin.Context) {
	book, ok := h.loadBook(c)
	if !ok {
		return
	}

	session.Info(c, fmt.Sprintf("You are editing %s", book.Title))
	h.renderForm(c, "books/edit_book.html", book, model.NewBookForm(book), nil)
}

// UpdateBook handles POST /books/edit/:id/
func (h *BookHandler) UpdateBook(c *gin.Context) {
	book, ok := h.loadBook(c)
	if !ok {
		return
	}

	var form model.BookForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	image, err := readImage(c)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	updated, err := h.service.UpdateBook(c.Request.Context(), book.ID, form, image)
	if err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Failed to update book. Please ensure information provided is valid")
			h.renderForm(c, "books/edit_book.html", book, form, errs)
			return
		}
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "Book successfully updated")
	response.Redirect(c, fmt.Sprintf("/books/%d/", updated.ID))
}

// DeleteBook handles POST /books/delete/:id/
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "Book deleted")
	response.Redirect(c, "/books/")
}

// loadBook resolves the :id parameter, rendering 404 when there is no such book.
func (h *BookHandler) loadBook(c *gin.Context) (*model.Book, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return nil, false
	}

	book, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c)
		} else {
			response.InternalError(c, err)
		}
		return nil, false
	}
	return book, true
}

func (h *BookHandler) renderForm(c *gin.Context, name string, book *model.Book, form model.BookForm, errs forms.Errors) {
	authors, err := h.authors.ListAuthors(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, name, gin.H{
		"book":    book,
		"form":    form,
		"errors":  errs,
		"authors": authors,
	})
}

// readImage returns the uploaded image, or nil when the form carried none.
func readImage(c *gin.Context) (*service.ImageUpload, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("read image upload: %w", err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open image upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("read image upload: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &service.ImageUpload{Filename: header.Filename, Data: data}, nil
}
