package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-web/internal/domains/author/model"
	"bookstore-web/internal/domains/author/service"
	bookService "bookstore-web/internal/domains/book/service"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/internal/shared/response"
	"bookstore-web/internal/shared/session"
	"bookstore-web/internal/shared/utils"
)

// AuthorHandler serves the author pages and author CRUD.
type AuthorHandler struct {
	service service.ServiceInterface
	books   bookService.ServiceInterface
}

func NewAuthorHandler(service service.ServiceInterface, books bookService.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: service, books: books}
}

// ListAuthors handles GET /books/authors/
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.service.ListAuthors(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "authors/authors.html", gin.H{"authors": authors})
}

// AuthorDetail handles GET /books/authors/:id/
func (h *AuthorHandler) AuthorDetail(c *gin.Context) {
	author, ok := h.loadAuthor(c)
	if !ok {
		return
	}

	books, err := h.books.ListByAuthor(c.Request.Context(), author.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "authors/author_detail.html", gin.H{
		"author": author,
		"books":  books,
	})
}

// AddAuthor handles GET /books/authors/add/
func (h *AuthorHandler) AddAuthor(c *gin.Context) {
	response.HTML(c, http.StatusOK, "authors/add_author.html", gin.H{"form": model.AuthorForm{}})
}

// CreateAuthor handles POST /books/authors/add/
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var form model.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.CreateAuthor(c.Request.Context(), form); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Failed to add new author. Please ensure information provided is valid")
			response.HTML(c, http.StatusOK, "authors/add_author.html", gin.H{"form": form, "errors": errs})
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "New author successfully added")
	response.Redirect(c, "/books/authors/add/")
}

// EditAuthor handles GET /books/authors/edit/:id/
func (h *AuthorHandler) EditAuthor(c *gin.Context) {
	author, ok := h.loadAuthor(c)
	if !ok {
		return
	}

	session.Info(c, fmt.Sprintf("You are editing %s", author.FriendlyName))
	response.HTML(c, http.StatusOK, "authors/edit_author.html", gin.H{
		"author": author,
		"form":   model.NewAuthorForm(author),
	})
}

// UpdateAuthor handles POST /books/authors/edit/:id/
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	author, ok := h.loadAuthor(c)
	if !ok {
		return
	}

	var form model.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.UpdateAuthor(c.Request.Context(), author.ID, form); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Failed to update author. Please ensure information provided is valid")
			response.HTML(c, http.StatusOK, "authors/edit_author.html", gin.H{
				"author": author,
				"form":   form,
				"errors": errs,
			})
			return
		}
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "Author successfully updated")
	response.Redirect(c, "/books/authors/")
}

// DeleteAuthor handles POST /books/authors/delete/:id/
// The author's books are kept, without an author.
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "Author deleted")
	response.Redirect(c, "/books/")
}

func (h *AuthorHandler) loadAuthor(c *gin.Context) (*model.Author, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return nil, false
	}

	author, err := h.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c)
		} else {
			response.InternalError(c, err)
		}
		return nil, false
	}
	return author, true
}
