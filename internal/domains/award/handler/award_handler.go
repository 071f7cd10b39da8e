package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-web/internal/domains/award/model"
	"bookstore-web/internal/domains/award/service"
	bookModel "bookstore-web/internal/domains/book/model"
	bookService "bookstore-web/internal/domains/book/service"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/internal/shared/response"
	"bookstore-web/internal/shared/session"
	"bookstore-web/internal/shared/utils"
)

// AwardHandler serves the award pages, award CRUD and award detail CRUD.
type AwardHandler struct {
	service service.ServiceInterface
	books   bookService.ServiceInterface
}

func NewAwardHandler(service service.ServiceInterface, books bookService.ServiceInterface) *AwardHandler {
	return &AwardHandler{service: service, books: books}
}

// ListAwards handles GET /books/awards/
func (h *AwardHandler) ListAwards(c *gin.Context) {
	awards, err := h.service.ListAwards(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "awards/awards.html", gin.H{"awards": awards})
}

// AwardDetail handles GET /books/awards/:id/
func (h *AwardHandler) AwardDetail(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	page, err := h.service.GetAwardPage(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "awards/award_detail.html", gin.H{
		"award":   page.Award,
		"details": page.Details,
		"years":   page.Years,
	})
}

// AddAward handles GET /books/awards/add/
func (h *AwardHandler) AddAward(c *gin.Context) {
	response.HTML(c, http.StatusOK, "awards/add_award.html", gin.H{"form": model.AwardForm{}})
}

// CreateAward handles POST /books/awards/add/
func (h *AwardHandler) CreateAward(c *gin.Context) {
	var form model.AwardForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.CreateAward(c.Request.Context(), form); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Failed to add new award. Please ensure information provided is valid")
			response.HTML(c, http.StatusOK, "awards/add_award.html", gin.H{"form": form, "errors": errs})
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "New award successfully added")
	response.Redirect(c, "/books/awards/add/")
}

// EditAward handles GET /books/awards/edit/:id/
func (h *AwardHandler) EditAward(c *gin.Context) {
	award, ok := h.loadAward(c)
	if !ok {
		return
	}

	session.Info(c, fmt.Sprintf("You are editing %s", award.FriendlyName))
	response.HTML(c, http.StatusOK, "awards/edit_award.html", gin.H{
		"award": award,
		"form":  model.NewAwardForm(award),
	})
}

// UpdateAward handles POST /books/awards/edit/:id/
func (h *AwardHandler) UpdateAward(c *gin.Context) {
	award, ok := h.loadAward(c)
	if !ok {
		return
	}

	var form model.AwardForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.UpdateAward(c.Request.Context(), award.ID, form); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Failed to update award. Please ensure information provided is valid")
			response.HTML(c, http.StatusOK, "awards/edit_award.html", gin.H{
				"award":  award,
				"form":   form,
				"errors": errs,
			})
			return
		}
		h.fail(c, err)
		return
	}

	session.Success(c, "Award successfully updated")
	response.Redirect(c, "/books/awards/")
}

// DeleteAward handles POST /books/awards/delete/:id/
func (h *AwardHandler) DeleteAward(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.service.DeleteAward(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	session.Success(c, "Award deleted")
	response.Redirect(c, "/books/awards/")
}

// AddAwardDetail handles GET /books/award_details/add/
func (h *AwardHandler) AddAwardDetail(c *gin.Context) {
	h.renderDetailForm(c, "awards/add_award_details.html", nil, model.AwardDetailsForm{}, nil)
}

// CreateAwardDetail handles POST /books/award_details/add/
func (h *AwardHandler) CreateAwardDetail(c *gin.Context) {
	var form model.AwardDetailsForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.CreateAwardDetail(c.Request.Context(), form); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Failed to add award details. Please ensure information provided is valid")
			h.renderDetailForm(c, "awards/add_award_details.html", nil, form, errs)
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "Award Details successfully added")
	response.Redirect(c, "/books/award_details/add/")
}

// EditAwardDetail handles GET /books/award_details/edit/:id/
func (h *AwardHandler) EditAwardDetail(c *gin.Context) {
	detail, ok := h.loadDetail(c)
	if !ok {
		return
	}

	session.Info(c, fmt.Sprintf("You are editing %s", detail.BookTitle))
	h.renderDetailForm(c, "awards/edit_award_details.html", detail, model.NewAwardDetailsForm(detail), nil)
}

// UpdateAwardDetail handles POST /books/award_details/edit/:id/
func (h *AwardHandler) UpdateAwardDetail(c *gin.Context) {
	detail, ok := h.loadDetail(c)
	if !ok {
		return
	}

	var form model.AwardDetailsForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.UpdateAwardDetail(c.Request.Context(), detail.ID, form); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Failed to update award detail. Please ensure information provided is valid")
			h.renderDetailForm(c, "awards/edit_award_details.html", detail, form, errs)
			return
		}
		h.fail(c, err)
		return
	}

	session.Success(c, "Award detail successfully updated")
	response.Redirect(c, "/books/awards/")
}

// DeleteAwardDetail handles POST /books/award_details/delete/:id/
func (h *AwardHandler) DeleteAwardDetail(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.service.DeleteAwardDetail(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	session.Success(c, "Award detail deleted")
	response.Redirect(c, "/books/awards/")
}

func (h *AwardHandler) loadAward(c *gin.Context) (*model.Award, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return nil, false
	}

	award, err := h.service.GetAward(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return award, true
}

func (h *AwardHandler) loadDetail(c *gin.Context) (*model.AwardDetail, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return nil, false
	}

	detail, err := h.service.GetAwardDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return detail, true
}

func (h *AwardHandler) renderDetailForm(c *gin.Context, name string, detail *model.AwardDetail, form model.AwardDetailsForm, errs forms.Errors) {
	ctx := c.Request.Context()

	awards, err := h.service.ListAwards(ctx)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	catalog, err := h.books.ListBooks(ctx, bookModel.CatalogQuery{})
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, name, gin.H{
		"detail": detail,
		"form":   form,
		"errors": errs,
		"awards": awards,
		"books":  catalog.Books,
	})
}

// fail maps the award not-found errors to 404 and anything else to 500.
func (h *AwardHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, model.ErrAwardNotFound) || errors.Is(err, model.ErrAwardDetailNotFound) {
		response.NotFound(c)
		return
	}
	response.InternalError(c, err)
}
