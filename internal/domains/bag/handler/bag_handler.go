package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bookstore-web/internal/domains/bag/model"
	"bookstore-web/internal/domains/bag/service"
	bookModel "bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/shared/response"
	"bookstore-web/internal/shared/session"
	"bookstore-web/internal/shared/utils"
	"bookstore-web/pkg/logger"
)

// BagHandler serves the shopping bag.
type BagHandler struct {
	service service.ServiceInterface
}

func NewBagHandler(service service.ServiceInterface) *BagHandler {
	return &BagHandler{service: service}
}

// ViewBag handles GET /bag/
func (h *BagHandler) ViewBag(c *gin.Context) {
	contents, err := h.service.Contents(c.Request.Context(), session.From(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "bag/bag.html", gin.H{"bag": contents})
}

// AddToBag handles POST /bag/add/:book_id/
func (h *BagHandler) AddToBag(c *gin.Context) {
	bookID, ok := utils.ParseID(c.Param("book_id"))
	if !ok {
		response.NotFound(c)
		return
	}

	quantity := parseQuantity(c.PostForm("quantity"), 1)

	change, err := h.service.Add(c.Request.Context(), session.From(c), bookID, quantity)
	if err != nil {
		h.fail(c, err)
		return
	}

	if change.Previous > 0 {
		session.Success(c, fmt.Sprintf("Updated %s quantity to %d", change.Book.Title, change.Quantity))
	} else {
		session.Success(c, fmt.Sprintf("Added %s to your bag", change.Book.Title))
	}

	response.Redirect(c, utils.SafeRedirect(c.PostForm("redirect_url"), fmt.Sprintf("/books/%d/", bookID)))
}

// AdjustBag handles POST /bag/adjust/:book_id/
func (h *BagHandler) AdjustBag(c *gin.Context) {
	bookID, ok := utils.ParseID(c.Param("book_id"))
	if !ok {
		response.NotFound(c)
		return
	}

	quantity := parseQuantity(c.PostForm("quantity"), 0)

	change, err := h.service.Adjust(c.Request.Context(), session.From(c), bookID, quantity)
	if err != nil {
		h.fail(c, err)
		return
	}

	if change.Quantity > 0 {
		session.Success(c, fmt.Sprintf("Updated %s quantity to %d", change.Book.Title, change.Quantity))
	} else {
		session.Success(c, fmt.Sprintf("Removed %s from your bag", change.Book.Title))
	}

	response.Redirect(c, "/bag/")
}

// RemoveFromBag handles POST /bag/remove/:book_id/
// Called from the bag page script: it answers 200 or 500 and the page reloads.
func (h *BagHandler) RemoveFromBag(c *gin.Context) {
	bookID, ok := utils.ParseID(c.Param("book_id"))
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}

	change, err := h.service.Remove(c.Request.Context(), session.From(c), bookID)
	if err != nil {
		logger.Warn("failed to remove bag item", map[string]interface{}{"book_id": bookID, "error": err.Error()})
		session.Error(c, fmt.Sprintf("Error removing item: %s", err))
		c.Status(http.StatusInternalServerError)
		return
	}

	title := change.Book.Title
	if title == "" {
		title = "item"
	}
	session.Success(c, fmt.Sprintf("Removed %s from your bag", title))
	c.Status(http.StatusOK)
}

// ClearBag handles POST /bag/clear/
func (h *BagHandler) ClearBag(c *gin.Context) {
	h.service.Clear(session.From(c))
	session.Success(c, "Your bag is now empty")
	response.Redirect(c, "/bag/")
}

func (h *BagHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, bookModel.ErrBookNotFound) || errors.Is(err, model.ErrItemNotInBag) {
		response.NotFound(c)
		return
	}
	response.InternalError(c, err)
}

// parseQuantity reads a posted quantity, returning fallback when it is not a number.
func parseQuantity(raw string, fallback int) int {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return q
}
