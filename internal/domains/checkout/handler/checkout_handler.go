package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bagModel "bookstore-web/internal/domains/bag/model"
	bagService "bookstore-web/internal/domains/bag/service"
	"bookstore-web/internal/domains/checkout/model"
	"bookstore-web/internal/domains/checkout/service"
	"bookstore-web/internal/shared/auth"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/internal/shared/response"
	"bookstore-web/internal/shared/session"
)

const emptyBagMessage = "There's nothing in your bag at the moment"

// CheckoutHandler serves the checkout form and the order confirmation.
type CheckoutHandler struct {
	service service.ServiceInterface
	bag     bagService.ServiceInterface
}

func NewCheckoutHandler(service service.ServiceInterface, bag bagService.ServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{service: service, bag: bag}
}

// Checkout handles GET /checkout/
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	contents, ok := h.loadBag(c)
	if !ok {
		return
	}

	var (
		userID      *uuid.UUID
		email, name string
	)
	if claims, signedIn := auth.User(c); signedIn {
		email, name = claims.Email, claims.FullName
		if id, ok := auth.UserID(c); ok {
			userID = &id
		}
	}

	form := h.service.NewOrderForm(c.Request.Context(), userID, email, name)
	response.HTML(c, http.StatusOK, "checkout/checkout.html", gin.H{
		"form": form,
		"bag":  contents,
	})
}

// PlaceOrder handles POST /checkout/
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	contents, ok := h.loadBag(c)
	if !ok {
		return
	}

	var form model.OrderForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	var userID *uuid.UUID
	if id, ok := auth.UserID(c); ok {
		userID = &id
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), session.From(c), userID, form)
	if err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "There was an error with your form. Please double check your information.")
			response.HTML(c, http.StatusOK, "checkout/checkout.html", gin.H{
				"form":   form,
				"errors": errs,
				"bag":    contents,
			})
			return
		}
		if errors.Is(err, model.ErrEmptyBag) {
			session.Error(c, emptyBagMessage)
			response.Redirect(c, "/books/")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Redirect(c, fmt.Sprintf("/checkout/success/%s/", order.OrderNumber))
}

// CheckoutSuccess handles GET /checkout/success/:order_number/
func (h *CheckoutHandler) CheckoutSuccess(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, fmt.Sprintf("Order successfully processed! Your order number is %s.", order.OrderNumber))
	response.HTML(c, http.StatusOK, "checkout/checkout_success.html", gin.H{"order": order})
}

// loadBag prices the bag, redirecting to the catalog when it is empty.
func (h *CheckoutHandler) loadBag(c *gin.Context) (*bagModel.Contents, bool) {
	contents, err := h.bag.Contents(c.Request.Context(), session.From(c))
	if err != nil {
		response.InternalError(c, err)
		return nil, false
	}
	if contents.IsEmpty() {
		session.Error(c, emptyBagMessage)
		response.Redirect(c, "/books/")
		return nil, false
	}
	return contents, true
}
