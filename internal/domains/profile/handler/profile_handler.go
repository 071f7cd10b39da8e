package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutModel "bookstore-web/internal/domains/checkout/model"
	checkoutService "bookstore-web/internal/domains/checkout/service"
	"bookstore-web/internal/domains/profile/model"
	"bookstore-web/internal/domains/profile/service"
	"bookstore-web/internal/shared/auth"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/internal/shared/response"
	"bookstore-web/internal/shared/session"
)

// ProfileHandler serves the signed-in user's profile and order history.
// Routes are mounted behind LoginRequired.
type ProfileHandler struct {
	service service.ServiceInterface
	orders  checkoutService.ServiceInterface
}

func NewProfileHandler(service service.ServiceInterface, orders checkoutService.ServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service, orders: orders}
}

// Profile handles GET /profile/
func (h *ProfileHandler) Profile(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	h.render(c, profile, model.NewUserProfileForm(profile), nil)
}

// UpdateProfile handles POST /profile/
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	var form model.UserProfileForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.UpdateProfile(c.Request.Context(), profile.UserID, form); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			session.Error(c, "Update failed. Please ensure the form is valid.")
			h.render(c, profile, form, errs)
			return
		}
		response.InternalError(c, err)
		return
	}

	session.Success(c, "Profile updated successfully")
	response.Redirect(c, "/profile/")
}

// OrderHistory handles GET /profile/order_history/:order_number/
// Only the order's owner or a superuser can see it; anyone else gets 404.
func (h *ProfileHandler) OrderHistory(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		if errors.Is(err, checkoutModel.ErrOrderNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	owner := order.UserProfileID != nil && *order.UserProfileID == profile.ID
	if !owner && !auth.IsSuperuser(c) {
		response.NotFound(c)
		return
	}

	session.Info(c, fmt.Sprintf(
		"This is a past confirmation for order number %s. A confirmation email was sent on the order date.",
		order.OrderNumber,
	))
	response.HTML(c, http.StatusOK, "checkout/checkout_success.html", gin.H{
		"order":        order,
		"from_profile": true,
	})
}

func (h *ProfileHandler) loadProfile(c *gin.Context) (*model.UserProfile, bool) {
	userID, ok := auth.UserID(c)
	if !ok {
		response.NotFound(c)
		return nil, false
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			response.NotFound(c)
		} else {
			response.InternalError(c, err)
		}
		return nil, false
	}
	return profile, true
}

func (h *ProfileHandler) render(c *gin.Context, profile *model.UserProfile, form model.UserProfileForm, errs forms.Errors) {
	orders, err := h.orders.ListOrders(c.Request.Context(), profile.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, "profiles/profile.html", gin.H{
		"profile": profile,
		"form":    form,
		"errors":  errs,
		"orders":  orders,
	})
}
