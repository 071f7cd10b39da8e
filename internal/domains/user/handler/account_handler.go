package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-web/internal/domains/user/model"
	"bookstore-web/internal/domains/user/service"
	"bookstore-web/internal/shared/auth"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/internal/shared/response"
	"bookstore-web/internal/shared/session"
	"bookstore-web/internal/shared/utils"
)

// CookieConfig describes the access token cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge int // seconds
}

// AccountHandler serves signup, login and logout.
type AccountHandler struct {
	service service.ServiceInterface
	cookie  CookieConfig
}

func NewAccountHandler(service service.ServiceInterface, cookie CookieConfig) *AccountHandler {
	return &AccountHandler{service: service, cookie: cookie}
}

// SignupPage handles GET /accounts/signup/
func (h *AccountHandler) SignupPage(c *gin.Context) {
	if _, ok := auth.User(c); ok {
		response.Redirect(c, "/")
		return
	}
	response.HTML(c, http.StatusOK, "accounts/signup.html", gin.H{"form": model.SignupForm{}})
}

// Signup handles POST /accounts/signup/
func (h *AccountHandler) Signup(c *gin.Context) {
	var form model.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	if _, err := h.service.Register(c.Request.Context(), form); err != nil {
		if errs, ok := forms.FieldErrors(err); ok {
			form.Password, form.PasswordConfirm = "", ""
			response.HTML(c, http.StatusOK, "accounts/signup.html", gin.H{"form": form, "errors": errs})
			return
		}
		response.InternalError(c, err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), model.LoginForm{
		Email:    form.Normalize().Email,
		Password: form.Password,
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}

	h.setToken(c, token)
	session.Success(c, fmt.Sprintf("Successfully signed in as %s.", user.Email))
	response.Redirect(c, "/")
}

// LoginPage handles GET /accounts/login/
func (h *AccountHandler) LoginPage(c *gin.Context) {
	next := utils.SafeRedirect(c.Query("next"), "")
	if _, ok := auth.User(c); ok {
		response.Redirect(c, utils.SafeRedirect(next, "/"))
		return
	}
	response.HTML(c, http.StatusOK, "accounts/login.html", gin.H{"form": model.LoginForm{Next: next}})
}

// Login handles POST /accounts/login/
func (h *AccountHandler) Login(c *gin.Context) {
	var form model.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		response.InternalError(c, err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), form)
	if err != nil {
		form.Password = ""
		if errs, ok := forms.FieldErrors(err); ok {
			response.HTML(c, http.StatusOK, "accounts/login.html", gin.H{"form": form, "errors": errs})
			return
		}
		if errors.Is(err, model.ErrInvalidCredentials) || errors.Is(err, model.ErrUserInactive) {
			session.Error(c, "The e-mail address and/or password you specified are not correct.")
			response.HTML(c, http.StatusOK, "accounts/login.html", gin.H{"form": form})
			return
		}
		response.InternalError(c, err)
		return
	}

	h.setToken(c, token)
	session.Success(c, fmt.Sprintf("Successfully signed in as %s.", user.Email))
	response.Redirect(c, utils.SafeRedirect(form.Next, "/"))
}

// Logout handles POST /accounts/logout/
func (h *AccountHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	session.Success(c, "You have signed out.")
	response.Redirect(c, "/")
}

func (h *AccountHandler) setToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}
