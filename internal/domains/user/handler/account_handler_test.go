package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-web/internal/shared/webtest"
)

func TestSignupSignsIn(t *testing.T) {
	w := webtest.New(t)

	rec := w.PostForm("/accounts/signup/", url.Values{
		"email":            {"Reader@Example.com"},
		"full_name":        {"Reader"},
		"password":         {"password123"},
		"password_confirm": {"password123"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, w.Follow(rec).Body.String(), "Successfully signed in as reader@example.com.")

	// signed-in users are bounced from the login page
	rec = w.Get("/accounts/login/?next=/profile/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile/", rec.Header().Get("Location"))
}

func TestSignup_PasswordMismatch(t *testing.T) {
	w := webtest.New(t)

	rec := w.PostForm("/accounts/signup/", url.Values{
		"email":            {"reader@example.com"},
		"password":         {"password123"},
		"password_confirm": {"password124"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := w.Container.UserRepo.GetByEmail(t.Context(), "reader@example.com")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	w := webtest.New(t)
	w.SignIn("reader@example.com", false)
	w.SignOut()

	rec := w.PostForm("/accounts/login/", url.Values{
		"email":    {"reader@example.com"},
		"password": {"wrong-password"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "password you specified are not correct.")

	rec = w.PostForm("/accounts/login/", url.Values{
		"email":    {"reader@example.com"},
		"password": {"password123"},
		"next":     {"/profile/"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile/", rec.Header().Get("Location"))
	assert.Equal(t, http.StatusOK, w.Follow(rec).Code)

	rec = w.PostForm("/accounts/logout/", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, w.Follow(rec).Body.String(), "You have signed out.")

	rec = w.Get("/profile/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/accounts/login/?next=%2Fprofile%2F", rec.Header().Get("Location"))
}
