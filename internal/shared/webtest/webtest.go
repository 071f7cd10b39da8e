// Package webtest drives the full router against the in-memory store for handler tests.
package webtest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookstore-web/internal/config"
	userModel "bookstore-web/internal/domains/user/model"
	"bookstore-web/internal/infrastructure/cache"
	"bookstore-web/internal/infrastructure/memstore"
	"bookstore-web/internal/router"
	"bookstore-web/pkg/container"
)

// W is a browser-like client: it keeps cookies between requests.
type W struct {
	t         *testing.T
	Router    *gin.Engine
	Container *container.Container
	Store     *memstore.Store

	cookies map[string]*http.Cookie
}

// Config returns the settings used by New.
func Config() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Bookstore", Environment: "test", Port: "0", Version: "test"},
		Session: config.SessionConfig{
			Store:      "memory",
			CookieName: "sessionid",
			TTL:        time.Hour,
		},
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			CookieName:  "access_token",
			ExpiryHours: 1,
		},
		Shop: config.ShopConfig{
			FreeDeliveryThreshold:      decimal.NewFromInt(50),
			StandardDeliveryPercentage: decimal.NewFromInt(10),
		},
	}
}

// New builds an application on a fresh in-memory store.
func New(t *testing.T) *W {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	c, err := container.NewContainer(context.Background(), Config(), nil,
		container.WithMemoryStore(store),
		container.WithCache(cache.NewMemoryCache()),
		container.WithPasswordCost(bcrypt.MinCost),
	)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	r, err := router.Setup(c)
	require.NoError(t, err)

	return &W{t: t, Router: r, Container: c, Store: store, cookies: make(map[string]*http.Cookie)}
}

// SignIn creates an account and attaches its token cookie to later requests.
func (w *W) SignIn(email string, superuser bool) *userModel.User {
	w.t.Helper()
	ctx := context.Background()
	svc := w.Container.UserService

	var (
		u   *userModel.User
		err error
	)
	if superuser {
		u, err = svc.CreateSuperuser(ctx, email, "Admin", "password123")
	} else {
		u, err = svc.Register(ctx, userModel.SignupForm{
			Email:           email,
			FullName:        "Reader",
			Password:        "password123",
			PasswordConfirm: "password123",
		})
	}
	require.NoError(w.t, err)

	token, err := w.Container.JWTManager.GenerateToken(u.ID.String(), u.Email, u.FullName, u.IsSuperuser)
	require.NoError(w.t, err)

	name := w.Container.Config.JWT.CookieName
	w.cookies[name] = &http.Cookie{Name: name, Value: token}
	return u
}

// SignOut drops the token cookie.
func (w *W) SignOut() {
	delete(w.cookies, w.Container.Config.JWT.CookieName)
}

// Get performs a GET request.
func (w *W) Get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return w.do(req)
}

// PostForm performs a form POST.
func (w *W) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return w.do(req)
}

// Follow performs a GET on the Location of a redirect response.
func (w *W) Follow(rec *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	w.t.Helper()
	require.Equal(w.t, http.StatusFound, rec.Code, "expected a redirect")
	return w.Get(rec.Header().Get("Location"))
}

func (w *W) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range w.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	w.Router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(w.cookies, c.Name)
			continue
		}
		w.cookies[c.Name] = &http.Cookie{Name: c.Name, Value: c.Value}
	}
	return rec
}
