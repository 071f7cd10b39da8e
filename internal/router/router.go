package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-web/internal/shared/middleware"
	"bookstore-web/internal/shared/response"
	"bookstore-web/pkg/container"
	"bookstore-web/web/templates"
)

// Setup builds the gin engine with every page route.
func Setup(c *container.Container) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = 8 << 20

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Session(middleware.SessionConfig{
			Store:        c.Sessions,
			CookieName:   c.Config.Session.CookieName,
			CookieSecure: c.Config.Session.CookieSecure,
			MaxAge:       c.Config.Session.TTL,
		}),
		middleware.Authenticate(c.JWTManager, c.Config.JWT.CookieName),
	)

	router.NoRoute(response.NotFound)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/", c.BookHandler.Home)

	setupBookRoutes(router, c)
	setupAuthorRoutes(router, c)
	setupAwardRoutes(router, c)
	setupBagRoutes(router, c)
	setupCheckoutRoutes(router, c)
	setupProfileRoutes(router, c)
	setupAccountRoutes(router, c)

	return router, nil
}

// ========================================
// CATALOG ROUTES
// ========================================
func setupBookRoutes(r *gin.Engine, c *container.Container) {
	books := r.Group("/books")
	{
		books.GET("/", c.BookHandler.ListBooks)
		books.GET("/:id/", c.BookHandler.BookDetail)

		admin := books.Group("", middleware.SuperuserRequired())
		admin.GET("/export/", c.BookHandler.ExportBooks)
		admin.GET("/add/", c.BookHandler.AddBook)
		admin.POST("/add/", c.BookHandler.CreateBook)
		admin.GET("/edit/:id/", c.BookHandler.EditBook)
		admin.POST("/edit/:id/", c.BookHandler.UpdateBook)
		admin.POST("/delete/:id/", c.BookHandler.DeleteBook)
	}
}

func setupAuthorRoutes(r *gin.Engine, c *container.Container) {
	authors := r.Group("/books/authors")
	{
		authors.GET("/", c.AuthorHandler.ListAuthors)
		authors.GET("/:id/", c.AuthorHandler.AuthorDetail)

		admin := authors.Group("", middleware.SuperuserRequired())
		admin.GET("/add/", c.AuthorHandler.AddAuthor)
		admin.POST("/add/", c.AuthorHandler.CreateAuthor)
		admin.GET("/edit/:id/", c.AuthorHandler.EditAuthor)
		admin.POST("/edit/:id/", c.AuthorHandler.UpdateAuthor)
		admin.POST("/delete/:id/", c.AuthorHandler.DeleteAuthor)
	}
}

func setupAwardRoutes(r *gin.Engine, c *container.Container) {
	awards := r.Group("/books/awards")
	{
		awards.GET("/", c.AwardHandler.ListAwards)
		awards.GET("/:id/", c.AwardHandler.AwardDetail)

		admin := awards.Group("", middleware.SuperuserRequired())
		admin.GET("/add/", c.AwardHandler.AddAward)
		admin.POST("/add/", c.AwardHandler.CreateAward)
		admin.GET("/edit/:id/", c.AwardHandler.EditAward)
		admin.POST("/edit/:id/", c.AwardHandler.UpdateAward)
		admin.POST("/delete/:id/", c.AwardHandler.DeleteAward)
	}

	details := r.Group("/books/award_details", middleware.SuperuserRequired())
	{
		details.GET("/add/", c.AwardHandler.AddAwardDetail)
		details.POST("/add/", c.AwardHandler.CreateAwardDetail)
		details.GET("/edit/:id/", c.AwardHandler.EditAwardDetail)
		details.POST("/edit/:id/", c.AwardHandler.UpdateAwardDetail)
		details.POST("/delete/:id/", c.AwardHandler.DeleteAwardDetail)
	}
}

// ========================================
// BAG & CHECKOUT ROUTES
// ========================================
func setupBagRoutes(r *gin.Engine, c *container.Container) {
	bag := r.Group("/bag")
	{
		bag.GET("/", c.BagHandler.ViewBag)
		bag.POST("/add/:book_id/", c.BagHandler.AddToBag)
		bag.POST("/adjust/:book_id/", c.BagHandler.AdjustBag)
		bag.POST("/remove/:book_id/", c.BagHandler.RemoveFromBag)
		bag.POST("/clear/", c.BagHandler.ClearBag)
	}
}

func setupCheckoutRoutes(r *gin.Engine, c *container.Container) {
	checkout := r.Group("/checkout")
	{
		checkout.GET("/", c.CheckoutHandler.Checkout)
		checkout.POST("/", c.CheckoutHandler.PlaceOrder)
		checkout.GET("/success/:order_number/", c.CheckoutHandler.CheckoutSuccess)
	}
}

// ========================================
// ACCOUNT ROUTES
// ========================================
func setupProfileRoutes(r *gin.Engine, c *container.Container) {
	profile := r.Group("/profile", middleware.LoginRequired())
	{
		profile.GET("/", c.ProfileHandler.Profile)
		profile.POST("/", c.ProfileHandler.UpdateProfile)
		profile.GET("/order_history/:order_number/", c.ProfileHandler.OrderHistory)
	}
}

func setupAccountRoutes(r *gin.Engine, c *container.Container) {
	accounts := r.Group("/accounts")
	{
		accounts.GET("/signup/", c.AccountHandler.SignupPage)
		accounts.POST("/signup/", c.AccountHandler.Signup)
		accounts.GET("/login/", c.AccountHandler.LoginPage)
		accounts.POST("/login/", c.AccountHandler.Login)
		accounts.POST("/logout/", c.AccountHandler.Logout)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := c.HealthCheck(ctx.Request.Context())

		status := http.StatusOK
		for name, result := range checks {
			if result != "ok" && !(name == "database" && result == "memory") {
				status = http.StatusServiceUnavailable
			}
		}

		ctx.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
