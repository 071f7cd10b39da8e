package container

import (
	"context"
	"fmt"
	"time"

	"bookstore-web/internal/config"
	"bookstore-web/internal/infrastructure/cache"
	"bookstore-web/internal/infrastructure/database"
	"bookstore-web/internal/infrastructure/memstore"
	"bookstore-web/internal/infrastructure/queue"
	"bookstore-web/internal/infrastructure/storage"
	"bookstore-web/internal/shared/session"
	pkgCache "bookstore-web/pkg/cache"
	"bookstore-web/pkg/jwt"
	"bookstore-web/pkg/logger"

	authorHandler "bookstore-web/internal/domains/author/handler"
	authorRepo "bookstore-web/internal/domains/author/repository"
	authorService "bookstore-web/internal/domains/author/service"

	awardHandler "bookstore-web/internal/domains/award/handler"
	awardRepo "bookstore-web/internal/domains/award/repository"
	awardService "bookstore-web/internal/domains/award/service"

	bagHandler "bookstore-web/internal/domains/bag/handler"
	bagModel "bookstore-web/internal/domains/bag/model"
	bagService "bookstore-web/internal/domains/bag/service"

	bookHandler "bookstore-web/internal/domains/book/handler"
	bookRepo "bookstore-web/internal/domains/book/repository"
	bookService "bookstore-web/internal/domains/book/service"

	checkoutHandler "bookstore-web/internal/domains/checkout/handler"
	checkoutRepo "bookstore-web/internal/domains/checkout/repository"
	checkoutService "bookstore-web/internal/domains/checkout/service"

	profileHandler "bookstore-web/internal/domains/profile/handler"
	profileRepo "bookstore-web/internal/domains/profile/repository"
	profileService "bookstore-web/internal/domains/profile/service"

	userHandler "bookstore-web/internal/domains/user/handler"
	userRepo "bookstore-web/internal/domains/user/repository"
	userService "bookstore-web/internal/domains/user/service"
)

// Container holds the application's dependency graph.
// Build order: infrastructure, repositories, services, handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB // nil with DB_DRIVER=memory
	Memory     *memstore.Store      // nil with DB_DRIVER=postgres
	Redis      *cache.RedisClient   // nil when neither sessions nor the queue use Redis
	Cache      pkgCache.Cache
	Sessions   *session.Store
	JWTManager *jwt.Manager
	Storage    storage.ObjectStorage // nil when MinIO is not configured
	Queue      *queue.Client         // nil when the queue is disabled

	// ========================================
	// REPOSITORIES
	// ========================================
	AuthorRepo  authorRepo.RepositoryInterface
	BookRepo    bookRepo.RepositoryInterface
	AwardRepo   awardRepo.RepositoryInterface
	UserRepo    userRepo.RepositoryInterface
	ProfileRepo profileRepo.RepositoryInterface
	OrderRepo   checkoutRepo.RepositoryInterface

	// ========================================
	// SERVICES
	// ========================================
	AuthorService   authorService.ServiceInterface
	BookService     *bookService.BookService
	AwardService    awardService.ServiceInterface
	UserService     userService.ServiceInterface
	ProfileService  profileService.ServiceInterface
	BagService      bagService.ServiceInterface
	CheckoutService checkoutService.ServiceInterface

	// ========================================
	// HANDLERS
	// ========================================
	BookHandler     *bookHandler.BookHandler
	AuthorHandler   *authorHandler.AuthorHandler
	AwardHandler    *awardHandler.AwardHandler
	BagHandler      *bagHandler.BagHandler
	CheckoutHandler *checkoutHandler.CheckoutHandler
	ProfileHandler  *profileHandler.ProfileHandler
	AccountHandler  *userHandler.AccountHandler

	passwordCost int
}

// Option customises a container before it is built.
type Option func(*Container)

// WithMemoryStore uses the given in-memory store instead of the configured database.
func WithMemoryStore(store *memstore.Store) Option {
	return func(c *Container) { c.Memory = store }
}

// WithCache uses the given cache for sessions instead of the configured store.
func WithCache(cache pkgCache.Cache) Option {
	return func(c *Container) { c.Cache = cache }
}

// WithPasswordCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func WithPasswordCost(cost int) Option {
	return func(c *Container) { c.passwordCost = cost }
}

// NewContainer builds the dependency graph from cfg and dbConfig.
func NewContainer(ctx context.Context, cfg *config.Config, dbConfig *database.DBConfig, opts ...Option) (*Container, error) {
	c := &Container{Config: cfg, passwordCost: userService.DefaultPasswordCost}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.initInfrastructure(ctx, dbConfig); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"database": c.driverName(),
		"sessions": cfg.Session.Store,
		"storage":  c.Storage != nil,
		"queue":    c.Queue != nil,
	})
	return c, nil
}

// ========================================
// INFRASTRUCTURE
// ========================================

func (c *Container) initInfrastructure(ctx context.Context, dbConfig *database.DBConfig) error {
	cfg := c.Config

	if c.Memory == nil {
		if dbConfig == nil || dbConfig.Driver == "memory" {
			c.Memory = memstore.New()
		} else {
			db := database.NewPostgresDB(dbConfig)
			if err := db.Connect(ctx); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			c.DB = db
		}
	}

	needsRedis := (c.Cache == nil && cfg.Session.Store == "redis") || cfg.Queue.Enabled
	if needsRedis {
		c.Redis = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := c.Redis.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	if c.Cache == nil {
		if cfg.Session.Store == "redis" {
			c.Cache = cache.NewRedisCache(c.Redis, "bookstore:")
		} else {
			c.Cache = cache.NewMemoryCache()
		}
	}
	c.Sessions = session.NewStore(c.Cache, cfg.Session.TTL)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	if cfg.MinIO.Endpoint != "" {
		objects, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("failed to init object storage: %w", err)
		}
		c.Storage = objects
	}

	if cfg.Queue.Enabled {
		c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	}

	return nil
}

// ========================================
// REPOSITORIES
// ========================================

func (c *Container) initRepositories() {
	if c.Memory != nil {
		c.AuthorRepo = c.Memory.Authors()
		c.BookRepo = c.Memory.Books()
		c.AwardRepo = c.Memory.Awards()
		c.UserRepo = c.Memory.Users()
		c.ProfileRepo = c.Memory.Profiles()
		c.OrderRepo = c.Memory.Orders()
		return
	}

	pool := c.DB.Pool
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.AwardRepo = awardRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.ProfileRepo = profileRepo.NewPostgresRepository(pool)
	c.OrderRepo = checkoutRepo.NewPostgresRepository(pool)
}

// ========================================
// SERVICES
// ========================================

func (c *Container) initServices() {
	// Interface values stay untyped nil when the backing client is absent.
	var enqueuer queue.Enqueuer
	if c.Queue != nil {
		enqueuer = c.Queue
	}

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Storage, storage.NewImageProcessor(), enqueuer)
	c.AwardService = awardService.NewAwardService(c.AwardRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.passwordCost)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo)
	c.BagService = bagService.NewBagService(c.BookRepo, bagModel.DeliveryRules{
		FreeDeliveryThreshold:      c.Config.Shop.FreeDeliveryThreshold,
		StandardDeliveryPercentage: c.Config.Shop.StandardDeliveryPercentage,
	})
	c.CheckoutService = checkoutService.NewCheckoutService(c.OrderRepo, c.BagService, c.ProfileService)
}

// ========================================
// HANDLERS
// ========================================

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.AuthorService, c.AwardService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.BookService)
	c.AwardHandler = awardHandler.NewAwardHandler(c.AwardService, c.BookService)
	c.BagHandler = bagHandler.NewBagHandler(c.BagService)
	c.CheckoutHandler = checkoutHandler.NewCheckoutHandler(c.CheckoutService, c.BagService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService, c.CheckoutService)
	c.AccountHandler = userHandler.NewAccountHandler(c.UserService, userHandler.CookieConfig{
		Name:   c.Config.JWT.CookieName,
		Secure: c.Config.Session.CookieSecure,
		MaxAge: int(c.JWTManager.Expiry().Seconds()),
	})
}

// HealthCheck pings every configured backend.
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{"database": "ok", "cache": "ok"}

	if c.DB != nil {
		if err := c.DB.HealthCheck(ctx); err != nil {
			status["database"] = err.Error()
		}
	} else {
		status["database"] = "memory"
	}

	if err := c.Cache.Ping(ctx); err != nil {
		status["cache"] = err.Error()
	}
	return status
}

func (c *Container) driverName() string {
	if c.DB != nil {
		return "postgres"
	}
	return "memory"
}

// Cleanup releases connections. Safe to call on a partially built container.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}

	logger.Info("container cleanup completed", nil)
}
