package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookworm-backend/internal/config"
	infraCache "bookworm-backend/internal/infrastructure/cache"
	"bookworm-backend/internal/infrastructure/database"
	"bookworm-backend/internal/infrastructure/queue"
	"bookworm-backend/internal/infrastructure/storage"
	"bookworm-backend/pkg/cache"
	"bookworm-backend/pkg/jwt"

	"bookworm-backend/internal/domains/book"
	bookHandler "bookworm-backend/internal/domains/book/handler"
	bookRepo "bookworm-backend/internal/domains/book/repository"
	bookService "bookworm-backend/internal/domains/book/service"
	"bookworm-backend/internal/domains/user"
	userHandler "bookworm-backend/internal/domains/user/handler"
	userRepo "bookworm-backend/internal/domains/user/repository"
	userService "bookworm-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Build order matters:
// config → infrastructure → repositories → services → handlers.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Cache   cache.Cache
	Storage *storage.MinIOStorage
	Tasks   *queue.Client
	Tokens  *jwt.Manager

	UserRepo    user.Repository
	UserService user.Service
	UserHandler *userHandler.UserHandler

	BookRepo    book.Repository
	BookService book.Service
	BookHandler *bookHandler.BookHandler

	redis *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing container...")

	c := &Container{}

	// Config first, it depends on nothing.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Infrastructure.
	c.DB = database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.redis = infraCache.NewRedisCache(cfg.Redis)
	if err := c.redis.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = c.redis

	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	c.Tasks = queue.NewClient(cfg.Redis)
	c.Tokens = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry())

	// Repositories.
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)

	// Services.
	c.UserService = userService.NewUserService(c.UserRepo, c.Tokens)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Storage, c.Tasks)

	// Handlers.
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Println("✅ Container ready")
	return c, nil
}

// Cleanup releases held resources on shutdown.
func (c *Container) Cleanup() {
	if c.Tasks != nil {
		if err := c.Tasks.Close(); err != nil {
			log.Printf("⚠️  Failed to close task client: %v", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close redis: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Println("🧹 Container cleaned up")
}
