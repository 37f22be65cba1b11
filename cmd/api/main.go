package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"storefront/internal/adapter/api"
	"storefront/internal/adapter/api/handler"
	"storefront/internal/adapter/api/router"
	"storefront/internal/adapter/repository"
	domainrepo "storefront/internal/domain/repository"
	"storefront/internal/infrastructure/cache"
	"storefront/internal/usecase"
	"storefront/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var productRepo domainrepo.ProductRepository

	switch cfg.StoreBackend {
	case "memory":
		log.Printf("Using in-memory product store")
		productRepo = repository.NewMemoryProductRepository()
	default:
		var opts []option.ClientOption

		// Service account from env (production) or file path (local dev);
		// application default credentials otherwise.
		if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
			log.Printf("Using Firebase service account from environment variable")
			opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
		} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
			log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
			opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
		}

		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		productRepo = repository.NewFirestoreProductRepository(firestoreClient)
	}

	var productCache *cache.ProductCache
	if cfg.RedisAddr != "" {
		rdb, err := cache.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		defer rdb.Close()
		productCache = cache.NewProductCache(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	}

	productUseCase := usecase.NewProductUseCase(productRepo, productCache)

	handler.Setup(productUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
