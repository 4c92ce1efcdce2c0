package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/desprit/geoparse/app/config"
	"github.com/desprit/geoparse/app/controllers"
	"github.com/desprit/geoparse/app/services"
	"github.com/desprit/geoparse/internal/gazetteer"
	"github.com/desprit/geoparse/internal/parser"
	"github.com/desprit/geoparse/internal/suggest"
	"github.com/desprit/geoparse/routes"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if _, err := os.Stat("config/config.yaml"); err == nil {
			configPath = "config/config.yaml"
		}
	}
	if err := config.Load(configPath); err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("starting geoparse service")

	gaz, err := gazetteer.Load()
	if err != nil {
		logger.Fatal("failed to load gazetteer", zap.Error(err))
	}

	locationParser := parser.New(gaz, logger)
	suggester := suggest.New(gaz, suggest.Options{
		JaroWinklerWeight: config.C.Suggest.JWWeight,
		LevenshteinWeight: config.C.Suggest.LevWeight,
		MinScore:          config.C.Suggest.MinScore,
	})

	cache, mongoClient, err := buildCache(logger)
	if err != nil {
		logger.Fatal("failed to initialize cache", zap.Error(err))
	}
	defer cache.Close()
	if mongoClient != nil {
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error("mongo disconnect failed", zap.Error(err))
			}
		}()
	}

	service := services.NewLocationService(locationParser, suggester, cache, logger)
	controller := controllers.NewLocationController(service, logger)

	gin.SetMode(config.C.Server.Mode)
	router := gin.New()
	routes.SetupAllRoutes(router, controller, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.C.Server.Host, config.C.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

// buildCache picks the backend from configuration. The mongo client is
// returned so main can own its disconnect.
func buildCache(logger *zap.Logger) (services.ICacheService, *mongo.Client, error) {
	cfg := config.C.Cache
	switch cfg.Backend {
	case "", "memory":
		return services.NewMemoryCacheService(cfg.MaxItems, cfg.TTL.Std()), nil, nil
	case "redis":
		cache, err := services.NewRedisCacheService(cfg.RedisURL, cfg.TTL.Std(), logger)
		return cache, nil, err
	case "mongo":
		client, db, err := connectMongo(cfg)
		if err != nil {
			return nil, nil, err
		}
		cache, err := services.NewMongoCacheService(db, cfg.TTL.Std(), logger)
		return cache, client, err
	case "hybrid":
		redisCache, err := services.NewRedisCacheService(cfg.RedisURL, cfg.TTL.Std(), logger)
		if err != nil {
			return nil, nil, err
		}
		client, db, err := connectMongo(cfg)
		if err != nil {
			return nil, nil, err
		}
		mongoCache, err := services.NewMongoCacheService(db, cfg.TTL.Std(), logger)
		if err != nil {
			return nil, client, err
		}
		return services.NewHybridCacheService(redisCache, mongoCache, logger), client, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

func connectMongo(cfg config.CacheCfg) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(cfg.MongoDatabase), nil
}
