package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/sitekit-labs/sitekit-api/internal/config"
	dbpkg "github.com/sitekit-labs/sitekit-api/internal/db"
	"github.com/sitekit-labs/sitekit-api/internal/middleware"
	"github.com/sitekit-labs/sitekit-api/internal/routes"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, running without cache/sessions backend")
			rdb = nil
		}
		cancel()
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server listening")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
