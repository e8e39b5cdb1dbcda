package main

import (
	"context"
	"time"

	"github.com/danielstevenson70/ITGHM-api/config"
	"github.com/danielstevenson70/ITGHM-api/db"
	authhandler "github.com/danielstevenson70/ITGHM-api/internal/auth/handler"
	authrepo "github.com/danielstevenson70/ITGHM-api/internal/auth/repository/postgres"
	authservice "github.com/danielstevenson70/ITGHM-api/internal/auth/service"
	cataloghandler "github.com/danielstevenson70/ITGHM-api/internal/catalog/handler"
	catalogrepo "github.com/danielstevenson70/ITGHM-api/internal/catalog/repository/postgres"
	catalogservice "github.com/danielstevenson70/ITGHM-api/internal/catalog/service"
	"github.com/danielstevenson70/ITGHM-api/internal/music"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	defer dbPool.Close()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin)
	userService := authservice.NewUserService(userRepo, tokenService)
	authHandler := authhandler.NewAuthHandler(userService)

	searcher := music.NewClient(cfg.MusicAPIBaseURL, time.Duration(cfg.MusicAPITimeoutSec)*time.Second)
	catalogRepo := catalogrepo.NewPostgresRepository(dbPool)
	catalogService := catalogservice.NewCatalogService(catalogRepo, searcher)
	catalogHandler := cataloghandler.NewCatalogHandler(catalogService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Garden of Heavy and Metal!"})
	})

	authhandler.RegisterRoutes(app, authHandler)
	cataloghandler.RegisterRoutes(app, catalogHandler)

	log.Infof("listening on port %s (env=%s)", cfg.Port, cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
