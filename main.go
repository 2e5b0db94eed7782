package main

import (
	"fmt"

	"orderboard/configs"
	"orderboard/events"
	"orderboard/middlewares"
	"orderboard/repository"
	"orderboard/routes"
	"orderboard/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger := newLogger(cfg.AppEnv)
	defer logger.Sync()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	db := configs.DB()

	if err := configs.SetupDatabase(); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := configs.SeedOwner(); err != nil {
		logger.Fatal("seed owner failed", zap.Error(err))
	}
	if err := configs.SeedLookups(); err != nil {
		logger.Fatal("seed lookups failed", zap.Error(err))
	}

	// Event bus + board hub
	bus := events.NewInProcessBus(logger)
	hub := ws.NewBoardHub(bus, repository.NewOrderRepository(db), logger)
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, bus, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" || env == "prod" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
