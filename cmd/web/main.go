package main

import (
	"log"
	"os"

	"verdalia/internal/auth"
	"verdalia/internal/cart"
	"verdalia/internal/catalog"
	"verdalia/internal/comments"
	"verdalia/internal/config"
	"verdalia/internal/handlers"
	"verdalia/internal/history"
	"verdalia/internal/notify"
	"verdalia/internal/recommend"
	"verdalia/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	configPath := os.Getenv("VERDALIA_CONFIG")
	if configPath == "" {
		configPath = "./config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	st := store.Open(cfg.DataPath, logger)

	// A missing catalog degrades to an empty store rather than a crash;
	// the rest of the API stays usable.
	cat, err := catalog.Load(cfg.CatalogPath, logger)
	if err != nil {
		logger.Warn("catalog unavailable, serving empty catalog",
			zap.String("path", cfg.CatalogPath), zap.Error(err))
		cat = catalog.New(nil, logger)
	}

	rec := history.NewRecorder(st, logger)
	engine := cart.NewEngine(st, rec, logger)
	gate := auth.NewGate(st, logger)
	com := comments.NewService(st, logger)
	rcm := recommend.New(cat, logger)
	mailer := notify.NewMailer(cfg.SMTP, logger)

	h := handlers.New(cat, engine, rec, gate, com, rcm, mailer, logger)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	h.Register(r)

	logger.Info("server starting", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
