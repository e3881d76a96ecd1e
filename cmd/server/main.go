package main

import (
	"context"
	"fmt"
	"os"

	"investreports/internal/config"
	"investreports/internal/database"
	"investreports/internal/handlers"
	"investreports/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger := cfg.NewLogger()

	logger.Infof("server starting on :%s (db %s@%s:%s/%s via %s)", cfg.ListenPort, cfg.User, cfg.Host, cfg.Port, cfg.Name, cfg.Driver)
	err = run(cfg, logger, func(rg *gin.Engine) error {
		return rg.Run(":" + cfg.ListenPort)
	})
	if err != nil {
		logger.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}

// run owns the database handle for the lifetime of serve and closes it before
// returning, whatever serve reports.
func run(cfg config.Config, logger *logrus.Logger, serve func(*gin.Engine) error) error {
	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("db open failed: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warnf("db close: %v", err)
		}
	}()

	// an unreachable database is reported per request, not at startup
	if err := database.Ping(context.Background(), db); err != nil {
		logger.Warnf("db ping failed, serving anyway: %v", err)
	}

	svc := service.NewReportService(database.New(db, logger), logger)
	h := handlers.NewHandler(svc, logger)

	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	rg := gin.New()
	rg.Use(gin.Recovery(), handlers.RequestLogger(logger))
	h.Register(rg)

	return serve(rg)
}
