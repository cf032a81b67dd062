package main

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-pos/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-pos/internal/db"
	"github.com/BruksfildServices01/barber-pos/internal/logging"
	"github.com/BruksfildServices01/barber-pos/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(log))

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
