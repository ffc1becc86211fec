package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/manutencao-ar/internal/api"
	"github.com/example/manutencao-ar/internal/config"
	"github.com/example/manutencao-ar/internal/db"
	"github.com/example/manutencao-ar/internal/monitoring"
)

func main() {
	log := logrus.New()

	// Carrega variáveis de ambiente (.env em dev, env vars em prod)
	if err := config.LoadEnv(); err != nil {
		log.WithError(err).Warn("erro ao carregar .env")
	}

	// Inicializa config
	cfg := config.New()

	// Conecta no banco
	gdb, err := db.Init(cfg)
	if err != nil {
		log.WithError(err).Fatal("erro ao conectar no banco")
	}
	defer db.Close(gdb)

	// Migra modelos
	if err := db.AutoMigrate(gdb); err != nil {
		log.WithError(err).Fatal("erro ao migrar modelos")
	}

	r := gin.Default()

	server := api.NewServer(cfg, gdb, log)
	metrics := monitoring.NewMetrics()

	if err := api.RegisterRoutes(r, server, cfg, metrics); err != nil {
		log.WithError(err).Fatal("erro ao registrar rotas")
	}

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("servidor iniciado")

	addr := ":" + port
	if err := r.Run(addr); err != nil {
		log.WithError(err).Error("erro ao subir servidor")
		os.Exit(1)
	}
}
