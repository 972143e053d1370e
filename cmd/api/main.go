package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/api"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/config"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/usecases/campaigning"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	warmClient := warm.New(cfg)

	campaignService := campaigning.NewService(cfg, warmClient)

	// Diagnóstico inicial da integração: não bloqueia a subida do servidor,
	// mas deixa registrado o estado da WARM no boot
	report := warmClient.HealthCheck()
	logrus.WithFields(logrus.Fields{
		"status":             report.Status,
		"monitored_stations": report.MonitoredStations,
	}).Info("Diagnóstico inicial da integração com a WARM")

	server, err := api.New(cfg, warmClient, campaignService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
