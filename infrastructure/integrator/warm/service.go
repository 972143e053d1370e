package warm

import (
	"github.com/sirupsen/logrus"
	"github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/warmclient"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/config"
)

// New monta o cliente WARM conforme a configuração: o cliente real com seu
// gerenciador de tokens, ou o mock quando WARM_MOCK_MODE está ligado
func New(cfg *config.Config) warmclient.Client {
	if cfg.Warm.MockMode {
		logrus.Warn("WARM em modo mock: nenhuma chamada real será feita")
		return warmclient.NewMockClient(cfg)
	}

	tokenManager := warmclient.NewTokenManager(cfg)

	return warmclient.NewClient(cfg, tokenManager)
}
