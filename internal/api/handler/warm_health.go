package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/warmclient"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WarmHealth executa o diagnóstico completo da integração com a WARM e
// devolve o laudo. O handler sempre responde 200: o estado da integração
// vai no corpo, não no status HTTP
func WarmHealth(client warmclient.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report := client.HealthCheck()

		if report.Status != domain.HealthStatusHealthy {
			logger.WithFields(log.Fields{
				"status":     report.Status,
				"suggestion": report.Suggestion,
			}).Warn("health: WARM integration degraded")
		} else {
			logger.WithFields(log.Fields{
				"monitored_stations": report.MonitoredStations,
			}).Info("health: WARM integration healthy")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("health: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
