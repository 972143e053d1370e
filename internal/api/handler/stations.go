package handler

import (
	"net/http"

	"github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/warmclient"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/apiErrors"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/log"
)

// ListStations lista as estações monitoradas pela WARM. O país pode ser
// sobrescrito via query string; vazio usa o país configurado
func ListStations(client warmclient.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		countryCode := r.URL.Query().Get("country_code")
		logger.WithField("country_code", countryCode).Info("stations: listing monitored stations")

		result, err := client.GetMonitoredStations(countryCode)
		if err != nil {
			logger.WithFields(log.Fields{
				"country_code": countryCode,
				"error":        err.Error(),
			}).Error("stations: failed to list monitored stations")

			apiErrors.WriteFromError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("stations: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
