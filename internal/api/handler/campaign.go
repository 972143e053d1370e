package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/usecases/campaigning"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/apiErrors"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/log"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/utils"
)

// GetCampaignSummary gera o resumo de performance da campanha do artista.
// Sem start_date, a janela padrão de campanha (seis semanas) é usada
func GetCampaignSummary(service campaigning.CampaignReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		artistName := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger.WithField("artist_name", artistName).Info("campaign: summarizing campaign for artist")

		var startDate *time.Time
		if raw := r.URL.Query().Get("start_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"artist_name": artistName,
					"start_date":  raw,
					"error":       err.Error(),
				}).Warn("campaign: invalid start_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			startDate = parsed
		}

		summary, err := service.GetCampaignSummary(artistName, startDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"artist_name": artistName,
				"error":       err.Error(),
			}).Error("campaign: failed to summarize campaign")

			apiErrors.WriteFromError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"artist_name": artistName,
			"rating":      summary.PerformanceRating,
		}).Info("campaign: summary generated for artist")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("campaign: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
