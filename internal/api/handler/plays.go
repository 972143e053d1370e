package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/warmclient"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/apiErrors"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/log"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/utils"
)

// ListArtistPlays lista as execuções de um artista. As datas são opcionais:
// sem janela, a WARM devolve o histórico completo do artista
func ListArtistPlays(client warmclient.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		artistName := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger.WithField("artist_name", artistName).Info("plays: fetching plays for artist")

		var fromDate, untilDate *time.Time

		if raw := r.URL.Query().Get("from_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"artist_name": artistName,
					"from_date":   raw,
					"error":       err.Error(),
				}).Warn("plays: invalid from_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			fromDate = parsed
		}

		if raw := r.URL.Query().Get("until_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"artist_name": artistName,
					"until_date":  raw,
					"error":       err.Error(),
				}).Warn("plays: invalid until_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			untilDate = parsed
		}

		result, err := client.GetPlaysForArtist(artistName, fromDate, untilDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"artist_name": artistName,
				"error":       err.Error(),
			}).Error("plays: failed to fetch plays for artist")

			apiErrors.WriteFromError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"artist_name": artistName,
			"total_plays": result.TotalCount,
		}).Info("plays: plays fetched for artist")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("plays: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
