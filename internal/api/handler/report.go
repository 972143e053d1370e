package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/warmclient"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/apiErrors"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/log"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/utils"
)

// ArtistCSVReport gera o relatório CSV de execuções do artista. Diferente do
// endpoint de plays, a janela de datas aqui é obrigatória
func ArtistCSVReport(client warmclient.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		artistName := httprouter.ParamsFromContext(r.Context()).ByName("name")

		fromRaw := r.URL.Query().Get("from_date")
		untilRaw := r.URL.Query().Get("until_date")
		if fromRaw == "" || untilRaw == "" {
			logger.WithField("artist_name", artistName).Warn("report: missing date window parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "from_date and until_date are required", nil)
			return
		}

		fromDate, err := utils.ParseDate(fromRaw)
		if err != nil {
			logger.WithFields(log.Fields{
				"artist_name": artistName,
				"from_date":   fromRaw,
				"error":       err.Error(),
			}).Warn("report: invalid from_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		untilDate, err := utils.ParseDate(untilRaw)
		if err != nil {
			logger.WithFields(log.Fields{
				"artist_name": artistName,
				"until_date":  untilRaw,
				"error":       err.Error(),
			}).Warn("report: invalid until_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"artist_name": artistName,
			"from_date":   fromDate.Format(time.DateOnly),
			"until_date":  untilDate.Format(time.DateOnly),
		}).Info("report: generating CSV report")

		csv, err := client.GenerateCSVReport(artistName, *fromDate, *untilDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"artist_name": artistName,
				"error":       err.Error(),
			}).Error("report: failed to generate CSV report")

			apiErrors.WriteFromError(w, err)
			return
		}

		filename := fmt.Sprintf("%s-airplay-%s-%s.csv",
			artistName,
			fromDate.Format(time.DateOnly),
			untilDate.Format(time.DateOnly),
		)

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write([]byte(csv)); err != nil {
			logger.WithError(err).Error("report: failed to write CSV response")
		}
	})
}
