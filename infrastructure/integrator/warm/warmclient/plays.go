package warmclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// formatPlaysDate formata datas para o endpoint de plays, que espera ISO
// (YYYY-MM-DD). O endpoint de relatórios usa outro formato: cada operação
// tem seu próprio formatador para a inconsistência upstream ficar visível.
func formatPlaysDate(date time.Time) string {
	return date.Format(time.DateOnly)
}

// GetPlaysForArtist lista as execuções de um artista no período informado.
// Quando ambas as datas são omitidas, a WARM retorna o histórico completo.
func (c *WarmClient) GetPlaysForArtist(artistName string, fromDate, untilDate *time.Time) (*domain.PagedResult[domain.PlayRecord], error) {
	if artistName == "" {
		return nil, &warmdomain.ValidationError{Field: "artistName", Reason: "must not be empty"}
	}

	query := url.Values{}
	query.Set("artistName", artistName)
	query.Set("countryCode", c.Cfg.Warm.CountryCode)
	if fromDate != nil {
		query.Set("fromDate", formatPlaysDate(*fromDate))
	}
	if untilDate != nil {
		query.Set("untilDate", formatPlaysDate(*untilDate))
	}

	resp, err := c.send(http.MethodGet, "/plays", query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"artist_name": artistName,
			"error":       err.Error(),
		}).Error("plays: failed to fetch plays from WARM")
		return nil, err
	}

	result, err := decodePage(resp.Body, playsPageRules, func(entity warmdomain.PlayEntity) domain.PlayRecord {
		return domain.PlayRecord{
			ArtistName:  entity.ArtistName,
			TrackName:   entity.TrackName,
			StationName: entity.StationName(),
			PlayedAt:    entity.PlayedAt(),
		}
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"artist_name": artistName,
		"total_plays": result.TotalCount,
		"page_items":  len(result.Items),
	}).Info("plays: fetched plays for artist")

	return result, nil
}
