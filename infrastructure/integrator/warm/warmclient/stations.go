package warmclient

import (
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// GetMonitoredStations lista as estações ativamente monitoradas pela WARM no
// país informado (filtro aplicado do lado do servidor)
func (c *WarmClient) GetMonitoredStations(countryCode string) (*domain.PagedResult[domain.StationRecord], error) {
	if countryCode == "" {
		countryCode = c.Cfg.Warm.CountryCode
	}

	query := url.Values{}
	query.Set("countryCode", countryCode)
	query.Set("isMonitored", "true")

	resp, err := c.send(http.MethodGet, "/radio-stations", query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"country_code": countryCode,
			"error":        err.Error(),
		}).Error("stations: failed to fetch radio stations from WARM")
		return nil, err
	}

	result, err := decodePage(resp.Body, stationsPageRules, func(entity warmdomain.StationEntity) domain.StationRecord {
		return domain.StationRecord{
			Name:        entity.Name,
			Category:    entity.Category,
			City:        entity.City,
			ExternalID:  entity.ResolvedID(),
			CountryCode: entity.CountryCode,
			IsMonitored: entity.IsMonitored,
		}
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"country_code":   countryCode,
		"total_stations": result.TotalCount,
	}).Info("stations: fetched monitored radio stations")

	return result, nil
}
