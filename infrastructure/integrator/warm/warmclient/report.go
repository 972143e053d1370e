package warmclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
)

// formatReportDate formata datas para o endpoint de exportação CSV, que
// exige a forma compacta YYYYMMDD (sem separadores) — peculiaridade
// documentada do endpoint, diferente do ISO usado em /plays
func formatReportDate(date time.Time) string {
	return date.Format("20060102")
}

// GenerateCSVReport solicita o relatório CSV de execuções do artista no
// período. A resposta é texto CSV cru, não JSON.
func (c *WarmClient) GenerateCSVReport(artistName string, fromDate, untilDate time.Time) (string, error) {
	if artistName == "" {
		return "", &warmdomain.ValidationError{Field: "artistName", Reason: "must not be empty"}
	}
	if fromDate.IsZero() || untilDate.IsZero() {
		return "", &warmdomain.ValidationError{Field: "dates", Reason: "fromDate and untilDate are required"}
	}

	query := url.Values{}
	query.Set("artistName", artistName)
	query.Set("countryCode", c.Cfg.Warm.CountryCode)
	query.Set("fromDate", formatReportDate(fromDate))
	query.Set("untilDate", formatReportDate(untilDate))

	resp, err := c.send(http.MethodGet, "/reports/csv", query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"artist_name": artistName,
			"error":       err.Error(),
		}).Error("report: failed to generate CSV report")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"artist_name": artistName,
		"csv_bytes":   len(resp.Body),
	}).Info("report: generated CSV report")

	return string(resp.Body), nil
}
