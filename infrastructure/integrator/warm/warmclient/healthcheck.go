package warmclient

import (
	"github.com/sirupsen/logrus"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// Sugestões de correção expostas junto com o diagnóstico
const (
	suggestionAuthFailed = "Verify email/password and ensure 250-song trial is active"
	suggestionDomainDown = "Contact WARM support to verify current API endpoint URL. The configured domain appears to be unavailable."
)

// HealthCheck agrega uma tentativa de autenticação e uma chamada de dados
// leve em um único diagnóstico. É o único ponto que converte a taxonomia de
// erros em valor estruturado em vez de propagá-la: o orquestrador ramifica
// pelo campo status sem tratar erros.
func (c *WarmClient) HealthCheck() *domain.HealthReport {
	if _, err := c.TokenManager.EnsureValidToken(); err != nil {
		logrus.WithError(err).Warn("healthcheck: WARM authentication failed")
		return c.diagnose(err)
	}

	stations, err := c.GetMonitoredStations(c.Cfg.Warm.CountryCode)
	if err != nil {
		logrus.WithError(err).Warn("healthcheck: WARM data call failed")
		return c.diagnose(err)
	}

	report := &domain.HealthReport{
		Status:            domain.HealthStatusHealthy,
		Authenticated:     true,
		APIAvailable:      true,
		MonitoredStations: stations.TotalCount,
	}

	if state := c.TokenManager.State(); state != nil {
		report.TokenExpiresAtMs = state.ExpiresAtMs
	}

	return report
}

// diagnose classifica um erro da integração em um registro de status estável
func (c *WarmClient) diagnose(err error) *domain.HealthReport {
	switch {
	case warmdomain.IsAuthError(err):
		return &domain.HealthReport{
			Status:       domain.HealthStatusAuthFailed,
			APIAvailable: true,
			Error:        "Authentication failed - check credentials and trial status",
			Details:      err.Error(),
			Suggestion:   suggestionAuthFailed,
		}
	case warmdomain.IsDomainUnavailable(err):
		return &domain.HealthReport{
			Status:       domain.HealthStatusDomainUnavailable,
			APIAvailable: false,
			Error:        "WARM API domain not found - API endpoint may have changed",
			Details:      err.Error(),
			Suggestion:   suggestionDomainDown,
		}
	default:
		return &domain.HealthReport{
			Status:       domain.HealthStatusUnhealthy,
			APIAvailable: false,
			Error:        err.Error(),
			Details:      err.Error(),
		}
	}
}
