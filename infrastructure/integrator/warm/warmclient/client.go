package warmclient

import (
	"net/http"
	"time"

	"github.com/totalaudiopromo/airplay-monitor-api/internal/config"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// Identificador fixo enviado em todas as requisições à WARM
const clientIdentifier = "Liberty-Music-PR-Agent/1.0"

type Client interface {
	Authenticate() (*TokenState, error)
	EnsureValidToken() (string, error)
	GetPlaysForArtist(artistName string, fromDate, untilDate *time.Time) (*domain.PagedResult[domain.PlayRecord], error)
	GetMonitoredStations(countryCode string) (*domain.PagedResult[domain.StationRecord], error)
	GenerateCSVReport(artistName string, fromDate, untilDate time.Time) (string, error)
	GetCampaignPlays(artistName string, campaignStartDate *time.Time) ([]domain.PlayRecord, error)
	HealthCheck() *domain.HealthReport
}

type WarmClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &WarmClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: cfg.Warm.RequestTimeout,
		},
	}
}

// Authenticate delega ao TokenManager e retorna o estado atual do token
func (c *WarmClient) Authenticate() (*TokenState, error) {
	return c.TokenManager.Authenticate()
}

// EnsureValidToken retorna o token atual, reautenticando se necessário
func (c *WarmClient) EnsureValidToken() (string, error) {
	return c.TokenManager.EnsureValidToken()
}
