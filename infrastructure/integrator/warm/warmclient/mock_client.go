package warmclient

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/config"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// MockWarmClient é um substituto do cliente real para quando a WARM não está
// disponível (trial vencido, domínio fora do ar, desenvolvimento local).
// Implementa o mesmo contrato com dados sintéticos fixos.
//
// GetPlaysForArtist sorteia entre retornar plays ou uma página vazia, para
// que o código dependente exercite os dois caminhos. A probabilidade vem da
// configuração; WithDeterministicPlays desliga o sorteio em testes.
type MockWarmClient struct {
	cfg             *config.Config
	playProbability float64

	deterministic bool
	forcePlays    bool

	mu    sync.Mutex
	rng   *rand.Rand
	state *TokenState
}

func NewMockClient(cfg *config.Config) *MockWarmClient {
	probability := cfg.Warm.MockPlayProbability
	if probability <= 0 || probability > 1 {
		probability = 0.4
	}

	return &MockWarmClient{
		cfg:             cfg,
		playProbability: probability,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithDeterministicPlays fixa o resultado do sorteio de plays
func (m *MockWarmClient) WithDeterministicPlays(hasPlays bool) *MockWarmClient {
	m.deterministic = true
	m.forcePlays = hasPlays
	return m
}

func (m *MockWarmClient) Authenticate() (*TokenState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	logrus.Info("Usando cliente WARM simulado")

	m.state = &TokenState{
		Token:       "mock-jwt-token",
		ExpiresAtMs: time.Now().Add(exchangedTokenLifetime).UnixMilli(),
		Source:      TokenSourceExchanged,
	}

	return m.state, nil
}

func (m *MockWarmClient) EnsureValidToken() (string, error) {
	m.mu.Lock()
	current := m.state
	m.mu.Unlock()

	if current != nil && !current.Expired(time.Now()) {
		return current.Token, nil
	}

	state, err := m.Authenticate()
	if err != nil {
		return "", err
	}
	return state.Token, nil
}

func (m *MockWarmClient) GetPlaysForArtist(artistName string, fromDate, untilDate *time.Time) (*domain.PagedResult[domain.PlayRecord], error) {
	if _, err := m.EnsureValidToken(); err != nil {
		return nil, err
	}

	if !m.hasPlays() {
		logrus.WithField("artist_name", artistName).Info("mock: 0 plays found")
		return &domain.PagedResult[domain.PlayRecord]{
			Items:      []domain.PlayRecord{},
			TotalCount: 0,
			PageSize:   playsPageRules.DefaultPageSize,
		}, nil
	}

	plays := m.syntheticPlays(artistName)

	logrus.WithFields(logrus.Fields{
		"artist_name": artistName,
		"total_plays": 8,
	}).Info("mock: plays found")

	return &domain.PagedResult[domain.PlayRecord]{
		Items:      plays,
		TotalCount: 8,
		PageSize:   playsPageRules.DefaultPageSize,
	}, nil
}

func (m *MockWarmClient) GetMonitoredStations(countryCode string) (*domain.PagedResult[domain.StationRecord], error) {
	if _, err := m.EnsureValidToken(); err != nil {
		return nil, err
	}

	if countryCode == "" {
		countryCode = m.cfg.Warm.CountryCode
	}

	names := []string{"BBC Radio 1", "BBC Radio 6 Music", "Amazing Radio", "Absolute Radio", "Capital FM"}
	stations := make([]domain.StationRecord, 0, len(names))
	for _, name := range names {
		stations = append(stations, domain.StationRecord{
			Name:        name,
			CountryCode: countryCode,
			IsMonitored: true,
		})
	}

	return &domain.PagedResult[domain.StationRecord]{
		Items:      stations,
		TotalCount: len(stations),
		PageSize:   stationsPageRules.DefaultPageSize,
	}, nil
}

func (m *MockWarmClient) GenerateCSVReport(artistName string, fromDate, untilDate time.Time) (string, error) {
	if _, err := m.EnsureValidToken(); err != nil {
		return "", err
	}

	today := time.Now().Format(time.DateOnly)
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)

	csv := fmt.Sprintf("Date,Station,Artist,Track,Time\n"+
		"%s,BBC Radio 6 Music,%s,Test Track,14:30\n"+
		"%s,Amazing Radio,%s,Test Track,16:45\n"+
		"%s,Absolute Radio,%s,Test Track,20:15",
		today, artistName, today, artistName, yesterday, artistName)

	return csv, nil
}

func (m *MockWarmClient) GetCampaignPlays(artistName string, campaignStartDate *time.Time) ([]domain.PlayRecord, error) {
	result, err := m.GetPlaysForArtist(artistName, nil, nil)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (m *MockWarmClient) HealthCheck() *domain.HealthReport {
	if _, err := m.EnsureValidToken(); err != nil {
		return &domain.HealthReport{Status: domain.HealthStatusUnhealthy, Error: err.Error()}
	}

	report := &domain.HealthReport{
		Status:            domain.HealthStatusHealthy,
		Authenticated:     true,
		APIAvailable:      true,
		MonitoredStations: 5,
	}

	m.mu.Lock()
	if m.state != nil {
		report.TokenExpiresAtMs = m.state.ExpiresAtMs
	}
	m.mu.Unlock()

	return report
}

func (m *MockWarmClient) hasPlays() bool {
	if m.deterministic {
		return m.forcePlays
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Float64() < m.playProbability
}

func (m *MockWarmClient) syntheticPlays(artistName string) []domain.PlayRecord {
	now := time.Now()

	return []domain.PlayRecord{
		{
			ArtistName:  artistName,
			TrackName:   "Test Track",
			StationName: "BBC Radio 6 Music",
			PlayedAt:    now.Add(-2 * time.Hour),
		},
		{
			ArtistName:  artistName,
			TrackName:   "Test Track",
			StationName: "Amazing Radio",
			PlayedAt:    now.Add(-26 * time.Hour),
		},
		{
			ArtistName:  artistName,
			TrackName:   "Test Track",
			StationName: "Absolute Radio",
			PlayedAt:    now.Add(-50 * time.Hour),
		},
	}
}
