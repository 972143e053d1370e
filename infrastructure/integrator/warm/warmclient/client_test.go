package warmclient

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// newTestClient monta um cliente apontando para o servidor de teste, com um
// token fornecido válido para não passar pela troca de credenciais
func newTestClient(t *testing.T, baseURL string) *WarmClient {
	t.Helper()

	cfg := testConfig(baseURL)
	cfg.Warm.Token = buildUnsignedToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})

	return NewClient(cfg, NewTokenManager(cfg)).(*WarmClient)
}

func TestGetPlaysForArtist(t *testing.T) {
	var gotQuery url.Values
	var gotHeader http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/plays", r.URL.Path)
		gotQuery = r.URL.Query()
		gotHeader = r.Header

		w.Write([]byte(`{
			"currentPagesEntities": [
				{"artistName": "Aquilo", "trackName": "Sober", "radioStationName": "BBC Radio 1", "playDateTime": "2026-08-20T14:30:00Z"}
			],
			"totalNumberOfEntities": 3
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	result, err := client.GetPlaysForArtist("Aquilo", &from, &until)

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, "BBC Radio 1", result.Items[0].StationName)

	assert.Equal(t, "Aquilo", gotQuery.Get("artistName"))
	assert.Equal(t, "GB", gotQuery.Get("countryCode"))
	assert.Equal(t, "2026-07-01", gotQuery.Get("fromDate"))
	assert.Equal(t, "2026-08-31", gotQuery.Get("untilDate"))

	assert.Equal(t, "Bearer "+client.Cfg.Warm.Token, gotHeader.Get("Authorization"))
	assert.Equal(t, clientIdentifier, gotHeader.Get("User-Agent"))
	assert.NotEmpty(t, gotHeader.Get("X-Request-ID"))
}

func TestGetPlaysForArtist_WithoutDateWindow(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"currentPagesEntities": [], "totalNumberOfEntities": 0}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetPlaysForArtist("Aquilo", nil, nil)

	require.NoError(t, err)
	assert.False(t, gotQuery.Has("fromDate"))
	assert.False(t, gotQuery.Has("untilDate"))
}

func TestGetPlaysForArtist_EmptyArtistName(t *testing.T) {
	client := newTestClient(t, "http://warm.test")

	_, err := client.GetPlaysForArtist("", nil, nil)

	require.Error(t, err)
	assert.True(t, warmdomain.IsValidationError(err))
}

func TestSend_FailureClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 é falha de autenticação",
			status: http.StatusUnauthorized,
			body:   "Unauthorized",
			check: func(t *testing.T, err error) {
				assert.True(t, warmdomain.IsAuthError(err))
			},
		},
		{
			name:   "403 é falha de autenticação",
			status: http.StatusForbidden,
			body:   "Forbidden",
			check: func(t *testing.T, err error) {
				assert.True(t, warmdomain.IsAuthError(err))
			},
		},
		{
			name:   "400 com 403 embutido é falha de autenticação",
			status: http.StatusBadRequest,
			body:   `{"message":"Request failed with status code 403"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, warmdomain.IsAuthError(err))
			},
		},
		{
			name:   "500 é erro upstream com status preservado",
			status: http.StatusInternalServerError,
			body:   "boom",
			check: func(t *testing.T, err error) {
				var upErr *warmdomain.UpstreamError
				require.ErrorAs(t, err, &upErr)
				assert.Equal(t, http.StatusInternalServerError, upErr.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			_, err := client.GetPlaysForArtist("Aquilo", nil, nil)

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestGetMonitoredStations(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/radio-stations", r.URL.Path)
		gotQuery = r.URL.Query()

		w.Write([]byte(`{
			"currentPagesEntities": [
				{"name": "BBC Radio 6 Music", "id": "st-1", "countryCode": "GB", "isMonitored": true}
			],
			"totalNumberOfEntities": 120
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.GetMonitoredStations("")

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 120, result.TotalCount)

	// País vazio usa o país configurado e sempre filtra por monitoradas
	assert.Equal(t, "GB", gotQuery.Get("countryCode"))
	assert.Equal(t, "true", gotQuery.Get("isMonitored"))
}

func TestGenerateCSVReport(t *testing.T) {
	var gotQuery url.Values

	csvBody := "Date,Station,Artist,Track,Time\n2026-08-20,BBC Radio 1,Aquilo,Sober,14:30\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reports/csv", r.URL.Path)
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(csvBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	csv, err := client.GenerateCSVReport("Aquilo", from, until)

	require.NoError(t, err)
	assert.Equal(t, csvBody, csv)

	// O endpoint de relatórios usa o formato compacto YYYYMMDD
	assert.Equal(t, "20260701", gotQuery.Get("fromDate"))
	assert.Equal(t, "20260831", gotQuery.Get("untilDate"))
}

func TestGenerateCSVReport_RequiresDates(t *testing.T) {
	client := newTestClient(t, "http://warm.test")

	_, err := client.GenerateCSVReport("Aquilo", time.Time{}, time.Now())

	require.Error(t, err)
	assert.True(t, warmdomain.IsValidationError(err))
}

func TestGetCampaignPlays_DefaultWindow(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"currentPagesEntities": [], "totalNumberOfEntities": 0}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	plays, err := client.GetCampaignPlays("Aquilo", nil)

	require.NoError(t, err)
	assert.Empty(t, plays)

	// Sem data de início, a janela padrão é de 42 dias atrás até hoje
	from, err := time.Parse(time.DateOnly, gotQuery.Get("fromDate"))
	require.NoError(t, err)

	expectedFrom := time.Now().Add(-defaultCampaignLength)
	assert.WithinDuration(t, expectedFrom, from, 48*time.Hour)

	assert.Equal(t, time.Now().Format(time.DateOnly), gotQuery.Get("untilDate"))
}

func TestHealthCheck_Healthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"currentPagesEntities": [], "totalNumberOfEntities": 37}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	report := client.HealthCheck()

	assert.Equal(t, domain.HealthStatusHealthy, report.Status)
	assert.True(t, report.Authenticated)
	assert.True(t, report.APIAvailable)
	assert.Equal(t, 37, report.MonitoredStations)
	assert.NotZero(t, report.TokenExpiresAtMs)
	assert.Empty(t, report.Error)
}

func TestHealthCheck_AuthFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Forbidden"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	report := client.HealthCheck()

	assert.Equal(t, domain.HealthStatusAuthFailed, report.Status)
	assert.True(t, report.APIAvailable)
	assert.Equal(t, suggestionAuthFailed, report.Suggestion)
}

func TestHealthCheck_DomainUnavailable(t *testing.T) {
	// .invalid nunca resolve (RFC 2606), reproduzindo o cenário de domínio
	// da API fora do ar
	client := newTestClient(t, "http://warm-api.invalid")

	report := client.HealthCheck()

	assert.Equal(t, domain.HealthStatusDomainUnavailable, report.Status)
	assert.False(t, report.APIAvailable)
	assert.Equal(t, suggestionDomainDown, report.Suggestion)
}

func TestHealthCheck_Unhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	report := client.HealthCheck()

	assert.Equal(t, domain.HealthStatusUnhealthy, report.Status)
	assert.False(t, report.APIAvailable)
	assert.NotEmpty(t, report.Error)
}
