package warmclient

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/config"
)

// testConfig monta uma configuração mínima apontando para o servidor de teste
func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Warm: config.Warm{
			BaseURL:        baseURL,
			Email:          "promo@example.com",
			Password:       "super-secret",
			CountryCode:    "GB",
			RequestTimeout: 5 * time.Second,
		},
	}
}

// buildUnsignedToken monta um JWT sintático (assinatura falsa) apenas para
// exercitar a decodificação do exp
func buildUnsignedToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".c2ln"
}

func TestDecodeTokenExpiry(t *testing.T) {
	exp := time.Now().Add(10 * time.Hour).Unix()
	token := buildUnsignedToken(t, map[string]any{"exp": exp, "sub": "promo@example.com"})

	expiresAtMs, err := DecodeTokenExpiry(token)

	require.NoError(t, err)
	assert.Equal(t, exp*1000, expiresAtMs)
}

func TestDecodeTokenExpiry_Errors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "token ilegível", token: "not-a-jwt"},
		{name: "payload sem exp", token: ""},
	}

	tests[1].token = buildUnsignedToken(t, map[string]any{"sub": "promo@example.com"})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTokenExpiry(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestAuthenticate_SuppliedToken(t *testing.T) {
	exp := time.Now().Add(10 * time.Hour)
	cfg := testConfig("http://warm.test")
	cfg.Warm.Token = buildUnsignedToken(t, map[string]any{"exp": exp.Unix()})

	tm := NewTokenManager(cfg)

	state, err := tm.Authenticate()

	require.NoError(t, err)
	assert.Equal(t, cfg.Warm.Token, state.Token)
	assert.Equal(t, TokenSourceSupplied, state.Source)
	assert.Equal(t, exp.Unix()*1000, state.ExpiresAtMs)
}

func TestAuthenticate_SuppliedTokenWithoutReadableExp(t *testing.T) {
	cfg := testConfig("http://warm.test")
	cfg.Warm.Token = "opaque-token-from-dashboard"

	tm := NewTokenManager(cfg)

	state, err := tm.Authenticate()

	require.NoError(t, err)
	assert.Equal(t, TokenSourceSupplied, state.Source)

	// Sem exp legível, assume 24 horas a partir de agora
	expected := time.Now().Add(fallbackTokenLifetime).UnixMilli()
	assert.InDelta(t, expected, state.ExpiresAtMs, float64(time.Second.Milliseconds()))
}

func TestAuthenticate_SuppliedTokenAlreadyExpired(t *testing.T) {
	cfg := testConfig("http://warm.test")
	cfg.Warm.Token = buildUnsignedToken(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()})

	tm := NewTokenManager(cfg)

	_, err := tm.Authenticate()

	require.Error(t, err)
	assert.True(t, warmdomain.IsAuthError(err))
	assert.ErrorIs(t, err, warmdomain.ErrTokenExpired)
	assert.Nil(t, tm.State())
}

func TestAuthenticate_ExchangeCredentials(t *testing.T) {
	var gotRequest exchangeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/exchange", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		// O corpo da resposta é o token cru, sem envelope
		w.Write([]byte("  exchanged-token-123\n"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	tm := NewTokenManager(cfg)

	state, err := tm.Authenticate()

	require.NoError(t, err)
	assert.Equal(t, "promo@example.com", gotRequest.Email)
	assert.Equal(t, "super-secret", gotRequest.Password)

	assert.Equal(t, "exchanged-token-123", state.Token)
	assert.Equal(t, TokenSourceExchanged, state.Source)

	expected := time.Now().Add(exchangedTokenLifetime).UnixMilli()
	assert.InDelta(t, expected, state.ExpiresAtMs, float64(time.Second.Milliseconds()))
}

func TestAuthenticate_ExchangeFailures(t *testing.T) {
	tests := []struct {
		name               string
		status             int
		body               string
		invalidCredentials bool
	}{
		{
			name:               "403 direto significa credenciais inválidas",
			status:             http.StatusForbidden,
			body:               "Forbidden",
			invalidCredentials: true,
		},
		{
			name:               "400 com 403 embutido no corpo também",
			status:             http.StatusBadRequest,
			body:               `{"message":"Request failed with status code 403"}`,
			invalidCredentials: true,
		},
		{
			name:               "500 é falha de troca genérica",
			status:             http.StatusInternalServerError,
			body:               "boom",
			invalidCredentials: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			tm := NewTokenManager(testConfig(server.URL))

			_, err := tm.Authenticate()

			require.Error(t, err)
			assert.True(t, warmdomain.IsAuthError(err))
			assert.Equal(t, tt.invalidCredentials, errors.Is(err, warmdomain.ErrInvalidCredentials))
		})
	}
}

func TestAuthenticate_ExchangeEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("   \n"))
	}))
	defer server.Close()

	tm := NewTokenManager(testConfig(server.URL))

	_, err := tm.Authenticate()

	require.Error(t, err)
	assert.True(t, warmdomain.IsUpstreamError(err))
}

func TestEnsureValidToken_ReusesUnexpiredToken(t *testing.T) {
	exchanges := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++
		w.Write([]byte("exchanged-token-123"))
	}))
	defer server.Close()

	tm := NewTokenManager(testConfig(server.URL))

	first, err := tm.EnsureValidToken()
	require.NoError(t, err)

	second, err := tm.EnsureValidToken()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, exchanges, "token válido não deve disparar nova troca")
}

func TestEnsureValidToken_ReauthenticatesExpiredToken(t *testing.T) {
	exchanges := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++
		w.Write([]byte("exchanged-token-123"))
	}))
	defer server.Close()

	tm := NewTokenManager(testConfig(server.URL))

	_, err := tm.EnsureValidToken()
	require.NoError(t, err)

	// Simula vencimento do token corrente
	tm.mu.Lock()
	tm.state.ExpiresAtMs = time.Now().Add(-time.Minute).UnixMilli()
	tm.mu.Unlock()

	_, err = tm.EnsureValidToken()
	require.NoError(t, err)

	assert.Equal(t, 2, exchanges)
}

func TestState_ReturnsCopy(t *testing.T) {
	cfg := testConfig("http://warm.test")
	cfg.Warm.Token = buildUnsignedToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})

	tm := NewTokenManager(cfg)

	_, err := tm.Authenticate()
	require.NoError(t, err)

	state := tm.State()
	require.NotNil(t, state)

	state.Token = "mutated"
	assert.NotEqual(t, "mutated", tm.State().Token)
}
