package warmclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/config"
)

// Vida útil presumida dos tokens da WARM (24h), com margens conservadoras:
// token trocado vale 23h; token fornecido sem exp legível assume 24h.
const (
	exchangedTokenLifetime = 23 * time.Hour
	fallbackTokenLifetime  = 24 * time.Hour
)

type exchangeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenManager gerencia o bearer token da API da WARM: decodifica o
// vencimento de tokens pré-emitidos ou troca credenciais por um token novo.
// O TokenState é de posse exclusiva deste componente.
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client

	// Guarda única contra refresh concorrente: duas chamadas que disputam um
	// token vencido não disparam duas trocas de credenciais
	mu    sync.Mutex
	state *TokenState
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Warm.RequestTimeout,
		},
	}
}

// Authenticate produz um TokenState válido, decodificando o token fornecido
// via configuração ou trocando email/senha em /auth/exchange
func (tm *TokenManager) Authenticate() (*TokenState, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.authenticateLocked()
}

// EnsureValidToken retorna o token corrente enquanto não vencido; caso
// contrário reautentica e retorna o token novo
func (tm *TokenManager) EnsureValidToken() (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.state != nil && !tm.state.Expired(time.Now()) {
		return tm.state.Token, nil
	}

	state, err := tm.authenticateLocked()
	if err != nil {
		return "", err
	}

	return state.Token, nil
}

// State retorna uma cópia do estado corrente do token, ou nil se ainda não
// houve autenticação
func (tm *TokenManager) State() *TokenState {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.state == nil {
		return nil
	}

	copied := *tm.state
	return &copied
}

func (tm *TokenManager) authenticateLocked() (*TokenState, error) {
	var state *TokenState

	if tm.cfg.Warm.Token != "" {
		state = tm.stateFromSuppliedToken()

		// Um token fornecido já vencido não tem como ser renovado por aqui;
		// só o dashboard da WARM emite outro
		if state.Expired(time.Now()) {
			logrus.Error("Token da WARM já venceu. Gere um token novo no dashboard")
			return nil, warmdomain.NewAuthError(warmdomain.ErrTokenExpired, 0, "")
		}
	} else {
		exchanged, err := tm.exchangeCredentials()
		if err != nil {
			return nil, err
		}
		state = exchanged
	}

	tm.state = state
	tm.warnIfExpiringSoon(state)

	return state, nil
}

// stateFromSuppliedToken decodifica o vencimento do token pré-emitido. Se o
// payload não puder ser lido, assume 24h a partir de agora.
func (tm *TokenManager) stateFromSuppliedToken() *TokenState {
	expiresAt, err := DecodeTokenExpiry(tm.cfg.Warm.Token)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível ler o exp do token da WARM, assumindo 24 horas")
		expiresAt = time.Now().Add(fallbackTokenLifetime).UnixMilli()
	} else {
		logrus.Infof("Token da WARM fornecido via configuração. Vence em: %s",
			time.UnixMilli(expiresAt).Format(time.RFC3339))
	}

	return &TokenState{
		Token:       tm.cfg.Warm.Token,
		ExpiresAtMs: expiresAt,
		Source:      TokenSourceSupplied,
	}
}

// exchangeCredentials troca email/senha por um bearer token em /auth/exchange.
// O corpo da resposta 2xx é o próprio token, sem envelope JSON.
func (tm *TokenManager) exchangeCredentials() (*TokenState, error) {
	logrus.WithField("email", tm.cfg.Warm.Email).Info("Autenticando na WARM com email/senha")

	payload, err := json.Marshal(exchangeRequest{
		Email:    tm.cfg.Warm.Email,
		Password: tm.cfg.Warm.Password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, tm.cfg.Warm.BaseURL+"/auth/exchange", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", clientIdentifier)

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(tm.cfg.Warm.BaseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta da troca de credenciais: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyExchangeFailure(resp.StatusCode, string(body))
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return nil, &warmdomain.UpstreamError{Status: resp.StatusCode, Body: "empty token in exchange response"}
	}

	logrus.Info("Autenticação na WARM concluída com sucesso")

	return &TokenState{
		Token:       token,
		ExpiresAtMs: time.Now().Add(exchangedTokenLifetime).UnixMilli(),
		Source:      TokenSourceExchanged,
	}, nil
}

// classifyExchangeFailure traduz respostas não-2xx da troca de credenciais.
// 403, ou 400 cujo corpo embute um 403, significam credenciais inválidas ou
// conta (trial de 250 músicas) inativa.
func classifyExchangeFailure(status int, body string) error {
	if status == http.StatusForbidden {
		return warmdomain.NewAuthError(warmdomain.ErrInvalidCredentials, status, body)
	}

	if status == http.StatusBadRequest && strings.Contains(body, "403") {
		return warmdomain.NewAuthError(warmdomain.ErrInvalidCredentials, status, body)
	}

	return warmdomain.NewAuthError(fmt.Errorf("exchange failed: %d %s", status, body), status, body)
}

// warnIfExpiringSoon avisa quando resta menos de 24h de vida útil ao token
func (tm *TokenManager) warnIfExpiringSoon(state *TokenState) {
	remaining := state.Remaining(time.Now())

	if remaining <= 0 {
		logrus.Error("Token da WARM venceu. Gere um token novo no dashboard")
		return
	}

	if remaining < 24*time.Hour {
		hours := int(remaining.Round(time.Hour).Hours())
		logrus.Warnf("Token da WARM vence em ~%d horas. Renove em breve para evitar indisponibilidade", hours)
	}
}
