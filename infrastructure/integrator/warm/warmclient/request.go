package warmclient

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/utils"
)

// apiResponse é o resultado cru de uma chamada autenticada
type apiResponse struct {
	Status int
	Body   []byte
}

// send executa uma chamada autenticada contra a WARM: garante um token
// válido, anexa os cabeçalhos padrão e classifica falhas de transporte e
// respostas não-2xx na taxonomia de erros da integração.
func (c *WarmClient) send(method, path string, query url.Values) (*apiResponse, error) {
	token, err := c.TokenManager.EnsureValidToken()
	if err != nil {
		return nil, err
	}

	endpoint := c.Cfg.Warm.BaseURL + path
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Cfg.Warm.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", clientIdentifier)
	req.Header.Set("Accept", "application/json")

	if requestID, idErr := utils.GenerateID(); idErr == nil {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(c.Cfg.Warm.BaseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &warmdomain.UpstreamError{Status: resp.StatusCode, Body: "unreadable response body"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyResponseFailure(resp.StatusCode, string(body))
	}

	return &apiResponse{Status: resp.StatusCode, Body: body}, nil
}

// classifyTransportError separa falha de resolução do domínio (o endpoint
// pode ter mudado de endereço) das demais falhas de rede
func classifyTransportError(baseURL string, err error) error {
	host := baseURL
	if parsed, parseErr := url.Parse(baseURL); parseErr == nil && parsed.Host != "" {
		host = parsed.Host
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		logrus.WithError(err).Errorf("Domínio da WARM não resolve: %s", host)
		return &warmdomain.DomainUnavailableError{Host: host, Err: err}
	}

	if strings.Contains(err.Error(), "no such host") {
		logrus.WithError(err).Errorf("Domínio da WARM não resolve: %s", host)
		return &warmdomain.DomainUnavailableError{Host: host, Err: err}
	}

	return &warmdomain.UpstreamError{Status: 0, Body: err.Error()}
}

// classifyResponseFailure traduz respostas não-2xx de endpoints de dados.
// 401/403 indicam problema de autenticação mesmo fora de /auth/exchange, e o
// padrão 400 com corpo embutindo 403 idem.
func classifyResponseFailure(status int, body string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return warmdomain.NewAuthError(warmdomain.ErrInvalidCredentials, status, body)
	case status == http.StatusBadRequest && strings.Contains(body, "403"):
		return warmdomain.NewAuthError(warmdomain.ErrInvalidCredentials, status, body)
	default:
		return &warmdomain.UpstreamError{Status: status, Body: body}
	}
}
