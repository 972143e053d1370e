package apiErrors

import (
	"encoding/json"
	"net/http"

	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
)

// Códigos de erro expostos pela API
const (
	// Erros da integração com a WARM
	ErrWarmAuth        = "WARM_001" // Autenticação na WARM falhou
	ErrWarmDomain      = "WARM_002" // Domínio da WARM não resolve
	ErrWarmUpstream    = "WARM_003" // Resposta inesperada da WARM

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Parâmetros malformados

	// Erros de autenticação da própria API
	ErrInvalidToken = "AUTH_001" // Token inválido ou ausente

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrWarmAuth:       http.StatusBadGateway,
	ErrWarmDomain:     http.StatusServiceUnavailable,
	ErrWarmUpstream:   http.StatusBadGateway,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrInvalidToken:   http.StatusUnauthorized,
	ErrInternalServer: http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// CodeFromError traduz a taxonomia de erros da integração no código de API
func CodeFromError(err error) string {
	switch {
	case warmdomain.IsValidationError(err):
		return ErrInvalidRequest
	case warmdomain.IsAuthError(err):
		return ErrWarmAuth
	case warmdomain.IsDomainUnavailable(err):
		return ErrWarmDomain
	case warmdomain.IsUpstreamError(err):
		return ErrWarmUpstream
	default:
		return ErrInternalServer
	}
}

// WriteFromError classifica o erro e escreve a resposta correspondente
func WriteFromError(w http.ResponseWriter, err error) {
	WriteError(w, CodeFromError(err), err.Error(), nil)
}
