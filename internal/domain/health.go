package domain

// Status possíveis do diagnóstico de saúde da integração WARM.
// Esta é a única superfície de diagnóstico consumida externamente:
// as strings são contrato estável para as ferramentas de orquestração.
const (
	HealthStatusHealthy           = "healthy"
	HealthStatusAuthFailed        = "auth_failed"
	HealthStatusDomainUnavailable = "domain_unavailable"
	HealthStatusUnhealthy         = "unhealthy"
)

// HealthReport agrega uma tentativa de autenticação e uma chamada de dados
// leve em um único registro de diagnóstico, com sugestão de correção
type HealthReport struct {
	Status            string `json:"status"`
	Authenticated     bool   `json:"authenticated"`
	TokenExpiresAtMs  int64  `json:"tokenExpiry,omitempty"`
	MonitoredStations int    `json:"ukStations,omitempty"`
	APIAvailable      bool   `json:"apiAvailable"`
	Error             string `json:"error,omitempty"`
	Details           string `json:"details,omitempty"`
	Suggestion        string `json:"suggestion,omitempty"`
}
