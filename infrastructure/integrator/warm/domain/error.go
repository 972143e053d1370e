package warmdomain

import (
	"errors"
	"fmt"
)

// Erros base da integração com a WARM
var (
	// ErrInvalidCredentials cobre 403 na troca de credenciais e o padrão 400→403
	ErrInvalidCredentials = errors.New("invalid credentials or inactive account")
	// ErrTokenExpired indica token pré-emitido já vencido
	ErrTokenExpired = errors.New("token expired")
	// ErrDomainUnavailable indica falha de resolução de DNS/host: o próprio
	// domínio da API pode ter mudado
	ErrDomainUnavailable = errors.New("warm api domain unavailable")
)

// AuthError representa falha de autenticação contra a WARM
type AuthError struct {
	Err    error
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Body)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, status int, body string) *AuthError {
	return &AuthError{Err: baseErr, Status: status, Body: body}
}

// DomainUnavailableError representa falha de resolução do host upstream
type DomainUnavailableError struct {
	Host string
	Err  error
}

func (e *DomainUnavailableError) Error() string {
	return fmt.Sprintf("warm api domain unavailable (%s): %v", e.Host, e.Err)
}

func (e *DomainUnavailableError) Unwrap() error {
	return e.Err
}

// UpstreamError representa qualquer outra resposta não-2xx ou corpo inválido
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("warm api request failed: %d %s", e.Status, e.Body)
}

// ValidationError indica parâmetros malformados fornecidos pelo chamador,
// detectados antes de qualquer chamada de rede
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsAuthError verifica se o erro é de autenticação
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsDomainUnavailable verifica se o erro é de resolução do domínio upstream
func IsDomainUnavailable(err error) bool {
	var domErr *DomainUnavailableError
	return errors.As(err, &domErr)
}

// IsUpstreamError verifica se o erro é uma resposta inesperada da API
func IsUpstreamError(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr)
}

// IsValidationError verifica se o erro veio de parâmetros do chamador
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
