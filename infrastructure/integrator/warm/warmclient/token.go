package warmclient

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource indica como o token foi obtido
type TokenSource string

const (
	// TokenSourceSupplied: token pré-emitido fornecido via configuração
	TokenSourceSupplied TokenSource = "supplied"
	// TokenSourceExchanged: token obtido trocando email/senha em /auth/exchange
	TokenSourceExchanged TokenSource = "exchanged"
)

// TokenState guarda o bearer token corrente e seu vencimento decodificado.
// É substituído por inteiro a cada reautenticação, nunca mutado parcialmente.
type TokenState struct {
	Token       string
	ExpiresAtMs int64
	Source      TokenSource
}

// Expired indica se o token já venceu no instante informado
func (t *TokenState) Expired(now time.Time) bool {
	return now.UnixMilli() >= t.ExpiresAtMs
}

// Remaining retorna quanto tempo de vida resta ao token
func (t *TokenState) Remaining(now time.Time) time.Duration {
	return time.Duration(t.ExpiresAtMs-now.UnixMilli()) * time.Millisecond
}

// DecodeTokenExpiry lê a claim exp do payload do JWT SEM verificar a
// assinatura. O uso é estritamente informativo (agendar a renovação do lado
// do cliente): a WARM continua sendo a única autoridade sobre validade, e um
// 401 dela é o sinal real de reautenticação. Não reutilizar este caminho para
// nenhuma decisão de confiança.
func DecodeTokenExpiry(token string) (int64, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, jwt.ErrTokenInvalidClaims
	}

	return exp.Time.UnixMilli(), nil
}
