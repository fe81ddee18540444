package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/tanpopo-api/pkg/jwt"
)

const secret = "clave-de-prueba"

func TestGenerateParse_ConservaClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", "co.lan", "staff", "tanpopo-api", 30)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "co.lan", claims.Username)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "tanpopo-api", claims.Issuer)
}

func TestParse_Rechaza(t *testing.T) {
	vigente, err := pkgjwt.Generate(secret, "u-1", "co.lan", "staff", "tanpopo-api", 30)
	require.NoError(t, err)
	vencido, err := pkgjwt.Generate(secret, "u-1", "co.lan", "staff", "tanpopo-api", -1)
	require.NoError(t, err)

	cases := []struct {
		name   string
		secret string
		token  string
	}{
		{"token vencido", secret, vencido},
		{"firma con otro secret", "otro-secret", vigente},
		{"token malformado", secret, "no.es.jwt"},
		{"secret vacío", "", vigente},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := pkgjwt.Parse(tc.secret, tc.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "u-1", "co.lan", "staff", "tanpopo-api", 30)
	assert.Error(t, err)
}
