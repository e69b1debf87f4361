package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventasve/pedidos-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key"
	testIssuer = "pedidos-api-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "johndoe", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", username)
}

func TestJWT_TokenExpiradoRetornaError(t *testing.T) {
	// Expiración -1 minuto (ya expirado)
	tok, err := jwt.Generate(testSecret, "johndoe", testIssuer, -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrectoRetornaError(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "johndoe", testIssuer, 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SubjectVacioRetornaError(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "", testIssuer, 60)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err, "token sin subject no identifica a nadie")
}

func TestJWT_SecretVacioRetornaError(t *testing.T) {
	_, err := jwt.Generate("", "johndoe", testIssuer, 60)
	assert.Error(t, err)
}
