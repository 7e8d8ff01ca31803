package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/pedidos-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

// Un token generado debe poder parsearse y devolver los mismos claims.
func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "ana@pedidos.local", "empleado", "pedidos-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "ana@pedidos.local", email)
	assert.Equal(t, "empleado", role)
}

// Un token firmado con otro secret debe rechazarse.
func TestParseFirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", 1, "x@x.local", "admin", "pedidos-test", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Un token expirado debe rechazarse.
func TestParseExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "x@x.local", "admin", "pedidos-test", -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Generate sin secret debe fallar.
func TestGenerateSinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "x@x.local", "admin", "pedidos-test", 60)
	assert.Error(t, err)
}
