package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pedidos-api/pkg/normalize"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "azucar", normalize.Fold("Azúcar"))
	assert.Equal(t, "cafe con leche", normalize.Fold("Café con Leche"))
	assert.Equal(t, "nino", normalize.Fold("NIÑO"))
	assert.Equal(t, "", normalize.Fold(""))
}

func TestContains(t *testing.T) {
	assert.True(t, normalize.Contains("Azúcar refinada", "azucar"))
	assert.True(t, normalize.Contains("café", "CAFE"))
	assert.False(t, normalize.Contains("Café", "te"))
	assert.True(t, normalize.Contains("Café", "fe"))
}
