package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, entity.ValidStatus(entity.StatusPendiente))
	assert.True(t, entity.ValidStatus(entity.StatusProcesando))
	assert.True(t, entity.ValidStatus(entity.StatusEnviado))
	assert.True(t, entity.ValidStatus(entity.StatusCancelado))
	assert.False(t, entity.ValidStatus("pendiente")) // sensible a mayúsculas
	assert.False(t, entity.ValidStatus("Entregado"))
	assert.False(t, entity.ValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	casos := []struct {
		from, to string
		ok       bool
	}{
		{entity.StatusPendiente, entity.StatusProcesando, true},
		{entity.StatusPendiente, entity.StatusEnviado, true},
		{entity.StatusPendiente, entity.StatusCancelado, true},
		{entity.StatusProcesando, entity.StatusEnviado, true},
		{entity.StatusProcesando, entity.StatusCancelado, true},
		// regresiones no permitidas
		{entity.StatusProcesando, entity.StatusPendiente, false},
		{entity.StatusEnviado, entity.StatusPendiente, false},
		// estados terminales
		{entity.StatusEnviado, entity.StatusCancelado, false},
		{entity.StatusCancelado, entity.StatusProcesando, false},
		// sin auto-transición
		{entity.StatusPendiente, entity.StatusPendiente, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.ok, entity.CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}
