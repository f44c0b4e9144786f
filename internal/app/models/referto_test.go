package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTipoEsame(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		for _, value := range []string{"TAC", "Radiografia", "Ecografia", "Risonanza", "Esami_Laboratorio"} {
			tipoEsame, err := ParseTipoEsame(value)
			assert.NoError(t, err, value)
			assert.Equal(t, TipoEsame(value), tipoEsame)
		}
	})

	t.Run("Unknown value", func(t *testing.T) {
		_, err := ParseTipoEsame("PET")
		assert.Error(t, err)
	})

	t.Run("Matching is case sensitive", func(t *testing.T) {
		_, err := ParseTipoEsame("tac")
		assert.Error(t, err)
	})
}

func TestTipoEsameDescrizione(t *testing.T) {
	assert.Equal(t, "Esami di Laboratorio", TipoEsameEsamiLaboratorio.Descrizione())
	assert.Equal(t, "TAC", TipoEsameTAC.Descrizione())
}

func TestCallerHasRole(t *testing.T) {
	caller := Caller{Email: "medico@example.com", Roles: []string{"admin", "MEDICO"}}

	assert.True(t, caller.HasRole("ADMIN"))
	assert.True(t, caller.HasRole("medico"))
	assert.False(t, caller.HasRole("AUDITOR"))
	assert.False(t, Caller{}.HasRole("ADMIN"))
}
