package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmanage/petshop-api/internal/models"
)

func TestWriteClients(t *testing.T) {
	clients := []models.Client{
		{
			Name:  "Maria Souza",
			Email: "maria@example.com",
			Phone: "11988887777",
			Address: &models.Address{
				UF:     "SP",
				City:   "São Paulo",
				CEP:    "01310-100",
				Street: "Avenida Paulista",
				Number: 1578,
			},
			Pets: []models.Pet{
				{Name: "Rex", Type: "Cachorro"},
				{Name: "Mimi", Type: "Gato"},
			},
		},
		{
			Name:  "João Lima",
			Email: "joao@example.com",
			Phone: "11977776666",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteClients(&buf, clients))

	out := buf.Bytes()
	require.True(t, len(out) > 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestWriteClientsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteClients(&buf, nil))
	assert.Equal(t, "%PDF", string(buf.Bytes()[:4]))
}
