package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCounts(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 0.0, body["totalClientes"])
	assert.Equal(t, 0.0, body["totalPets"])

	clientID := createClient(t, r, "maria@example.com")
	petID := createPet(t, r, clientID)
	productID := createProduct(t, r)
	serviceID := createService(t, r)
	createOrder(t, r, clientID, productID)

	w = doJSON(t, r, http.MethodPost, "/appointments", map[string]any{
		"dataAgendada": "2999-03-01",
		"petId":        petID,
		"servicoId":    serviceID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, 1.0, body["totalClientes"])
	assert.Equal(t, 1.0, body["totalPets"])
	assert.Equal(t, 1.0, body["totalProdutos"])
	assert.Equal(t, 1.0, body["totalServicos"])
	assert.Equal(t, 1.0, body["totalPedidos"])
	assert.Equal(t, 1.0, body["totalAgendamentos"])

	// contagens acompanham exclusões
	w = doJSON(t, r, http.MethodDelete, path("/clients/%d", clientID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, 0.0, body["totalClientes"])
	assert.Equal(t, 0.0, body["totalPets"])
	assert.Equal(t, 0.0, body["totalPedidos"])
	assert.Equal(t, 0.0, body["totalAgendamentos"])
	assert.Equal(t, 1.0, body["totalProdutos"])
	assert.Equal(t, 1.0, body["totalServicos"])
}
