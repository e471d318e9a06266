package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmanage/petshop-api/internal/models"
)

func TestCreateService(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/services", map[string]any{
		"nome":  "Banho e tosa",
		"preco": 80.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Banho e tosa", body["nome"])
	assert.Equal(t, 80.0, body["preco"])
}

func TestCreateServiceValidation(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/services", map[string]any{
		"nome":  strings.Repeat("x", 131),
		"preco": -1.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	msgs := decodeBody(t, w)["message"].(map[string]any)
	assert.Equal(t, "O campo nome não pode ser maior que 130 caracteres.", msgs["nome"])
	assert.Equal(t, "O campo preco deve ser um número maior ou igual a 0.", msgs["preco"])

	assert.EqualValues(t, 0, countRows(t, db, &models.Service{}))
}

func TestCreateServicePriceZero(t *testing.T) {
	r, _ := newTestServer(t)

	// preço zero é válido (maior ou igual a 0)
	w := doJSON(t, r, http.MethodPost, "/services", map[string]any{
		"nome":  "Avaliação",
		"preco": 0.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestUpdateService(t *testing.T) {
	r, _ := newTestServer(t)
	id := createService(t, r)

	w := doJSON(t, r, http.MethodPut, path("/services/%d", id), map[string]any{
		"nome":  "Tosa higiênica",
		"preco": 60.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Tosa higiênica", decodeBody(t, w)["nome"])

	w = doJSON(t, r, http.MethodPut, "/services/999", map[string]any{
		"nome":  "Tosa",
		"preco": 60.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Serviço não encontrado.", decodeBody(t, w)["message"])
}

func TestDeleteService(t *testing.T) {
	r, db := newTestServer(t)
	clientID := createClient(t, r, "maria@example.com")
	petID := createPet(t, r, clientID)
	serviceID := createService(t, r)

	w := doJSON(t, r, http.MethodPost, "/appointments", map[string]any{
		"dataAgendada": "2999-03-01",
		"petId":        petID,
		"servicoId":    serviceID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, path("/services/%d", serviceID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.EqualValues(t, 0, countRows(t, db, &models.Service{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Appointment{}))
}

func TestDeleteAllServices(t *testing.T) {
	r, db := newTestServer(t)
	createService(t, r)
	createService(t, r)

	w := doJSON(t, r, http.MethodDelete, "/services/deleteAll", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Todos os serviços foram removidos.", decodeBody(t, w)["message"])
	assert.EqualValues(t, 0, countRows(t, db, &models.Service{}))
}
