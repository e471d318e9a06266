package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientReport(t *testing.T) {
	r, _ := newTestServer(t)
	clientID := createClient(t, r, "maria@example.com")
	createPet(t, r, clientID)

	w := doJSON(t, r, http.MethodGet, "/clients/report", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "relatorio-clientes.pdf")

	body := w.Body.Bytes()
	require.True(t, len(body) > 4)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestClientReportEmpty(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/clients/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF", string(w.Body.Bytes()[:4]))
}
