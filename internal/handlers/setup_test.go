package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/petmanage/petshop-api/internal/db"
	"github.com/petmanage/petshop-api/internal/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r, db
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --------- Fixtures ---------

func clientPayload(email string) map[string]any {
	return map[string]any{
		"nome":     "Maria Souza",
		"email":    email,
		"telefone": "11988887777",
		"endereco": map[string]any{
			"uf":     "SP",
			"cidade": "São Paulo",
			"cep":    "01310-100",
			"rua":    "Avenida Paulista",
			"numero": 1578,
		},
	}
}

func createClient(t *testing.T, r http.Handler, email string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/clients", clientPayload(email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}

func createPet(t *testing.T, r http.Handler, clientID uint) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/pets", map[string]any{
		"nome":      "Rex",
		"tipo":      "Cachorro",
		"porte":     "Grande",
		"clienteId": clientID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}

func productPayload() map[string]any {
	return map[string]any{
		"nome":         "Ração",
		"preco":        50.0,
		"descricao":    "desc",
		"desconto":     0.1,
		"dataDesconto": "2999-01-01",
		"categoria":    "Higiene",
	}
}

func createProduct(t *testing.T, r http.Handler) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/products", productPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}

func createService(t *testing.T, r http.Handler) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/services", map[string]any{
		"nome":  "Banho e tosa",
		"preco": 80.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}

func createOrder(t *testing.T, r http.Handler, clientID, productID uint) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/orders", map[string]any{
		"quantidade": 2,
		"clienteId":  clientID,
		"produtoId":  productID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["codigo"].(string)
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
