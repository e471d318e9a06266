package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/petmanage/petshop-api/internal/httperr"
)

// findRef resolve uma referência por id ou falha com RefError nomeando
// a entidade. Serve tanto para a chave primária da rota quanto para as
// chaves estrangeiras dos payloads.
func findRef[T any](db *gorm.DB, id any, entity string) (*T, error) {
	var row T
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrRef(entity)
		}
		return nil, err
	}
	return &row, nil
}

func internalErr(c *gin.Context, code string, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected error")
	httperr.Internal(c, code, "Um erro aconteceu.")
}

// bindOneOrMany aceita no corpo um único objeto ou um array de objetos.
// Devolve sempre um slice e informa se o payload original era um array.
func bindOneOrMany[T any](c *gin.Context) ([]T, bool, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, false, err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, true, err
		}
		return items, true, nil
	}

	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, false, err
	}
	return []T{one}, false, nil
}
