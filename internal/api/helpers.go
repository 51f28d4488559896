package api

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"phPortfolio/internal/validation"
)

var errInvalidID = errors.New("invalid id")

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// datatypesJSON stores a raw request payload as-is in a JSON column.
func datatypesJSON(raw json.RawMessage) datatypes.JSON {
	return datatypes.JSON(raw)
}

// mustMarshal re-encodes a validated blob shape for storage. The input has
// already round-tripped through encoding/json, so this cannot fail.
func mustMarshal(v any) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(data)
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// applyString stages a non-nullable string column when the field is present
// and well typed. JSON null is a no-op for these columns.
func applyString(errs validation.Errors, updates map[string]any, column string, raw json.RawMessage) {
	if raw == nil {
		return
	}
	if value, ok := errs.DecodeString(column, raw); ok && value != nil {
		updates[column] = *value
	}
}

// applyNullableString stages a nullable string column; JSON null clears it.
func applyNullableString(errs validation.Errors, updates map[string]any, column string, raw json.RawMessage) {
	if raw == nil {
		return
	}
	if value, ok := errs.DecodeString(column, raw); ok {
		updates[column] = value
	}
}

func adminIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("adminID")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
