package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/PratikDhanave/adfriend-backend/internal/models"
)

// MaxBodyBytes caps event request bodies at 100kb.
const MaxBodyBytes = 100 << 10

// bindEventJSON decodes the request body into dst and reports false when a
// response has already been written.
//
// Only objects and arrays are accepted at the top level. An empty body or an
// array leaves dst zero, so it reaches the store's required-field check.
// Bodies over MaxBodyBytes are a 413, anything else unparseable a 400.
func bindEventJSON(c *gin.Context, dst any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "request entity too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON payload"})
		return false
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return true
	}

	switch body[0] {
	case '[':
		if json.Valid(body) {
			return true
		}
	case '{':
		if err := binding.JSON.BindBody(body, dst); err == nil {
			return true
		}
	}

	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON payload"})
	return false
}
