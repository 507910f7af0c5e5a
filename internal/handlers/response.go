package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/funfungun/1-seven-0/internal/repository"
	"github.com/funfungun/1-seven-0/internal/services"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// errorStatus is checked in order with errors.Is.
var errorStatus = []struct {
	kind   error
	status int
}{
	{services.ErrValidation, http.StatusBadRequest},
	{services.ErrConflict, http.StatusBadRequest},
	{services.ErrUnprocessable, http.StatusUnprocessableEntity},
	{services.ErrUnauthorized, http.StatusUnauthorized},
	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrNotFound, http.StatusNotFound},
}

func statusFor(err error) (int, bool) {
	for _, e := range errorStatus {
		if errors.Is(err, e.kind) {
			return e.status, true
		}
	}
	return http.StatusInternalServerError, false
}

// respondError writes {"message": ...}; unexpected errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	status, known := statusFor(err)
	if !known {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"error", err,
		)
		c.JSON(status, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

// bindJSON decodes the body into dst. Malformed JSON is a 400, wrong field types a 422.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return &services.Error{Kind: services.ErrUnprocessable, Msg: "invalid type for field " + typeErr.Field}
	case errors.Is(err, io.EOF):
		return &services.Error{Kind: services.ErrValidation, Msg: "request body is empty"}
	default:
		return &services.Error{Kind: services.ErrValidation, Msg: "invalid JSON: " + err.Error()}
	}
}

// parsePage reads ?page= (1-based) and ?limit=.
func parsePage(c *gin.Context) (repository.Page, error) {
	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return repository.Page{}, &services.Error{Kind: services.ErrValidation, Msg: "page must be a positive integer"}
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		return repository.Page{}, &services.Error{Kind: services.ErrValidation, Msg: "limit must be between 1 and " + strconv.Itoa(maxLimit)}
	}
	if page-1 > math.MaxInt/limit {
		return repository.Page{}, &services.Error{Kind: services.ErrValidation, Msg: "page is out of range"}
	}
	return repository.Page{Offset: (page - 1) * limit, Limit: limit}, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func paramUUID(c *gin.Context, name, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, &services.Error{Kind: services.ErrValidation, Msg: "invalid " + what + " id"}
	}
	return id, nil
}
