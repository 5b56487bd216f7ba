// Package handler exposes the board repository over HTTP. Every protected
// handler works on the store of the user named by the bearer token.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Thiccblique/Tusday.com/internal/auth"
	"github.com/Thiccblique/Tusday.com/internal/middleware"
	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/repository"
	"github.com/Thiccblique/Tusday.com/internal/session"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// storeFor returns the store of the authenticated user. It writes the 401 and
// returns false when the middleware did not run.
func storeFor(c *gin.Context, stores session.StoreFactory) (repository.Store, bool) {
	raw, exists := c.Get(middleware.UserIDKey)
	userID, ok := raw.(int64)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
		return repository.Store{}, false
	}
	return stores(userID), true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// statusFor maps the error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConstraint):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{Error: notify.Describe(err)})
}
