package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"trip-platform/internal/accommodation"
	"trip-platform/internal/restaurant"
	"trip-platform/internal/tourism"
	"trip-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.
type Handlers struct {
	Accommodations *accommodation.Service
	Restaurants    *restaurant.Service
	Tourism        *tourism.Service
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

// fail maps domain errors onto HTTP statuses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, accommodation.ErrNotFound), errors.Is(err, restaurant.ErrNotFound),
		errors.Is(err, tourism.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, accommodation.ErrInvalidArgument), errors.Is(err, restaurant.ErrInvalidArgument),
		errors.Is(err, tourism.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.FromGin(c).Error("handler failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
