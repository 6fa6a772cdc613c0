package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

var badRequestErrors = []error{
	domain.ErrInvalidDate,
	domain.ErrHabitNameEmpty,
	domain.ErrHabitNameTooLong,
	domain.ErrMoodEmojiEmpty,
	domain.ErrGoalTitleEmpty,
	domain.ErrGoalInvalidTarget,
	domain.ErrInvalidWaterGoal,
	domain.ErrInvalidWaterAmount,
	domain.ErrInvalidSessionLen,
	domain.ErrInvalidSessionType,
	domain.ErrInvalidPIN,
	domain.ErrUnsupportedFormat,
	domain.ErrSearchQueryEmpty,
}

func isBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func handleError(c *gin.Context, err error) {
	switch {
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrHabitNotFound) || errors.Is(err, domain.ErrGoalNotFound) || errors.Is(err, domain.ErrChallengeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrHabitExists):
		c.JSON(http.StatusConflict, gin.H{"error": "habit already exists"})

	case errors.Is(err, domain.ErrPINNotSet):
		c.JSON(http.StatusConflict, gin.H{"error": "app pin not set"})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid pin"})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// noDate asks a service for today.
var noDate domain.Date

// dateQuery reads an optional YYYY-MM-DD query parameter. Absent means the
// zero Date, which services read as today.
func dateQuery(c *gin.Context, key string) (domain.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(raw)
}

// intQuery reads an optional integer query parameter; absent is 0.
func intQuery(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
